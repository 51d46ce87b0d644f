package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/db"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	rec, err := store.Record(ctx, Export{
		ID:          "exp-1",
		Source:      SourceCLI,
		ArchiveName: "alex-&-sam.zip",
		Path:        "dist/alex-&-sam.zip",
		CoupleNames: "Alex & Sam",
		EventDate:   "2025-06-01",
		EntryCount:  7,
		SizeBytes:   4096,
		Omissions:   []string{"music"},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := store.Get(ctx, "exp-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Source != SourceCLI {
		t.Errorf("Source = %q, want %q", got.Source, SourceCLI)
	}
	if got.CoupleNames != "Alex & Sam" {
		t.Errorf("CoupleNames = %q", got.CoupleNames)
	}
	if got.EntryCount != 7 || got.SizeBytes != 4096 {
		t.Errorf("EntryCount/SizeBytes = %d/%d, want 7/4096", got.EntryCount, got.SizeBytes)
	}
	if len(got.Omissions) != 1 || got.Omissions[0] != "music" {
		t.Errorf("Omissions = %v, want [music]", got.Omissions)
	}
	if !got.Timestamp.Equal(rec.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, rec.Timestamp)
	}
}

func TestRecordGeneratesID(t *testing.T) {
	store := setupStore(t)
	rec, err := store.Record(context.Background(), Export{Source: SourcePreview, ArchiveName: "a.zip"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated ID")
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
	if rec.Omissions == nil {
		t.Error("omissions should default to an empty list")
	}
}

func TestRecordRejectsUnknownSource(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Record(context.Background(), Export{Source: "email", ArchiveName: "a.zip"}); err == nil {
		t.Fatal("expected an error for an unknown source")
	}
}

func TestGetNotFound(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func seed(t *testing.T, store *Store) time.Time {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	exports := []Export{
		{ID: "a", Source: SourceCLI, ArchiveName: "a.zip", Timestamp: base},
		{ID: "b", Source: SourcePreview, ArchiveName: "b.zip", Timestamp: base.Add(time.Hour)},
		{ID: "c", Source: SourceCLI, ArchiveName: "c.zip", Timestamp: base.Add(2 * time.Hour)},
		{ID: "d", Source: SourceMCP, ArchiveName: "d.zip", Timestamp: base.Add(2 * time.Hour)},
	}
	for _, e := range exports {
		if _, err := store.Record(context.Background(), e); err != nil {
			t.Fatalf("Record(%s): %v", e.ID, err)
		}
	}
	return base
}

func ids(exports []Export) []string {
	out := make([]string, len(exports))
	for i, e := range exports {
		out[i] = e.ID
	}
	return out
}

func TestList(t *testing.T) {
	store := setupStore(t)
	base := seed(t, store)
	since := base.Add(30 * time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all newest first", Filter{}, []string{"d", "c", "b", "a"}},
		{"by source", Filter{Source: SourceCLI}, []string{"c", "a"}},
		{"since", Filter{Since: &since}, []string{"d", "c", "b"}},
		{"limit", Filter{Limit: 2}, []string{"d", "c"}},
		{"offset", Filter{Limit: 2, Offset: 2}, []string{"b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("List = %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Fatalf("List = %v, want %v", gotIDs, tt.want)
				}
			}
		})
	}
}

func TestDeleteBefore(t *testing.T) {
	store := setupStore(t)
	base := seed(t, store)

	n, err := store.DeleteBefore(context.Background(), base.Add(90*time.Minute))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d rows, want 2", n)
	}
	rest, _ := store.List(context.Background(), Filter{})
	if len(rest) != 2 {
		t.Errorf("remaining = %v, want [d c]", ids(rest))
	}
}

func TestFromReport(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.CoupleNames = "Alex & Sam"
		c.EventDate = "2025-06-01"
	})
	report := &archive.Report{
		Name:    "alex-&-sam.zip",
		Entries: []archive.Entry{{Name: "index.html", Size: 100}, {Name: "style.css", Size: 50}},
		Omissions: []archive.Omission{
			{Role: "music", File: "music.mp3", Reason: "music could not be fetched"},
		},
	}

	e := FromReport(SourceMCP, "", cfg, report)
	if e.Source != SourceMCP || e.ArchiveName != "alex-&-sam.zip" {
		t.Errorf("unexpected export %+v", e)
	}
	if e.EntryCount != 2 || e.SizeBytes != 150 {
		t.Errorf("EntryCount/SizeBytes = %d/%d, want 2/150", e.EntryCount, e.SizeBytes)
	}
	if len(e.Omissions) != 1 || e.Omissions[0] != "music could not be fetched" {
		t.Errorf("Omissions = %v", e.Omissions)
	}
	if e.CoupleNames != "Alex & Sam" || e.EventDate != "2025-06-01" {
		t.Errorf("invitation fields not copied: %+v", e)
	}
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	seed(t, store)

	r := chi.NewRouter()
	RegisterRoutes(r, store)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/history?source=cli")
	if err != nil {
		t.Fatalf("GET list: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var list []Export
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c" {
		t.Errorf("list = %v, want [c a]", ids(list))
	}

	resp2, err := http.Get(srv.URL + "/api/history/b")
	if err != nil {
		t.Fatalf("GET one: %v", err)
	}
	defer resp2.Body.Close()
	var one Export
	if err := json.NewDecoder(resp2.Body).Decode(&one); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if one.Source != SourcePreview {
		t.Errorf("source = %q, want preview", one.Source)
	}

	resp3, err := http.Get(srv.URL + "/api/history/nope")
	if err != nil {
		t.Fatalf("GET missing: %v", err)
	}
	resp3.Body.Close()
	if resp3.StatusCode != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", resp3.StatusCode)
	}
}

func TestRoutesEmptyList(t *testing.T) {
	store := setupStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want []", got)
	}
}
