package preview

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/db"
	"github.com/ziadkadry99/invitekit/internal/history"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

type recordingSurface struct {
	docs []string
	err  error
}

func (s *recordingSurface) Replace(doc string) error {
	if s.err != nil {
		return s.err
	}
	s.docs = append(s.docs, doc)
	return nil
}

func TestRendererSkipsWithoutSurface(t *testing.T) {
	r := NewRenderer("/ph.svg", zerolog.Nop())

	ok, err := r.Render(invitation.Default())
	if err != nil || ok {
		t.Fatalf("Render without surface = %v, %v; want false, nil", ok, err)
	}
	if r.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", r.Skipped())
	}

	surface := &recordingSurface{}
	r.Mount(surface)
	latest := invitation.Default().With(func(c *invitation.Config) { c.CoupleNames = "Latest Couple" })
	ok, err = r.Render(latest)
	if err != nil || !ok {
		t.Fatalf("Render after mount = %v, %v; want true, nil", ok, err)
	}
	if len(surface.docs) != 1 || !strings.Contains(surface.docs[0], "Latest Couple") {
		t.Error("surface should hold the latest snapshot")
	}
	if strings.Contains(surface.docs[0], `href="style.css"`) {
		t.Error("preview should render the standalone document")
	}

	r.Mount(nil)
	if r.Mounted() {
		t.Error("Mount(nil) should detach the surface")
	}
}

func TestRendererSurfaceError(t *testing.T) {
	r := NewRenderer("", zerolog.Nop())
	r.Mount(&recordingSurface{err: errors.New("gone")})
	if ok, err := r.Render(invitation.Default()); ok || err == nil {
		t.Errorf("Render = %v, %v; want false and an error", ok, err)
	}
}

func TestRendererUsesPlaceholder(t *testing.T) {
	surface := &recordingSurface{}
	r := NewRenderer("/ph.svg", zerolog.Nop())
	r.Mount(surface)
	cfg := invitation.Default().With(func(c *invitation.Config) { c.MainImage = "blob:http://localhost/123" })
	if _, err := r.Render(cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(surface.docs[0], `src="/ph.svg"`) {
		t.Error("blob reference should be replaced by the placeholder")
	}
}

func setupServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(Config{Placeholder: "/ph.svg"}, invitation.Default(), archive.New(nil, zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	_, ts := setupServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "ok") {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestAddrIsLoopback(t *testing.T) {
	s, err := New(Config{Port: 4321}, invitation.Default(), archive.New(nil, zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Addr(); got != "127.0.0.1:4321" {
		t.Errorf("Addr() = %q, want 127.0.0.1:4321", got)
	}
}

func TestShellAndFrame(t *testing.T) {
	s, ts := setupServer(t)

	_, shell := get(t, ts.URL+"/")
	if !strings.Contains(shell, `<iframe id="preview-frame" src="/frame"`) {
		t.Error("shell page should frame the preview")
	}

	resp, frame := get(t, ts.URL+"/frame")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("frame status = %d", resp.StatusCode)
	}
	if !strings.Contains(frame, "John &amp; Jane") {
		t.Error("frame should show the initial snapshot")
	}

	if err := s.Update(invitation.Default().With(func(c *invitation.Config) { c.CoupleNames = "Rin & Kai" })); err != nil {
		t.Fatal(err)
	}
	resp, frame = get(t, ts.URL+"/frame")
	if !strings.Contains(frame, "Rin &amp; Kai") {
		t.Error("frame should follow updates")
	}
	if resp.Header.Get("X-Preview-Version") != "2" {
		t.Errorf("version = %q, want 2", resp.Header.Get("X-Preview-Version"))
	}
}

func TestExportEndpoint(t *testing.T) {
	_, ts := setupServer(t)
	resp, body := get(t, ts.URL+"/export")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d: %s", resp.StatusCode, body)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "john-&-jane-invitation.zip") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	files, err := archive.Read([]byte(body))
	if err != nil {
		t.Fatalf("reading exported archive: %v", err)
	}
	if _, ok := files["index.html"]; !ok {
		t.Error("exported archive lacks index.html")
	}
}

func TestExportRecordsHistory(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := history.NewStore(database)

	s, err := New(Config{History: store}, invitation.Default(), archive.New(nil, zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	if resp, _ := get(t, ts.URL+"/export"); resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	_, body := get(t, ts.URL+"/api/history?source=preview")
	if !strings.Contains(body, `"archive_name":"john-\u0026-jane-invitation.zip"`) {
		t.Errorf("history = %s", body)
	}
}

func TestReadmeEndpoint(t *testing.T) {
	_, ts := setupServer(t)
	_, body := get(t, ts.URL+"/readme")
	if !strings.Contains(body, "<h1") || !strings.Contains(body, "John &amp; Jane") {
		t.Errorf("readme not rendered as HTML:\n%s", body)
	}
	if !strings.Contains(body, "<pre") {
		t.Error("indented blocks should render as code")
	}
}

func TestWarningsEndpoint(t *testing.T) {
	s, ts := setupServer(t)
	_, body := get(t, ts.URL+"/api/warnings")
	if strings.TrimSpace(body) != `{"warnings":[]}` {
		t.Errorf("warnings = %s", body)
	}

	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.PresetBackground = "/backgrounds/golden-frame.jpeg"
		c.CustomBackgroundImage = "https://example.com/bg.jpg"
	})
	if err := s.Update(cfg); err != nil {
		t.Fatal(err)
	}
	_, body = get(t, ts.URL+"/api/warnings")
	if !strings.Contains(body, "overrides") {
		t.Errorf("expected an override warning, got %s", body)
	}
}

func TestManifestEndpoint(t *testing.T) {
	_, ts := setupServer(t)
	_, body := get(t, ts.URL+"/api/manifest")
	for _, name := range []string{"index.html", "guest.html", "style.css", "script.js", "README.md"} {
		if !strings.Contains(body, `"`+name+`"`) {
			t.Errorf("manifest missing %s", name)
		}
	}
}

func TestWebSocketReload(t *testing.T) {
	s, ts := setupServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	var hello reloadMessage
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if hello.Type != "hello" || hello.Version != 1 {
		t.Errorf("hello = %+v", hello)
	}

	if err := s.Update(invitation.Default()); err != nil {
		t.Fatal(err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reload reloadMessage
	if err := conn.ReadJSON(&reload); err != nil {
		t.Fatalf("read reload: %v", err)
	}
	if reload.Type != "reload" || reload.Version != 2 {
		t.Errorf("reload = %+v", reload)
	}
}

func TestWatchReloadsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invitation.yml")
	if err := invitation.Default().Save(path); err != nil {
		t.Fatal(err)
	}

	changes := make(chan invitation.Config, 4)
	onChange := func(c invitation.Config) {
		select {
		case changes <- c:
		default:
		}
	}
	stop, err := Watch(path, onChange, func(error) {})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	updated := invitation.Default().With(func(c *invitation.Config) { c.CoupleNames = "Watched Couple" })
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := updated.Save(path); err != nil {
		t.Fatal(err)
	}
	if d, _ := os.ReadFile(path); string(d) == string(data) {
		t.Fatal("save did not change the file")
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.CoupleNames == "Watched Couple" {
				return
			}
		case <-timeout:
			t.Fatal("no change observed")
		}
	}
}
