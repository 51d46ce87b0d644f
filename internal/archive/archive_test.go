package archive

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/render"
)

const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// fakeFetcher serves fixed bodies and fails every other reference.
type fakeFetcher map[string][]byte

func (f fakeFetcher) Fetch(_ context.Context, ref string) ([]byte, error) {
	if b, ok := f[ref]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: GET %s returned 404 Not Found", assets.ErrAssetFetchFailure, ref)
}

func pack(t *testing.T, p *Packager, cfg invitation.Config) (*Report, map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	report, err := p.Package(context.Background(), &buf, cfg)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	files, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return report, files
}

func TestImageRoundTrip(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.MainImage = "data:image/png;base64," + pngBase64
	})
	_, files := pack(t, New(nil, zerolog.Nop()), cfg)

	want, _ := base64.StdEncoding.DecodeString(pngBase64)
	got, ok := files["main-image.png"]
	if !ok {
		t.Fatal("main-image.png missing")
	}
	if !bytes.Equal(got, want) {
		t.Error("main-image.png differs from the decoded data URI")
	}
	if !strings.Contains(string(files[render.IndexFile]), `src="main-image.png"`) {
		t.Error("index.html does not reference main-image.png")
	}
}

func TestLayout(t *testing.T) {
	cfg := invitation.Default().
		AddGalleryImage("data:image/jpeg;base64,"+pngBase64).
		AddGalleryImage("https://example.com/remote.jpg").
		With(func(c *invitation.Config) {
			c.MalePhoto = "data:image/webp;base64," + pngBase64
			c.BackgroundMusic = "https://cdn.example.com/song.mp3"
		})
	fetcher := fakeFetcher{"https://cdn.example.com/song.mp3": []byte("ID3 fake mp3")}
	report, files := pack(t, New(fetcher, zerolog.Nop()), cfg)

	var names []string
	for _, e := range report.Entries {
		names = append(names, e.Name)
	}
	want := []string{
		"index.html", "guest.html", "style.css", "script.js", "README.md",
		"favicon.png", "music.mp3", "male-photo.webp", "gallery-image-1.jpeg",
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("entries = %v, want %v", names, want)
	}
	if len(files) != len(want) {
		t.Errorf("archive holds %d files, want %d", len(files), len(want))
	}
	if string(files["music.mp3"]) != "ID3 fake mp3" {
		t.Error("music.mp3 does not hold the fetched body")
	}
	if !bytes.Equal(files["favicon.png"], render.Favicon()) {
		t.Error("favicon.png differs from the embedded icon")
	}
	if len(report.Omissions) != 0 {
		t.Errorf("unexpected omissions: %+v", report.Omissions)
	}
	if strings.Contains(string(files["README.md"]), "NOTE:") {
		t.Error("README should carry no notes when nothing was omitted")
	}
}

func TestMusicFetchFailure(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.BackgroundMusic = "https://cdn.example.com/missing.mp3"
	})
	report, files := pack(t, New(fakeFetcher{}, zerolog.Nop()), cfg)

	if _, ok := files["music.mp3"]; ok {
		t.Error("music.mp3 should be omitted")
	}
	if !strings.HasSuffix(string(files["README.md"]), render.MusicOmittedNote+"\n") {
		t.Error("README should end with the music note")
	}
	if len(report.Omissions) != 1 {
		t.Fatalf("omissions = %+v, want one", report.Omissions)
	}
	o := report.Omissions[0]
	if o.Role != assets.RoleMusic || o.File != assets.MusicFile {
		t.Errorf("omission = %+v", o)
	}
	if !errors.Is(o.Err, assets.ErrAssetFetchFailure) {
		t.Errorf("omission error %v does not wrap ErrAssetFetchFailure", o.Err)
	}
	for _, name := range []string{"index.html", "style.css", "favicon.png"} {
		if _, ok := files[name]; !ok {
			t.Errorf("%s missing after a failed fetch", name)
		}
	}
}

func TestMalformedImageIsOmitted(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.FemalePhoto = "data:image/png;base64"
	})
	report, files := pack(t, New(nil, zerolog.Nop()), cfg)

	if len(report.Omissions) != 1 || !errors.Is(report.Omissions[0].Err, assets.ErrMalformedAssetReference) {
		t.Fatalf("omissions = %+v", report.Omissions)
	}
	if !strings.Contains(string(files["README.md"]), "NOTE: The female photo image could not be included in this zip.") {
		t.Error("README missing the image note")
	}
	if strings.Contains(string(files["index.html"]), "couple-photos") {
		t.Error("omitted photo should not leave an empty photo section")
	}
}

func TestMediaTypeCannotEscapeArchive(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.MainImage = "data:image/../../../../tmp/pwned;base64,aGVsbG8="
	})
	report, files := pack(t, New(nil, zerolog.Nop()), cfg)

	for name := range files {
		if strings.Contains(name, "..") || strings.Contains(name, "/") {
			t.Errorf("unsafe entry name %q", name)
		}
	}
	if len(report.Omissions) != 1 || !errors.Is(report.Omissions[0].Err, assets.ErrMalformedAssetReference) {
		t.Fatalf("omissions = %+v", report.Omissions)
	}
	if !strings.Contains(string(files["README.md"]), "could not be included in this zip") {
		t.Error("README missing the omission note")
	}
}

func TestCancelledContextOmitsFetches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.BackgroundMusic = "https://cdn.example.com/song.mp3"
	})
	fetcher := fakeFetcher{"https://cdn.example.com/song.mp3": []byte("x")}

	var buf bytes.Buffer
	report, err := New(fetcher, zerolog.Nop()).Package(ctx, &buf, cfg)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if len(report.Omissions) != 1 {
		t.Errorf("omissions = %+v, want the music fetch", report.Omissions)
	}
}

func TestPackageIsDeterministic(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.MainImage = "data:image/png;base64," + pngBase64
	})
	p := New(nil, zerolog.Nop())
	var a, b bytes.Buffer
	if _, err := p.Package(context.Background(), &a, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Package(context.Background(), &b, cfg); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical input produced different archives")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPackageWriterFailure(t *testing.T) {
	_, err := New(nil, zerolog.Nop()).Package(context.Background(), failingWriter{}, invitation.Default())
	if err == nil {
		t.Fatal("expected an error from a failing writer")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "john-&-jane-invitation.zip")

	report, err := New(nil, zerolog.Nop()).WriteFile(context.Background(), path, invitation.Default())
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	entries, err := List(data)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != len(report.Entries) {
		t.Errorf("archive has %d entries, report has %d", len(entries), len(report.Entries))
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "out", "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestArchiveName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alex & Sam", "alex-&-sam-invitation.zip"},
		{"  John   Doe\tand Jane ", "john-doe-and-jane-invitation.zip"},
		{"", DefaultName},
		{"   ", DefaultName},
		{"A/B", "a-b-invitation.zip"},
	}
	for _, tt := range tests {
		if got := ArchiveName(tt.in); got != tt.want {
			t.Errorf("ArchiveName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read([]byte("not a zip")); !errors.Is(err, ErrNotArchive) {
		t.Errorf("Read error = %v, want ErrNotArchive", err)
	}
}
