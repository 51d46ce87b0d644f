package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// pngBytes is a 1x1 transparent PNG.
var pngBytes, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ref  string
		want Kind
	}{
		{"", KindEmpty},
		{"data:image/png;base64,AAAA", KindDataURI},
		{"DATA:image/png;base64,AAAA", KindDataURI},
		{"https://example.com/a.jpg", KindURL},
		{"http://example.com/a.jpg", KindURL},
		{"/backgrounds/golden-frame.jpeg", KindRelative},
		{"blob:http://localhost/123", KindOther},
		{"photo.jpg", KindOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.ref); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestParseDataURI(t *testing.T) {
	d, err := ParseDataURI(pngDataURI())
	if err != nil {
		t.Fatalf("ParseDataURI: %v", err)
	}
	if d.MIME != "image/png" || !d.Base64 {
		t.Errorf("header = %q base64=%v", d.MIME, d.Base64)
	}
	if !bytes.Equal(d.Data, pngBytes) {
		t.Error("decoded payload differs from the source bytes")
	}

	plain, err := ParseDataURI("data:text/plain;charset=utf-8,hello%20world")
	if err != nil {
		t.Fatalf("ParseDataURI plain: %v", err)
	}
	if string(plain.Data) != "hello world" || plain.Params[0] != "charset=utf-8" {
		t.Errorf("plain = %q %v", plain.Data, plain.Params)
	}
}

func TestParseDataURIMalformed(t *testing.T) {
	for _, ref := range []string{
		"data:image/png;base64",
		"data:image/png;base64,@@@not-base64@@@",
		"data:png;base64,AAAA",
		"data:image/../../../../tmp/pwned;base64,aGVsbG8=",
		"data:image/a b;base64,aGVsbG8=",
		"data:../x/png;base64,aGVsbG8=",
		"https://example.com/a.png",
	} {
		if _, err := ParseDataURI(ref); !errors.Is(err, ErrMalformedAssetReference) {
			t.Errorf("ParseDataURI(%q) error = %v, want ErrMalformedAssetReference", ref, err)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"image/jpeg":    "jpeg",
		"image/png":     "png",
		"image/svg+xml": "svg+xml",
		"audio/mpeg":    "mpeg",
		"IMAGE/WEBP":    "webp",
		"garbage":       "bin",
		"image/../../x": "bin",
		"image/a\\b":    "bin",
	}
	for mime, want := range tests {
		if got := Extension(mime); got != want {
			t.Errorf("Extension(%q) = %q, want %q", mime, got, want)
		}
	}
}

func TestResolvePreview(t *testing.T) {
	const ph = "/placeholder.svg"
	tests := []struct {
		ref, want string
	}{
		{"", ""},
		{pngDataURI(), pngDataURI()},
		{"/backgrounds/elegant-arch.jpeg", "/backgrounds/elegant-arch.jpeg"},
		{"https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"blob:http://localhost/abc", ph},
		{"data:image/png;base64", ph},
		{"relative.jpg", ph},
	}
	for _, tt := range tests {
		if got := ResolvePreview(tt.ref, ph); got != tt.want {
			t.Errorf("ResolvePreview(%.30q) = %.30q, want %.30q", tt.ref, got, tt.want)
		}
	}
	if got := ResolvePreview("blob:x", ""); got != DefaultPlaceholder {
		t.Errorf("empty placeholder should fall back to default, got %q", got)
	}
}

func TestPlan(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.MainImage = pngDataURI()
		c.MalePhoto = "https://example.com/groom.jpg"
		c.FemalePhoto = "blob:http://localhost/bride"
		c.GalleryImages = []string{"data:image/jpeg;base64,/9j/", "data:broken", pngDataURI()}
		c.BackgroundMusic = "https://example.com/song.mp3"
	})

	p := Plan(cfg)

	if p.Refs.MainImage != "main-image.png" {
		t.Errorf("main image ref = %q", p.Refs.MainImage)
	}
	if p.Refs.MalePhoto != "https://example.com/groom.jpg" {
		t.Errorf("male photo ref = %q", p.Refs.MalePhoto)
	}
	if p.Refs.FemalePhoto != "" {
		t.Errorf("blob reference should be dropped from export, got %q", p.Refs.FemalePhoto)
	}
	wantGallery := []string{"gallery-image-1.jpeg", "", "gallery-image-3.png"}
	for i, want := range wantGallery {
		if p.Refs.Gallery[i] != want {
			t.Errorf("gallery[%d] = %q, want %q", i, p.Refs.Gallery[i], want)
		}
	}
	if p.Refs.Music != MusicFile {
		t.Errorf("music ref = %q", p.Refs.Music)
	}

	if len(p.Files) != 3 {
		t.Errorf("files = %d, want 3", len(p.Files))
	}
	if len(p.Fetches) != 1 || p.Fetches[0].Ref != "https://example.com/song.mp3" {
		t.Errorf("fetches = %+v", p.Fetches)
	}
	if len(p.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(p.Errors))
	}
	for _, e := range p.Errors {
		if !errors.Is(e, ErrMalformedAssetReference) {
			t.Errorf("error %v should wrap ErrMalformedAssetReference", e)
		}
	}
	if p.Errors[0].Role != RoleFemalePhoto || p.Errors[1].Role != "gallery-image-2" {
		t.Errorf("error roles = %s, %s", p.Errors[0].Role, p.Errors[1].Role)
	}
}

func TestPlanRejectsPathInMediaType(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.MainImage = "data:image/../../../../tmp/pwned;base64,aGVsbG8="
	})
	p := Plan(cfg)
	if len(p.Files) != 0 {
		t.Fatalf("files = %+v, want none", p.Files)
	}
	if p.Refs.MainImage != "" {
		t.Errorf("main image ref = %q, want empty", p.Refs.MainImage)
	}
	if len(p.Errors) != 1 || !errors.Is(p.Errors[0], ErrMalformedAssetReference) {
		t.Errorf("errors = %v", p.Errors)
	}
}

func TestPlanInlineMusic(t *testing.T) {
	cfg := invitation.Default().With(func(c *invitation.Config) {
		c.BackgroundMusic = "data:audio/mpeg;base64,SUQz"
	})
	p := Plan(cfg)
	if len(p.Fetches) != 0 {
		t.Errorf("inline music should not be fetched")
	}
	if len(p.Files) != 1 || p.Files[0].Name != "music.mp3" || string(p.Files[0].Data) != "ID3" {
		t.Errorf("files = %+v", p.Files)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/song.mp3":
			w.Write([]byte("ID3-audio"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second)
	ctx := context.Background()

	data, err := f.Fetch(ctx, srv.URL+"/song.mp3")
	if err != nil || string(data) != "ID3-audio" {
		t.Fatalf("Fetch absolute = %q, %v", data, err)
	}
	data, err = f.Fetch(ctx, "/song.mp3")
	if err != nil || string(data) != "ID3-audio" {
		t.Fatalf("Fetch relative = %q, %v", data, err)
	}

	if _, err := f.Fetch(ctx, srv.URL+"/missing.mp3"); !errors.Is(err, ErrAssetFetchFailure) {
		t.Errorf("404 error = %v, want ErrAssetFetchFailure", err)
	}
	if _, err := NewHTTPFetcher("", 0).Fetch(ctx, "/song.mp3"); !errors.Is(err, ErrAssetFetchFailure) {
		t.Errorf("relative without base error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(img, pngBytes, 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := LoadFile(img, MediaImage)
	if err != nil {
		t.Fatalf("LoadFile image: %v", err)
	}
	if uri != pngDataURI() {
		t.Errorf("data URI = %.40q", uri)
	}

	_, err = LoadFile(img, MediaAudio)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("png as audio error = %v, want ErrUnsupportedFileType", err)
	}
	var ae *AssetError
	if !errors.As(err, &ae) || ae.Role != "audio" {
		t.Errorf("expected *AssetError for audio slot, got %v", err)
	}

	if KindForRole(RoleMusic) != MediaAudio || KindForRole(RoleMainImage) != MediaImage {
		t.Error("KindForRole mismatch")
	}
}

func TestExpandGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.jpg", "sub/c.jpg", "notes.txt"} {
		path := filepath.Join(dir, name)
		os.MkdirAll(filepath.Dir(path), 0o755)
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ExpandGlob(filepath.Join(dir, "**", "*.jpg"))
	if err != nil {
		t.Fatalf("ExpandGlob: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "sub", "c.jpg"),
	}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
