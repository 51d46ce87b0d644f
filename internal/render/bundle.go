package render

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// Fixed names of the generated text artifacts.
const (
	IndexFile  = "index.html"
	GuestFile  = "guest.html"
	StyleFile  = "style.css"
	ScriptFile = "script.js"
	ReadmeFile = "README.md"
)

// Artifact is one generated file.
type Artifact struct {
	Name string
	Data []byte
}

// Bundle is the set of text artifacts of the split bundle, in archive order.
type Bundle struct {
	Files []Artifact
}

// Render produces every text artifact of the split bundle. notes are
// appended to README.md.
func Render(cfg invitation.Config, refs assets.Refs, notes []string) Bundle {
	return Bundle{Files: []Artifact{
		{Name: IndexFile, Data: []byte(Index(cfg, refs))},
		{Name: GuestFile, Data: []byte(Guest(cfg, refs))},
		{Name: StyleFile, Data: []byte(Stylesheet(cfg, refs.Background))},
		{Name: ScriptFile, Data: []byte(Script(cfg))},
		{Name: ReadmeFile, Data: []byte(Readme(cfg, notes))},
	}}
}

// File returns the artifact with the given name.
func (b Bundle) File(name string) ([]byte, bool) {
	for _, f := range b.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// ManifestEntry describes one artifact.
type ManifestEntry struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest lists the name, size and content hash of every artifact.
func (b Bundle) Manifest() []ManifestEntry {
	out := make([]ManifestEntry, 0, len(b.Files))
	for _, f := range b.Files {
		sum := sha256.Sum256(f.Data)
		out = append(out, ManifestEntry{Name: f.Name, Size: len(f.Data), SHA256: hex.EncodeToString(sum[:])})
	}
	return out
}
