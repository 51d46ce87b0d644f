package assets

import (
	"encoding/base64"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
)

// MediaKind is the kind of file a media slot accepts.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaAudio MediaKind = "audio"
)

// KindForRole returns the media kind accepted by role.
func KindForRole(role string) MediaKind {
	if role == RoleMusic {
		return MediaAudio
	}
	return MediaImage
}

// LoadFile reads a local file, checks its content type against want and
// returns it as a base64 data URI. The type is sniffed from the content,
// not the file name.
func LoadFile(path string, want MediaKind) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detecting type of %s: %w", path, err)
	}
	mime, _, _ := strings.Cut(mt.String(), ";")
	if !strings.HasPrefix(mime, string(want)+"/") {
		return "", &AssetError{
			Role: string(want),
			Ref:  path,
			Err:  fmt.Errorf("%w: %s is %s, expected %s", ErrUnsupportedFileType, path, mime, want),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ExpandGlob returns the files matching pattern in lexical order. Patterns
// support ** for recursive matches.
func ExpandGlob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
