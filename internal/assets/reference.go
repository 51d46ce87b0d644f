package assets

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultPlaceholder replaces media references that cannot be shown in a
// detached preview document.
const DefaultPlaceholder = "/placeholder.svg?height=200&width=200"

// Kind classifies a raw media reference.
type Kind int

const (
	KindEmpty Kind = iota
	KindDataURI
	KindURL
	KindRelative
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDataURI:
		return "data-uri"
	case KindURL:
		return "url"
	case KindRelative:
		return "relative"
	default:
		return "other"
	}
}

// Classify reports what kind of reference ref is. It only looks at the
// prefix; a data URI may still fail ParseDataURI.
func Classify(ref string) Kind {
	lower := strings.ToLower(ref)
	switch {
	case ref == "":
		return KindEmpty
	case strings.HasPrefix(lower, "data:"):
		return KindDataURI
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindURL
	case strings.HasPrefix(ref, "/"):
		return KindRelative
	default:
		return KindOther
	}
}

// DataURI is a decoded data: reference.
type DataURI struct {
	MIME   string
	Params []string
	Base64 bool
	Data   []byte
}

// ParseDataURI decodes a data URI of the form
// data:<mime>[;param]...[;base64],<payload>.
func ParseDataURI(ref string) (*DataURI, error) {
	if Classify(ref) != KindDataURI {
		return nil, fmt.Errorf("%w: not a data URI", ErrMalformedAssetReference)
	}
	header, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload separator", ErrMalformedAssetReference)
	}

	parts := strings.Split(header, ";")
	d := &DataURI{MIME: strings.ToLower(strings.TrimSpace(parts[0]))}
	for _, p := range parts[1:] {
		if strings.EqualFold(p, "base64") {
			d.Base64 = true
			continue
		}
		d.Params = append(d.Params, p)
	}
	if d.MIME == "" {
		d.MIME = "text/plain"
	}
	if !validMIME(d.MIME) {
		return nil, fmt.Errorf("%w: invalid media type %q", ErrMalformedAssetReference, d.MIME)
	}

	if d.Base64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some encoders drop the padding.
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedAssetReference, err)
			}
		}
		d.Data = data
		return d, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAssetReference, err)
	}
	d.Data = []byte(data)
	return d, nil
}

// mimeToken matches one half of a media type. Subtypes become file
// extensions, so path separators and dot-only names never match.
var mimeToken = regexp.MustCompile(`^[a-z0-9][a-z0-9.+-]*$`)

func validMIME(mime string) bool {
	typ, sub, ok := strings.Cut(mime, "/")
	return ok && mimeToken.MatchString(typ) && mimeToken.MatchString(sub)
}

// Extension returns the file extension for a MIME type: the subtype taken
// verbatim (image/jpeg -> jpeg, image/svg+xml -> svg+xml). Anything that is
// not a plain token gives "bin".
func Extension(mime string) string {
	mime, _, _ = strings.Cut(mime, ";")
	_, sub, ok := strings.Cut(strings.ToLower(strings.TrimSpace(mime)), "/")
	if !ok || !mimeToken.MatchString(sub) {
		return "bin"
	}
	return sub
}

// ResolvePreview normalizes ref for a detached preview surface. Data URIs,
// absolute URLs and site-relative paths pass through; blob references,
// malformed data URIs and anything else become placeholder. Empty stays empty.
func ResolvePreview(ref, placeholder string) string {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	switch Classify(ref) {
	case KindEmpty:
		return ""
	case KindURL, KindRelative:
		return ref
	case KindDataURI:
		if _, err := ParseDataURI(ref); err != nil {
			return placeholder
		}
		return ref
	default:
		return placeholder
	}
}
