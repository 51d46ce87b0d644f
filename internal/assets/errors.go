package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAssetReference is returned for media strings that are not a
	// well-formed data URI, absolute URL or site-relative path.
	ErrMalformedAssetReference = errors.New("malformed asset reference")

	// ErrAssetFetchFailure is returned when a remote asset cannot be downloaded.
	ErrAssetFetchFailure = errors.New("asset fetch failed")

	// ErrUnsupportedFileType is returned when an uploaded file does not match
	// the media kind expected by its slot.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// AssetError records which media role failed and why.
type AssetError struct {
	Role string
	Ref  string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Role, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// shortRef trims long references (usually data URIs) for log output.
func shortRef(ref string) string {
	const max = 48
	if len(ref) <= max {
		return ref
	}
	return ref[:max] + "..."
}

func newAssetError(role, ref string, err error) *AssetError {
	return &AssetError{Role: role, Ref: shortRef(ref), Err: err}
}
