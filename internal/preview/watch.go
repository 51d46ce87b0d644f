package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/file"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// Watch reloads the invitation file at path every time it is saved and
// hands the new snapshot to onChange. Read and parse failures go to onError
// and the previous snapshot stays current. The returned function stops the
// watch.
func Watch(path string, onChange func(invitation.Config), onError func(error)) (func() error, error) {
	f := file.Provider(path)
	asJSON := strings.EqualFold(filepath.Ext(path), ".json")

	err := f.Watch(func(_ interface{}, err error) {
		if err != nil {
			onError(fmt.Errorf("watching %s: %w", path, err))
			return
		}
		data, err := f.ReadBytes()
		if err != nil {
			onError(fmt.Errorf("reading %s: %w", path, err))
			return
		}
		// Editors often truncate before writing; wait for the content.
		if len(strings.TrimSpace(string(data))) == 0 {
			return
		}
		cfg, err := invitation.Parse(data, asJSON)
		if err != nil {
			onError(fmt.Errorf("parsing %s: %w", path, err))
			return
		}
		onChange(cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return f.Unwatch, nil
}
