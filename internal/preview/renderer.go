// Package preview shows the standalone invitation document live in a
// browser and re-renders it on every configuration change.
package preview

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/render"
)

// Surface is a display that can swap in a whole new document.
type Surface interface {
	Replace(doc string) error
}

// Renderer renders configuration snapshots onto a mounted surface.
// Each render recomputes the document from the full snapshot, so a render
// skipped while nothing is mounted needs no replay.
type Renderer struct {
	placeholder string
	logger      zerolog.Logger

	mu      sync.Mutex
	surface Surface
	skipped int
}

// NewRenderer creates a renderer resolving unusable media to placeholder.
func NewRenderer(placeholder string, logger zerolog.Logger) *Renderer {
	return &Renderer{placeholder: placeholder, logger: logger}
}

// Mount attaches the display surface. Mounting nil detaches it.
func (r *Renderer) Mount(s Surface) {
	r.mu.Lock()
	r.surface = s
	r.mu.Unlock()
}

// Mounted reports whether a surface is attached.
func (r *Renderer) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface != nil
}

// Render replaces the surface document with the standalone rendering of
// cfg. It reports false without rendering when no surface is mounted.
func (r *Renderer) Render(cfg invitation.Config) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface == nil {
		r.skipped++
		r.logger.Debug().Int("skipped", r.skipped).Msg("no preview surface mounted, render skipped")
		return false, nil
	}
	doc := render.Standalone(cfg.Clone(), r.placeholder)
	if err := r.surface.Replace(doc); err != nil {
		return false, fmt.Errorf("replacing preview document: %w", err)
	}
	r.logger.Debug().Int("bytes", len(doc)).Msg("preview rendered")
	return true, nil
}

// Skipped returns how many renders found no surface mounted.
func (r *Renderer) Skipped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}
