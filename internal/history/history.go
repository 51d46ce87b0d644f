// Package history records every exported invitation archive.
package history

import (
	"time"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// Source identifies which surface produced an export.
type Source string

const (
	SourceCLI     Source = "cli"
	SourcePreview Source = "preview"
	SourceMCP     Source = "mcp"
)

// Export is a single export record.
type Export struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Source      Source    `json:"source"`
	ArchiveName string    `json:"archive_name"`
	Path        string    `json:"path,omitempty"`
	CoupleNames string    `json:"couple_names"`
	EventDate   string    `json:"event_date"`
	EntryCount  int       `json:"entry_count"`
	SizeBytes   int       `json:"size_bytes"`
	Omissions   []string  `json:"omissions"`
}

// FromReport builds the record of one packaged archive. path is empty for
// archives that were streamed rather than written to disk.
func FromReport(src Source, path string, cfg invitation.Config, r *archive.Report) Export {
	e := Export{
		Source:      src,
		ArchiveName: r.Name,
		Path:        path,
		CoupleNames: cfg.CoupleNames,
		EventDate:   cfg.EventDate,
		EntryCount:  len(r.Entries),
		SizeBytes:   r.Size(),
		Omissions:   []string{},
	}
	for _, o := range r.Omissions {
		e.Omissions = append(e.Omissions, o.Reason)
	}
	return e
}
