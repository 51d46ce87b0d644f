// Package archive packages a rendered invitation into a downloadable zip.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/progress"
	"github.com/ziadkadry99/invitekit/internal/render"
)

// FaviconFile is the name of the icon written into every archive.
const FaviconFile = "favicon.png"

// DefaultName is the archive name used when no couple names are set.
const DefaultName = "wedding-invitation.zip"

// modTime is stamped on every entry so identical input yields identical
// archive bytes.
var modTime = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Entry is one file written into the archive.
type Entry struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Omission is an asset that could not be packaged.
type Omission struct {
	Role   string `json:"role"`
	File   string `json:"file,omitempty"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Report is the outcome of one export: every packaged entry in archive
// order plus every asset that had to be left out.
type Report struct {
	Name      string     `json:"name"`
	Entries   []Entry    `json:"entries"`
	Omissions []Omission `json:"omissions,omitempty"`
}

// Size returns the total uncompressed size of the packaged entries.
func (r *Report) Size() int {
	n := 0
	for _, e := range r.Entries {
		n += e.Size
	}
	return n
}

// Packager builds export archives. A Packager holds no per-export state and
// may run several exports concurrently.
type Packager struct {
	Fetcher  assets.Fetcher
	Logger   zerolog.Logger
	Reporter progress.Reporter
}

// New creates a Packager downloading remote music with f.
func New(f assets.Fetcher, logger zerolog.Logger) *Packager {
	return &Packager{Fetcher: f, Logger: logger, Reporter: progress.Nop{}}
}

// Package writes the archive for cfg to w. Asset failures are recorded in
// the report and noted in README.md; only failures of the zip stream
// itself are returned as errors.
func (p *Packager) Package(ctx context.Context, w io.Writer, cfg invitation.Config) (*Report, error) {
	cfg = cfg.Clone()
	plan := assets.Plan(cfg)
	report := &Report{Name: ArchiveName(cfg.CoupleNames)}

	for _, err := range plan.Errors {
		p.omit(report, err.Role, fileForRole(plan, err.Role), err)
	}
	media := append([]assets.File(nil), plan.Files...)
	media = append(media, p.fetchAll(ctx, report, plan.Fetches)...)

	bundle := render.Render(cfg, plan.Refs, notes(report.Omissions))

	type item struct {
		name string
		data []byte
		raw  bool
	}
	items := make([]item, 0, len(bundle.Files)+1+len(media))
	for _, f := range bundle.Files {
		items = append(items, item{name: f.Name, data: f.Data})
	}
	items = append(items, item{name: FaviconFile, data: render.Favicon(), raw: true})
	for _, f := range orderMedia(media) {
		items = append(items, item{name: f.Name, data: f.Data, raw: true})
	}

	rep := p.reporter()
	rep.Start(len(items))
	defer rep.Finish()

	zw := zip.NewWriter(w)
	for i, it := range items {
		if err := writeEntry(zw, it.name, it.data, it.raw); err != nil {
			return nil, fmt.Errorf("writing %s: %w", it.name, err)
		}
		report.Entries = append(report.Entries, Entry{Name: it.name, Size: len(it.data)})
		rep.Update(i+1, it.name)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finishing archive: %w", err)
	}

	p.Logger.Info().
		Str("archive", report.Name).
		Int("entries", len(report.Entries)).
		Int("omissions", len(report.Omissions)).
		Msg("invitation packaged")
	return report, nil
}

func (p *Packager) reporter() progress.Reporter {
	if p.Reporter == nil {
		return progress.Nop{}
	}
	return p.Reporter
}

// fetchAll downloads every queued asset. Each download succeeds or is
// omitted on its own.
func (p *Packager) fetchAll(ctx context.Context, report *Report, fetches []assets.Fetch) []assets.File {
	var out []assets.File
	for _, f := range fetches {
		data, err := p.fetch(ctx, f.Ref)
		if err != nil {
			p.omit(report, f.Role, f.Name, &assets.AssetError{Role: f.Role, Ref: f.Ref, Err: err})
			continue
		}
		out = append(out, assets.File{Name: f.Name, Role: f.Role, Data: data})
	}
	return out
}

func (p *Packager) fetch(ctx context.Context, ref string) ([]byte, error) {
	if p.Fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher configured", assets.ErrAssetFetchFailure)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrAssetFetchFailure, err)
	}
	return p.Fetcher.Fetch(ctx, ref)
}

func (p *Packager) omit(report *Report, role, file string, err error) {
	p.Logger.Warn().Err(err).Str("role", role).Str("file", file).Msg("asset omitted from archive")
	report.Omissions = append(report.Omissions, Omission{Role: role, File: file, Reason: err.Error(), Err: err})
}

// fileForRole returns the bundle name an omitted asset would have had.
// Only music keeps a fixed name without a decoded payload.
func fileForRole(plan *assets.ExportPlan, role string) string {
	if role == assets.RoleMusic {
		return plan.Refs.Music
	}
	return ""
}

// notes returns the README paragraphs describing each omission.
func notes(omissions []Omission) []string {
	var out []string
	for _, o := range omissions {
		if o.Role == assets.RoleMusic {
			out = append(out, render.MusicOmittedNote)
			continue
		}
		out = append(out, fmt.Sprintf("NOTE: The %s image could not be included in this zip.", strings.ReplaceAll(o.Role, "-", " ")))
	}
	return out
}

// orderMedia puts music.mp3 ahead of the image files, keeping the image
// order of the plan.
func orderMedia(files []assets.File) []assets.File {
	out := make([]assets.File, 0, len(files))
	for _, f := range files {
		if f.Name == assets.MusicFile {
			out = append(out, f)
		}
	}
	for _, f := range files {
		if f.Name != assets.MusicFile {
			out = append(out, f)
		}
	}
	return out
}

// writeEntry adds one file. Media is stored as is since it is already
// compressed.
func writeEntry(zw *zip.Writer, name string, data []byte, raw bool) error {
	h := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modTime}
	if raw {
		h.Method = zip.Store
	}
	h.SetMode(0o644)
	fw, err := zw.CreateHeader(h)
	if err != nil {
		return err
	}
	_, err = fw.Write(data)
	return err
}

// WriteFile packages cfg into the file at path. The archive is assembled in
// a temporary file next to path and renamed into place, so a failed export
// never leaves a partial archive behind.
func (p *Packager) WriteFile(ctx context.Context, path string, cfg invitation.Config) (report *Report, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".invitekit-*.zip.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp archive: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	report, err = p.Package(ctx, tmp, cfg)
	if err != nil {
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp archive: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("setting archive permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("moving archive into place: %w", err)
	}
	return report, nil
}

// ArchiveName derives the download name from the couple names: lower-cased,
// whitespace runs collapsed to hyphens, suffixed with -invitation.zip.
func ArchiveName(coupleNames string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(coupleNames)), "-")
	slug = strings.NewReplacer("/", "-", `\`, "-").Replace(slug)
	if slug == "" {
		return DefaultName
	}
	return slug + "-invitation.zip"
}

// ErrNotArchive is returned by Read for data that is not a zip archive.
var ErrNotArchive = errors.New("not a zip archive")

// Read returns the contents of every file in an archive, keyed by name.
func Read(data []byte) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		out[f.Name] = b
	}
	return out, nil
}

// List returns the entry names of an archive in stored order.
func List(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	out := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		out = append(out, Entry{Name: f.Name, Size: int(f.UncompressedSize64)})
	}
	return out, nil
}
