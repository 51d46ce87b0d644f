package assets

import (
	"fmt"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// Media roles. Gallery images use GalleryRole(n).
const (
	RoleMainImage   = "main-image"
	RoleMalePhoto   = "male-photo"
	RoleFemalePhoto = "female-photo"
	RoleMusic       = "music"
)

// MusicFile is the fixed archive name of the background track.
const MusicFile = "music.mp3"

// GalleryRole returns the role of the n-th (1-based) gallery image.
func GalleryRole(n int) string {
	return fmt.Sprintf("gallery-image-%d", n)
}

// Refs holds the reference each document should use for every media slot.
// An empty string means the slot is not rendered. Gallery keeps the
// position of every configured image so labels stay stable when one is
// dropped.
type Refs struct {
	MainImage   string
	MalePhoto   string
	FemalePhoto string
	Gallery     []string
	Music       string
	Background  string
}

// PreviewRefs resolves every media slot of cfg for the live preview.
func PreviewRefs(cfg invitation.Config, placeholder string) Refs {
	r := Refs{
		MainImage:   ResolvePreview(cfg.MainImage, placeholder),
		MalePhoto:   ResolvePreview(cfg.MalePhoto, placeholder),
		FemalePhoto: ResolvePreview(cfg.FemalePhoto, placeholder),
		Music:       ResolvePreview(cfg.BackgroundMusic, placeholder),
		Background:  ResolvePreview(cfg.EffectiveBackground(), placeholder),
	}
	for _, g := range cfg.GalleryImages {
		r.Gallery = append(r.Gallery, ResolvePreview(g, placeholder))
	}
	return r
}

// File is a binary asset written next to the generated documents.
type File struct {
	Name string
	Role string
	MIME string
	Data []byte
}

// Fetch is an asset that has to be downloaded before packaging.
type Fetch struct {
	Role string
	Name string
	Ref  string
}

// ExportPlan is the outcome of resolving every media slot for the bundle.
// Each slot ends up in exactly one of Files, Fetches or Errors, or keeps
// an external reference in Refs.
type ExportPlan struct {
	Refs    Refs
	Files   []File
	Fetches []Fetch
	Errors  []*AssetError
}

// Plan decides the bundle filename and document reference of every media
// slot. Data URIs are decoded into Files; remote or relative images keep
// their reference; remote music is queued for download under MusicFile.
// The effective background stays inline in the stylesheet.
func Plan(cfg invitation.Config) *ExportPlan {
	p := &ExportPlan{}
	p.Refs.MainImage = p.image(RoleMainImage, cfg.MainImage)
	p.Refs.MalePhoto = p.image(RoleMalePhoto, cfg.MalePhoto)
	p.Refs.FemalePhoto = p.image(RoleFemalePhoto, cfg.FemalePhoto)
	for i, g := range cfg.GalleryImages {
		p.Refs.Gallery = append(p.Refs.Gallery, p.image(GalleryRole(i+1), g))
	}
	p.Refs.Music = p.music(cfg.BackgroundMusic)
	p.Refs.Background = cfg.EffectiveBackground()
	if Classify(p.Refs.Background) == KindOther {
		p.Refs.Background = ""
	}
	return p
}

func (p *ExportPlan) image(role, ref string) string {
	switch Classify(ref) {
	case KindEmpty:
		return ""
	case KindURL, KindRelative:
		return ref
	case KindDataURI:
		d, err := ParseDataURI(ref)
		if err != nil {
			p.Errors = append(p.Errors, newAssetError(role, ref, err))
			return ""
		}
		name := role + "." + Extension(d.MIME)
		p.Files = append(p.Files, File{Name: name, Role: role, MIME: d.MIME, Data: d.Data})
		return name
	default:
		p.Errors = append(p.Errors, newAssetError(role, ref, ErrMalformedAssetReference))
		return ""
	}
}

func (p *ExportPlan) music(ref string) string {
	switch Classify(ref) {
	case KindEmpty:
		return ""
	case KindURL, KindRelative:
		p.Fetches = append(p.Fetches, Fetch{Role: RoleMusic, Name: MusicFile, Ref: ref})
		return MusicFile
	case KindDataURI:
		d, err := ParseDataURI(ref)
		if err != nil {
			p.Errors = append(p.Errors, newAssetError(RoleMusic, ref, err))
			return MusicFile
		}
		p.Files = append(p.Files, File{Name: MusicFile, Role: RoleMusic, MIME: d.MIME, Data: d.Data})
		return MusicFile
	default:
		p.Errors = append(p.Errors, newAssetError(RoleMusic, ref, ErrMalformedAssetReference))
		return MusicFile
	}
}
