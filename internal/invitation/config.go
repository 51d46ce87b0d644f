package invitation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EffectiveBackground resolves the background image actually used:
// custom, then preset, then the legacy backgroundImage field.
func (c Config) EffectiveBackground() string {
	if c.CustomBackgroundImage != "" {
		return c.CustomBackgroundImage
	}
	if c.PresetBackground != "" {
		return c.PresetBackground
	}
	return c.BackgroundImage
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.WeddingMessages = cloneSlice(c.WeddingMessages)
	out.ParentsMessages = cloneSlice(c.ParentsMessages)
	out.GalleryImages = cloneSlice(c.GalleryImages)
	out.GiftAccounts = cloneSlice(c.GiftAccounts)
	if c.Guests != nil {
		out.Guests = make([]Guest, len(c.Guests))
		for i, g := range c.Guests {
			if g.Attending != nil {
				v := *g.Attending
				g.Attending = &v
			}
			out.Guests[i] = g
		}
	}
	return out
}

// With returns a modified copy of c. The receiver is never changed.
func (c Config) With(fn func(*Config)) Config {
	out := c.Clone()
	fn(&out)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// newID returns a short identifier not already present in taken.
func newID(taken func(string) bool) string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
		if !taken(id) {
			return id
		}
	}
}

func messageTaken(msgs []Message) func(string) bool {
	return func(id string) bool {
		for _, m := range msgs {
			if m.ID == id {
				return true
			}
		}
		return false
	}
}

// AddWeddingMessage appends a wedding message. An empty content gets the
// builder's numbered placeholder text.
func (c Config) AddWeddingMessage(content string) Config {
	return c.With(func(n *Config) {
		n.WeddingMessages = appendMessage(n.WeddingMessages, content, "Wedding Message")
	})
}

// UpdateWeddingMessage replaces the content of the message with the given id.
func (c Config) UpdateWeddingMessage(id, content string) Config {
	return c.With(func(n *Config) { updateMessage(n.WeddingMessages, id, content) })
}

// RemoveWeddingMessage drops the message with the given id.
func (c Config) RemoveWeddingMessage(id string) Config {
	return c.With(func(n *Config) { n.WeddingMessages = removeMessage(n.WeddingMessages, id) })
}

// AddParentsMessage appends a parents message.
func (c Config) AddParentsMessage(content string) Config {
	return c.With(func(n *Config) {
		n.ParentsMessages = appendMessage(n.ParentsMessages, content, "Parents Message")
	})
}

// UpdateParentsMessage replaces the content of the parents message with the given id.
func (c Config) UpdateParentsMessage(id, content string) Config {
	return c.With(func(n *Config) { updateMessage(n.ParentsMessages, id, content) })
}

// RemoveParentsMessage drops the parents message with the given id.
func (c Config) RemoveParentsMessage(id string) Config {
	return c.With(func(n *Config) { n.ParentsMessages = removeMessage(n.ParentsMessages, id) })
}

func appendMessage(msgs []Message, content, label string) []Message {
	if content == "" {
		content = fmt.Sprintf("%s %d", label, len(msgs)+1)
	}
	return append(msgs, Message{ID: newID(messageTaken(msgs)), Content: content})
}

func updateMessage(msgs []Message, id, content string) {
	for i := range msgs {
		if msgs[i].ID == id {
			msgs[i].Content = content
		}
	}
}

func removeMessage(msgs []Message, id string) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// AddGalleryImage appends a media reference to the gallery.
func (c Config) AddGalleryImage(ref string) Config {
	return c.With(func(n *Config) { n.GalleryImages = append(n.GalleryImages, ref) })
}

// RemoveGalleryImage drops the gallery image at index. Out of range is a no-op.
func (c Config) RemoveGalleryImage(index int) Config {
	return c.With(func(n *Config) { n.GalleryImages = removeAt(n.GalleryImages, index) })
}

// AddGiftAccount appends a gift account.
func (c Config) AddGiftAccount(acc GiftAccount) Config {
	return c.With(func(n *Config) { n.GiftAccounts = append(n.GiftAccounts, acc) })
}

// UpdateGiftAccount replaces the gift account at index.
func (c Config) UpdateGiftAccount(index int, acc GiftAccount) Config {
	return c.With(func(n *Config) {
		if index >= 0 && index < len(n.GiftAccounts) {
			n.GiftAccounts[index] = acc
		}
	})
}

// RemoveGiftAccount drops the gift account at index.
func (c Config) RemoveGiftAccount(index int) Config {
	return c.With(func(n *Config) { n.GiftAccounts = removeAt(n.GiftAccounts, index) })
}

func removeAt[T any](s []T, index int) []T {
	if index < 0 || index >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	return append(out, s[index+1:]...)
}

// AddGuest appends a guest, assigning an id when g.ID is empty.
func (c Config) AddGuest(g Guest) Config {
	return c.With(func(n *Config) {
		if g.ID == "" {
			g.ID = newID(func(id string) bool {
				for _, existing := range n.Guests {
					if existing.ID == id {
						return true
					}
				}
				return false
			})
		}
		n.Guests = append(n.Guests, g)
	})
}

// UpdateGuest applies fn to the guest with the given id.
func (c Config) UpdateGuest(id string, fn func(*Guest)) Config {
	return c.With(func(n *Config) {
		for i := range n.Guests {
			if n.Guests[i].ID == id {
				fn(&n.Guests[i])
			}
		}
	})
}

// RemoveGuest drops the guest with the given id.
func (c Config) RemoveGuest(id string) Config {
	return c.With(func(n *Config) {
		out := make([]Guest, 0, len(n.Guests))
		for _, g := range n.Guests {
			if g.ID != id {
				out = append(out, g)
			}
		}
		n.Guests = out
	})
}

// SetPresetBackground selects a bundled background. The legacy background
// follows the preset only while no custom image is set.
func (c Config) SetPresetBackground(ref string) Config {
	return c.With(func(n *Config) {
		n.PresetBackground = ref
		if n.CustomBackgroundImage == "" {
			n.BackgroundImage = ref
		}
	})
}

// SetCustomBackground sets or clears the user background. Setting one clears
// the preset selection; clearing it falls back to the preset.
func (c Config) SetCustomBackground(ref string) Config {
	return c.With(func(n *Config) {
		n.CustomBackgroundImage = ref
		if ref != "" {
			n.BackgroundImage = ref
			n.PresetBackground = ""
		} else {
			n.BackgroundImage = n.PresetBackground
		}
	})
}

// ApplyDesignTheme copies the palette and font of the named design theme.
func (c Config) ApplyDesignTheme(id string) (Config, error) {
	t, ok := LookupDesignTheme(id)
	if !ok {
		return c, fmt.Errorf("unknown design theme %q", id)
	}
	return c.With(func(n *Config) {
		n.PrimaryColor = t.PrimaryColor
		n.SecondaryColor = t.SecondaryColor
		n.BackgroundColor = t.BackgroundColor
		n.FontFamily = t.FontFamily
	}), nil
}

// Warnings lists configuration states that will be overridden or corrected
// at render time. An empty result means the config renders as written.
func (c Config) Warnings() []string {
	var w []string
	if c.CustomBackgroundImage != "" && c.PresetBackground != "" {
		w = append(w, "custom background image is active and overrides the preset background")
	}
	if c.FontFamily != "" && !IsKnownFont(c.FontFamily) {
		w = append(w, fmt.Sprintf("font %q is not in the font list", c.FontFamily))
	}
	if c.ColorTheme != "" && !IsKnownTheme(c.ColorTheme) {
		w = append(w, fmt.Sprintf("color theme %q is unknown; the rgb gradient is used", c.ColorTheme))
	}
	switch c.PhotoShape {
	case ShapeCircle, ShapeSquare, ShapeUnset:
	default:
		w = append(w, fmt.Sprintf("photo shape %q is unknown; circle is used", c.PhotoShape))
	}
	w = appendRange(w, "animationSpeed", c.AnimationSpeed, MinAnimationSpeed, MaxAnimationSpeed)
	w = appendRange(w, "rgbIntensity", c.RgbIntensity, MinRgbIntensity, MaxRgbIntensity)
	w = appendRange(w, "rgbBorderWidth", c.RgbBorderWidth, MinRgbBorderWidth, MaxRgbBorderWidth)
	if c.MusicVolume < MinMusicVolume || c.MusicVolume > MaxMusicVolume {
		w = append(w, fmt.Sprintf("musicVolume %d is outside %d..%d and will be clamped", c.MusicVolume, MinMusicVolume, MaxMusicVolume))
	}
	if c.EnableDigitalGifts && len(c.GiftAccounts) == 0 {
		w = append(w, "digital gifts are enabled but no gift accounts are configured; the section is hidden")
	}
	return w
}

// appendRange warns for values outside [lo, hi]. Zero means unset and
// falls back to the default, so it is not reported.
func appendRange(w []string, name string, v, lo, hi int) []string {
	if v != 0 && (v < lo || v > hi) {
		w = append(w, fmt.Sprintf("%s %d is outside %d..%d and will be clamped", name, v, lo, hi))
	}
	return w
}
