package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// Fallbacks applied when a design field is empty.
const (
	DefaultPrimaryColor    = "#000000"
	DefaultSecondaryColor  = "#666666"
	DefaultBackgroundColor = "#FFFFFF"
	DefaultHeaderFontSize  = 32
	DefaultBodyFontSize    = 16
	DefaultAnimationSpeed  = 3
	DefaultRgbIntensity    = 7
	DefaultRgbBorderWidth  = 3
)

const rainbowGradient = "linear-gradient(90deg, #ff0000, #ff7300, #fffb00, #48ff00, #00ffd5, #002bff, #7a00ff, #ff00c8, #ff0000)"

// Gradient returns the glow gradient of a color theme. Unknown themes get
// the rainbow gradient.
func Gradient(theme invitation.ColorTheme) string {
	switch theme {
	case invitation.ThemeGolden:
		return "linear-gradient(90deg, #FFD700, #FFA500, #B8860B, #FFD700)"
	case invitation.ThemeRose:
		return "linear-gradient(90deg, #FF80AB, #FF4081, #C2185B, #FF80AB)"
	case invitation.ThemeOcean:
		return "linear-gradient(90deg, #00B0FF, #0091EA, #01579B, #00B0FF)"
	case invitation.ThemeEmerald:
		return "linear-gradient(90deg, #00E676, #00C853, #1B5E20, #00E676)"
	case invitation.ThemePurple:
		return "linear-gradient(90deg, #AA00FF, #7C4DFF, #6200EA, #AA00FF)"
	default:
		return rainbowGradient
	}
}

// ShapeRadius returns the border-radius of the main image frame.
func ShapeRadius(shape invitation.PhotoShape) string {
	switch shape {
	case invitation.ShapeSquare:
		return "8px"
	default:
		return "50%"
	}
}

// FontFamily returns the font to use, falling back to the default font.
func FontFamily(name string) string {
	name = cssSafe(name)
	if name == "" {
		return invitation.DefaultFont
	}
	return name
}

// GoogleFontsURL returns the stylesheet URL loading the regular and bold
// weights of font.
func GoogleFontsURL(font string) string {
	return "https://fonts.googleapis.com/css2?family=" + url.QueryEscape(FontFamily(font)) + ":wght@400;700&display=swap"
}

func or(v, fallback string) string {
	if v = cssSafe(v); v == "" {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// clamp treats 0 as unset and pins other values into [lo, hi].
func clamp(v, lo, hi, fallback int) int {
	switch {
	case v == 0:
		return fallback
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

var cssUnsafe = strings.NewReplacer("'", "", `"`, "", "<", "", ">", "", ";", "", "{", "", "}", "", `\`, "")

// cssSafe strips characters that could close a CSS value or a style block.
func cssSafe(v string) string {
	return strings.TrimSpace(cssUnsafe.Replace(v))
}

// cssURL escapes a reference for use inside url('...') in a stylesheet that
// may be inlined into a <style> element. Quotes, brackets, backslashes,
// whitespace and control bytes are percent-encoded.
func cssURL(ref string) string {
	var b strings.Builder
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c <= ' ', c == 0x7f, strings.IndexByte(`'"()<>\`, c) >= 0:
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
