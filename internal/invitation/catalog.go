package invitation

// Fonts is the closed set of font families offered by the builder.
var Fonts = []string{
	"Playfair Display",
	"Dancing Script",
	"Montserrat",
	"Raleway",
	"Amatic SC",
	"Roboto",
	"Lato",
	"Open Sans",
	"Oswald",
	"Pacifico",
	"Great Vibes",
	"Sacramento",
	"Cinzel",
}

// DefaultFont is used whenever FontFamily is empty.
const DefaultFont = "Playfair Display"

// ColorThemes lists every recognized glow theme in display order.
var ColorThemes = []ColorTheme{ThemeRGB, ThemeGolden, ThemeRose, ThemeOcean, ThemeEmerald, ThemePurple}

// PresetBackground is a bundled background image.
type PresetBackground struct {
	ID   string
	Name string
	Path string
}

// PresetBackgrounds is the closed set of bundled background images.
var PresetBackgrounds = []PresetBackground{
	{ID: "elegant-arch", Name: "Elegant Arch", Path: "/backgrounds/elegant-arch.jpeg"},
	{ID: "golden-frame", Name: "Golden Frame", Path: "/backgrounds/golden-frame.jpeg"},
	{ID: "damask-pattern", Name: "Damask Pattern", Path: "/backgrounds/damask-pattern.jpeg"},
	{ID: "neon-tropical", Name: "Neon Tropical", Path: "/backgrounds/neon-tropical.jpg"},
}

// DesignTheme is a named palette and font combination.
type DesignTheme struct {
	ID              string
	Name            string
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	FontFamily      string
}

// DesignThemes are the palette presets offered by the theme selector.
var DesignThemes = []DesignTheme{
	{ID: "elegant", Name: "Elegant", PrimaryColor: "#8B5A2B", SecondaryColor: "#D4AF37", BackgroundColor: "#FFFFFF", FontFamily: "Playfair Display"},
	{ID: "romantic", Name: "Romantic", PrimaryColor: "#D8667A", SecondaryColor: "#F7CAD0", BackgroundColor: "#FFF5F6", FontFamily: "Dancing Script"},
	{ID: "modern", Name: "Modern", PrimaryColor: "#2D3748", SecondaryColor: "#A0AEC0", BackgroundColor: "#F7FAFC", FontFamily: "Montserrat"},
	{ID: "rustic", Name: "Rustic", PrimaryColor: "#5D4037", SecondaryColor: "#8D6E63", BackgroundColor: "#EFEBE9", FontFamily: "Amatic SC"},
	{ID: "minimalist", Name: "Minimalist", PrimaryColor: "#1A202C", SecondaryColor: "#718096", BackgroundColor: "#FFFFFF", FontFamily: "Raleway"},
}

// PaymentOptions are the banks and e-wallets suggested for gift accounts.
var PaymentOptions = []string{
	"BCA", "Mandiri", "BNI", "BRI", "CIMB Niaga", "Permata", "Danamon",
	"GoPay", "OVO", "DANA", "LinkAja", "ShopeePay", "PayPal", "Other",
}

// IsKnownFont reports whether name is one of Fonts.
func IsKnownFont(name string) bool {
	for _, f := range Fonts {
		if f == name {
			return true
		}
	}
	return false
}

// IsKnownTheme reports whether t is one of ColorThemes.
func IsKnownTheme(t ColorTheme) bool {
	for _, c := range ColorThemes {
		if c == t {
			return true
		}
	}
	return false
}

// LookupPreset finds a preset background by id or path.
func LookupPreset(idOrPath string) (PresetBackground, bool) {
	for _, p := range PresetBackgrounds {
		if p.ID == idOrPath || p.Path == idOrPath {
			return p, true
		}
	}
	return PresetBackground{}, false
}

// LookupDesignTheme finds a design theme by id.
func LookupDesignTheme(id string) (DesignTheme, bool) {
	for _, t := range DesignThemes {
		if t.ID == id {
			return t, true
		}
	}
	return DesignTheme{}, false
}
