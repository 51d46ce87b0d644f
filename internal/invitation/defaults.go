package invitation

// Slider ranges enforced by the builder and re-applied at render time.
const (
	MinAnimationSpeed = 1
	MaxAnimationSpeed = 10
	MinRgbIntensity   = 1
	MaxRgbIntensity   = 10
	MinRgbBorderWidth = 1
	MaxRgbBorderWidth = 10
	MinMusicVolume    = 0
	MaxMusicVolume    = 100
)

// Default returns the configuration a new builder session starts from.
func Default() Config {
	return Config{
		CoupleNames:   "John & Jane",
		EventDate:     "2023-12-31",
		EventTime:     "18:00",
		EventLocation: "Grand Ballroom",
		EventAddress:  "jl. Raya taman mini indonesia indah, TMII, Jakarta Timur, Indonesia",

		WeddingMessages: []Message{},
		ParentsMessages: []Message{},

		Message:        "We are delighted to invite you to our wedding celebration. Your presence will make our special day even more memorable.",
		ParentsMessage: "With the blessings of our beloved parents, we invite you to share in our joy.",

		BackgroundColor: "#FFFFFF",
		HeaderFontSize:  32,
		BodyFontSize:    16,

		GalleryImages: []string{},

		EnableEffects:      true,
		EnableShadows:      true,
		EnableHoverEffects: true,
		EnableRgbEffects:   true,
		AnimationSpeed:     3,
		RgbIntensity:       7,
		RgbBorderWidth:     3,
		ColorTheme:         ThemeRGB,

		AutoplayMusic: true,
		LoopMusic:     true,
		MusicVolume:   50,

		GiftAccounts: []GiftAccount{},

		RsvpMessage: "We look forward to celebrating with you! Please let us know if you can attend.",
		Guests:      []Guest{},
	}
}
