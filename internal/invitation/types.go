package invitation

// PhotoShape controls the frame of the main image.
type PhotoShape string

const (
	ShapeCircle PhotoShape = "circle"
	ShapeSquare PhotoShape = "square"
	ShapeUnset  PhotoShape = ""
)

// ColorTheme names one of the gradient presets used by the glow borders.
type ColorTheme string

const (
	ThemeRGB     ColorTheme = "rgb"
	ThemeGolden  ColorTheme = "golden"
	ThemeRose    ColorTheme = "rose"
	ThemeOcean   ColorTheme = "ocean"
	ThemeEmerald ColorTheme = "emerald"
	ThemePurple  ColorTheme = "purple"
)

// Transparent is the sentinel background color that disables the page fill.
const Transparent = "transparent"

// Message is one entry of the wedding or parents message lists.
type Message struct {
	ID      string `yaml:"id" json:"id"`
	Content string `yaml:"content" json:"content"`
}

// GiftAccount is a bank or e-wallet account shown in the digital gifts section.
type GiftAccount struct {
	Bank          string `yaml:"bank" json:"bank"`
	AccountName   string `yaml:"accountName" json:"accountName"`
	AccountNumber string `yaml:"accountNumber" json:"accountNumber"`
}

// Guest is an invited guest tracked by the couple. Attending is nil while
// the guest has not answered.
type Guest struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Email          string `yaml:"email" json:"email"`
	Phone          string `yaml:"phone" json:"phone"`
	Attending      *bool  `yaml:"attending" json:"attending"`
	NumberOfGuests int    `yaml:"numberOfGuests" json:"numberOfGuests"`
	Message        string `yaml:"message" json:"message"`
}

// Config is the full description of one wedding invitation. It is treated
// as an immutable snapshot: use With or the mutation helpers to derive a
// new one.
type Config struct {
	// Main image
	MainImage  string     `yaml:"mainImage" json:"mainImage"`
	PhotoShape PhotoShape `yaml:"photoShape" json:"photoShape"`

	// Basic information
	CoupleNames   string `yaml:"coupleNames" json:"coupleNames"`
	EventDate     string `yaml:"eventDate" json:"eventDate"`
	EventTime     string `yaml:"eventTime" json:"eventTime"`
	EventLocation string `yaml:"eventLocation" json:"eventLocation"`
	EventAddress  string `yaml:"eventAddress" json:"eventAddress"`

	WeddingMessages []Message `yaml:"weddingMessages" json:"weddingMessages"`
	ParentsMessages []Message `yaml:"parentsMessages" json:"parentsMessages"`

	// Legacy single messages, rendered independently of the lists above.
	Message            string `yaml:"message" json:"message"`
	ParentsMessage     string `yaml:"parentsMessage" json:"parentsMessage"`
	ShowMessage        bool   `yaml:"showMessage" json:"showMessage"`
	ShowParentsMessage bool   `yaml:"showParentsMessage" json:"showParentsMessage"`

	MalePhoto   string `yaml:"malePhoto" json:"malePhoto"`
	FemalePhoto string `yaml:"femalePhoto" json:"femalePhoto"`

	// Design
	PrimaryColor          string `yaml:"primaryColor" json:"primaryColor"`
	SecondaryColor        string `yaml:"secondaryColor" json:"secondaryColor"`
	BackgroundColor       string `yaml:"backgroundColor" json:"backgroundColor"`
	BackgroundImage       string `yaml:"backgroundImage" json:"backgroundImage"`
	PresetBackground      string `yaml:"presetBackground" json:"presetBackground"`
	CustomBackgroundImage string `yaml:"customBackgroundImage" json:"customBackgroundImage"`
	FontFamily            string `yaml:"fontFamily" json:"fontFamily"`
	HeaderFontSize        int    `yaml:"headerFontSize" json:"headerFontSize"`
	BodyFontSize          int    `yaml:"bodyFontSize" json:"bodyFontSize"`

	// Section transparency (0..1). Kept for round-trips; not rendered.
	BasicInfoTransparency    float64 `yaml:"basicInfoTransparency" json:"basicInfoTransparency"`
	CouplePhotosTransparency float64 `yaml:"couplePhotosTransparency" json:"couplePhotosTransparency"`
	DesignTransparency       float64 `yaml:"designTransparency" json:"designTransparency"`
	GalleryTransparency      float64 `yaml:"galleryTransparency" json:"galleryTransparency"`
	MapTransparency          float64 `yaml:"mapTransparency" json:"mapTransparency"`

	GalleryImages []string `yaml:"galleryImages" json:"galleryImages"`
	MapLocation   string   `yaml:"mapLocation" json:"mapLocation"`

	// Effects
	EnableEffects      bool       `yaml:"enableEffects" json:"enableEffects"`
	EnableShadows      bool       `yaml:"enableShadows" json:"enableShadows"`
	EnableHoverEffects bool       `yaml:"enableHoverEffects" json:"enableHoverEffects"`
	EnableRgbEffects   bool       `yaml:"enableRgbEffects" json:"enableRgbEffects"`
	EnableEmboss       bool       `yaml:"enableEmboss" json:"enableEmboss"`
	AnimationSpeed     int        `yaml:"animationSpeed" json:"animationSpeed"`
	RgbIntensity       int        `yaml:"rgbIntensity" json:"rgbIntensity"`
	RgbBorderWidth     int        `yaml:"rgbBorderWidth" json:"rgbBorderWidth"`
	ColorTheme         ColorTheme `yaml:"colorTheme" json:"colorTheme"`

	// Music
	BackgroundMusic string `yaml:"backgroundMusic" json:"backgroundMusic"`
	AutoplayMusic   bool   `yaml:"autoplayMusic" json:"autoplayMusic"`
	LoopMusic       bool   `yaml:"loopMusic" json:"loopMusic"`
	MusicVolume     int    `yaml:"musicVolume" json:"musicVolume"`

	// Digital gifts
	EnableDigitalGifts bool          `yaml:"enableDigitalGifts" json:"enableDigitalGifts"`
	GiftAccounts       []GiftAccount `yaml:"giftAccounts" json:"giftAccounts"`

	// RSVP
	EnableRSVP   bool    `yaml:"enableRSVP" json:"enableRSVP"`
	RsvpDeadline string  `yaml:"rsvpDeadline" json:"rsvpDeadline"`
	RsvpMessage  string  `yaml:"rsvpMessage" json:"rsvpMessage"`
	Guests       []Guest `yaml:"guests" json:"guests"`
}
