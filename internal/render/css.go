package render

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var styleTmpl = template.Must(template.New("style.css").Parse(styleTemplate))

// styleView is the derived data the stylesheet template reads.
type styleView struct {
	Font       string
	Background string
	Primary    string
	Secondary  string
	BodySize   int
	HeaderSize int

	CoupleSize   string
	DateSize     string
	CoupleSizeMd string
	DateSizeMd   string
	CoupleSizeSm string
	DateSizeSm   string

	BackgroundImage string

	Effects  bool
	RGB      bool
	Shadows  bool
	Hover    bool
	Emboss   bool
	Radius   string
	Border   int
	Opacity  string
	Speed    int
	Gradient string
}

func newStyleView(cfg invitation.Config, background string) styleView {
	header := orInt(cfg.HeaderFontSize, DefaultHeaderFontSize)
	bg := or(cfg.BackgroundColor, DefaultBackgroundColor)
	if strings.EqualFold(cfg.BackgroundColor, invitation.Transparent) {
		bg = invitation.Transparent
	}
	intensity := clamp(cfg.RgbIntensity, invitation.MinRgbIntensity, invitation.MaxRgbIntensity, DefaultRgbIntensity)

	v := styleView{
		Font:       FontFamily(cfg.FontFamily),
		Background: bg,
		Primary:    or(cfg.PrimaryColor, DefaultPrimaryColor),
		Secondary:  or(cfg.SecondaryColor, DefaultSecondaryColor),
		BodySize:   orInt(cfg.BodyFontSize, DefaultBodyFontSize),
		HeaderSize: header,

		CoupleSize:   scale(header, 1.5),
		DateSize:     scale(header, 0.7),
		CoupleSizeMd: scale(header, 1.2),
		DateSizeMd:   scale(header, 0.6),
		CoupleSizeSm: scale(header, 1),
		DateSizeSm:   scale(header, 0.5),

		Effects:  cfg.EnableEffects,
		RGB:      cfg.EnableEffects && cfg.EnableRgbEffects,
		Shadows:  cfg.EnableEffects && cfg.EnableShadows,
		Hover:    cfg.EnableEffects && cfg.EnableHoverEffects,
		Emboss:   cfg.EnableEffects && cfg.EnableEmboss,
		Radius:   ShapeRadius(cfg.PhotoShape),
		Border:   clamp(cfg.RgbBorderWidth, invitation.MinRgbBorderWidth, invitation.MaxRgbBorderWidth, DefaultRgbBorderWidth),
		Opacity:  strconv.FormatFloat(float64(intensity)/10, 'f', -1, 64),
		Speed:    clamp(cfg.AnimationSpeed, invitation.MinAnimationSpeed, invitation.MaxAnimationSpeed, DefaultAnimationSpeed),
		Gradient: Gradient(cfg.ColorTheme),
	}
	if background != "" {
		v.BackgroundImage = cssURL(background)
	}
	return v
}

func scale(px int, factor float64) string {
	return strconv.FormatFloat(float64(px)*factor, 'f', -1, 64)
}

// Stylesheet renders style.css. background is the already resolved
// effective background reference, or "" for none.
func Stylesheet(cfg invitation.Config, background string) string {
	var b strings.Builder
	if err := styleTmpl.Execute(&b, newStyleView(cfg, background)); err != nil {
		// The template and view are fixed; a failure here is a programming error.
		panic("render: executing stylesheet template: " + err.Error())
	}
	return b.String()
}
