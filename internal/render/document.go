package render

import (
	"fmt"
	"strconv"

	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

const (
	fontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0-beta3/css/all.min.css"
	jsPDFURL       = "https://cdnjs.cloudflare.com/ajax/libs/jspdf/2.4.0/jspdf.umd.min.js"
)

// Placeholder text shown for empty header fields.
const (
	PlaceholderCoupleNames = "Couple Names"
	PlaceholderDate        = "Wedding Date"
	PlaceholderTime        = "00:00"
	PlaceholderVenue       = "Wedding Venue"
	PlaceholderAddress     = "Venue Address"
	PlaceholderTitle       = "Wedding Invitation"
)

const giftIntro = "Your presence is the greatest gift. However, if you wish to honor us with a gift, we've provided the following options:"

// page describes how one invitation document is assembled.
type page struct {
	cfg        invitation.Config
	refs       assets.Refs
	standalone bool
}

// Standalone renders the single-file document used by the live preview.
// CSS and JS are inline and media is resolved for a detached surface, so the
// document references none of the bundle's files.
func Standalone(cfg invitation.Config, placeholder string) string {
	p := page{cfg: cfg, refs: assets.PreviewRefs(cfg, placeholder), standalone: true}
	return Document(p.html())
}

// Index renders index.html of the split bundle using refs for every media slot.
func Index(cfg invitation.Config, refs assets.Refs) string {
	p := page{cfg: cfg, refs: refs}
	return Document(p.html())
}

func (p page) html() Node {
	return El("html", Attrs(A("lang", "en")), p.head(), p.body())
}

func (p page) head() Node {
	cfg := p.cfg
	if p.standalone {
		return El("head", nil,
			meta(),
			El("title", nil, Text(titleText(cfg))),
			stylesheetLink(GoogleFontsURL(cfg.FontFamily)),
			stylesheetLink(fontAwesomeURL),
			El("link", Attrs(A("rel", "icon"), A("href", FaviconDataURI()), A("type", "image/png"))),
			El("style", nil, Raw(Stylesheet(cfg, p.refs.Background))),
			El("script", nil, Raw(Script(cfg))),
		)
	}
	return El("head", nil,
		meta(),
		El("title", nil, Text(titleText(cfg))),
		stylesheetLink(GoogleFontsURL(cfg.FontFamily)),
		stylesheetLink(fontAwesomeURL),
		stylesheetLink("style.css"),
		El("link", Attrs(A("rel", "icon"), A("href", "favicon.png"), A("type", "image/png"))),
		El("script", Attrs(A("src", "script.js"))),
	)
}

func meta() Node {
	return Fragment(
		El("meta", Attrs(A("charset", "UTF-8"))),
		El("meta", Attrs(A("name", "viewport"), A("content", "width=device-width, initial-scale=1.0"))),
	)
}

func stylesheetLink(href string) Node {
	return El("link", Attrs(A("rel", "stylesheet"), A("href", href)))
}

func titleText(cfg invitation.Config) string {
	if cfg.CoupleNames == "" {
		return PlaceholderTitle
	}
	return cfg.CoupleNames
}

func (p page) body() Node {
	cfg, refs := p.cfg, p.refs
	return El("body", nil,
		El("div", Attrs(A("id", "loading-container"), A("class", "loading-container")),
			El("div", Class("loading-spinner")),
		),
		If(refs.Background != "", func() Node { return El("div", Class("bg-container")) }),
		El("div", Class("container"),
			p.mainImage(),
			header(cfg),
			p.couplePhotos(),
			p.messages(),
			p.gallery(),
			p.mapSection(),
			p.gifts(),
			p.rsvp(),
			If(!p.standalone, guestListLink),
		),
		p.music(),
	)
}

func (p page) mainImage() Node {
	return If(p.refs.MainImage != "", func() Node {
		return El("div", Class("main-image-container"),
			El("div", Class("main-image"),
				El("div", Class("main-image-frame photo-border"),
					img(p.refs.MainImage, "Main Wedding Photo"),
				),
			),
		)
	})
}

func img(src, alt string) Node {
	return El("img", Attrs(A("src", src), A("alt", alt)))
}

func header(cfg invitation.Config) Node {
	date := FormatLongDate(cfg.EventDate)
	if date == "" {
		date = PlaceholderDate
	}
	timeText := cfg.EventTime
	if timeText == "" {
		timeText = PlaceholderTime
	}
	return El("header", nil,
		El("div", Class("text-container"),
			El("div", Class("couple-names"), Text(orText(cfg.CoupleNames, PlaceholderCoupleNames))),
			El("div", Class("date-time"), Text(date+" • "+timeText)),
			El("div", Class("location"),
				El("h3", nil, Text(orText(cfg.EventLocation, PlaceholderVenue))),
				El("p", nil, Text(orText(cfg.EventAddress, PlaceholderAddress))),
			),
		),
	)
}

func orText(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (p page) couplePhotos() Node {
	refs := p.refs
	return If(refs.MalePhoto != "" || refs.FemalePhoto != "", func() Node {
		return El("div", Class("couple-photos"),
			If(refs.MalePhoto != "", func() Node { return photo(refs.MalePhoto, "Groom") }),
			If(refs.FemalePhoto != "", func() Node { return photo(refs.FemalePhoto, "Bride") }),
		)
	})
}

func photo(src, alt string) Node {
	return El("div", Class("photo-container"),
		El("div", Class("photo-frame photo-border"), img(src, alt)),
	)
}

// sectionClass returns the class of a content section, adding the glow
// border when rgb effects are on.
func (p page) sectionClass() []Attr {
	if p.cfg.EnableEffects && p.cfg.EnableRgbEffects {
		return Class("section rgb-border")
	}
	return Class("section")
}

func (p page) messages() Node {
	cfg := p.cfg
	legacy := cfg.ShowMessage && cfg.Message != ""
	legacyParents := cfg.ShowParentsMessage && cfg.ParentsMessage != ""
	if !legacy && !legacyParents && len(cfg.WeddingMessages) == 0 && len(cfg.ParentsMessages) == 0 {
		return nil
	}
	return El("div", p.sectionClass(),
		If(legacy, func() Node { return El("div", Class("message"), Text(cfg.Message)) }),
		Each(cfg.WeddingMessages, func(_ int, m invitation.Message) Node {
			return El("div", Class("message"), Text(m.Content))
		}),
		If(legacyParents, func() Node { return El("div", Class("parents-message"), Text(cfg.ParentsMessage)) }),
		Each(cfg.ParentsMessages, func(_ int, m invitation.Message) Node {
			return El("div", Class("parents-message"), Text(m.Content))
		}),
	)
}

func (p page) gallery() Node {
	var items []Node
	for i, src := range p.refs.Gallery {
		if src == "" {
			continue
		}
		items = append(items, El("div", Class("gallery-item"),
			img(src, "Gallery Image "+strconv.Itoa(i+1)),
		))
	}
	if len(items) == 0 {
		return nil
	}
	return El("div", p.sectionClass(),
		El("h2", Class("section-title"), Text("Our Gallery")),
		El("div", Class("gallery"), items...),
	)
}

func (p page) mapSection() Node {
	return If(p.cfg.MapLocation != "", func() Node {
		return El("div", p.sectionClass(),
			El("h2", Class("section-title"), Text("Location")),
			El("div", Class("map-container"),
				El("iframe", Attrs(
					A("src", p.cfg.MapLocation),
					A("width", "100%"),
					A("height", "450"),
					A("style", "border:0;"),
					A("allowfullscreen", ""),
					A("loading", "lazy"),
					A("referrerpolicy", "no-referrer-when-downgrade"),
				)),
			),
		)
	})
}

func (p page) gifts() Node {
	cfg := p.cfg
	return If(cfg.EnableDigitalGifts && len(cfg.GiftAccounts) > 0, func() Node {
		return El("div", p.sectionClass(),
			El("h2", Class("section-title"), Text("Digital Gifts")),
			El("p", nil, Text(giftIntro)),
			El("div", Class("gift-container"),
				Each(cfg.GiftAccounts, func(_ int, acc invitation.GiftAccount) Node {
					return El("div", Class("gift-card"),
						El("div", Class("gift-card-header"), Text(acc.Bank)),
						El("div", Class("gift-card-content"),
							El("p", nil, Text(acc.AccountName)),
							El("div", Class("gift-card-number"), Text(acc.AccountNumber)),
						),
					)
				}),
			),
		)
	})
}

func (p page) rsvp() Node {
	cfg := p.cfg
	return If(cfg.EnableRSVP, func() Node {
		deadline := FormatShortDate(cfg.RsvpDeadline)
		return El("div", p.sectionClass(),
			El("h2", Class("section-title"), Text("RSVP")),
			If(cfg.RsvpMessage != "", func() Node { return El("p", nil, Text(cfg.RsvpMessage)) }),
			If(deadline != "", func() Node {
				return El("p", Class("text-muted-foreground"), Text("Please respond by "+deadline))
			}),
			El("div", Class("rsvp-form"), rsvpForm()),
		)
	})
}

func rsvpForm() Node {
	guestOptions := make([]Node, 0, 5)
	for i := 1; i <= 5; i++ {
		n := strconv.Itoa(i)
		guestOptions = append(guestOptions, El("option", Attrs(A("value", n)), Text(n)))
	}
	return El("form", Attrs(A("id", "rsvp-form")),
		formGroup("name", "Your Name",
			El("input", Attrs(A("class", "form-input"), A("type", "text"), A("id", "name"), A("name", "name"), Flag("required")))),
		formGroup("alamat", "Home Address",
			El("input", Attrs(A("class", "form-input"), A("type", "text"), A("id", "alamat"), A("name", "alamat")))),
		formGroup("phone", "Phone",
			El("input", Attrs(A("class", "form-input"), A("type", "tel"), A("id", "phone"), A("name", "phone")))),
		formGroup("attending", "Will you attend?",
			El("select", Attrs(A("class", "form-select"), A("id", "attending"), A("name", "attending"), Flag("required")),
				El("option", Attrs(A("value", "")), Text("Please select")),
				El("option", Attrs(A("value", "yes")), Text("Yes, I will attend")),
				El("option", Attrs(A("value", "no")), Text("No, I cannot attend")),
			)),
		El("div", Attrs(A("class", "form-group"), A("id", "guests-group"), A("style", "display: none;")),
			El("label", Attrs(A("class", "form-label"), A("for", "guests")), Text("Number of Guests")),
			El("select", Attrs(A("class", "form-select"), A("id", "guests"), A("name", "guests")), guestOptions...),
		),
		formGroup("message", "Message (Optional)",
			El("textarea", Attrs(A("class", "form-textarea"), A("id", "message"), A("name", "message")))),
		El("div", Attrs(A("class", "form-group"), A("style", "text-align: center;")),
			El("button", Attrs(A("type", "submit"), A("class", "form-button")), Text("Submit RSVP")),
		),
	)
}

func formGroup(id, label string, control Node) Node {
	return El("div", Class("form-group"),
		El("label", Attrs(A("class", "form-label"), A("for", id)), Text(label)),
		control,
	)
}

func guestListLink() Node {
	return El("div", Class("section"),
		El("h2", Attrs(A("class", "guest-link"), A("onclick", "openGuestList()")), Text("Guest List")),
		El("p", nil, Text("We can't wait to celebrate with you!")),
	)
}

func (p page) music() Node {
	cfg := p.cfg
	return If(p.refs.Music != "", func() Node {
		audio := Attrs(A("id", "background-music"), A("src", p.refs.Music))
		if cfg.AutoplayMusic {
			audio = append(audio, Flag("autoplay"))
		}
		if cfg.LoopMusic {
			audio = append(audio, Flag("loop"))
		}
		audio = append(audio, A("style", "display: none;"))
		return Fragment(
			El("div", Attrs(A("class", "music-player"), A("id", "music-player")),
				El("i", Class("fas fa-music")),
			),
			El("audio", audio),
		)
	})
}

// Guest renders guest.html, the RSVP list page backed by the browser's
// local RSVP store.
func Guest(cfg invitation.Config, refs assets.Refs) string {
	date := FormatLongDate(cfg.EventDate)
	if date == "" {
		date = "Event Date"
	}
	eventTime := orText(cfg.EventTime, "Event Time")
	p := page{cfg: cfg, refs: refs}

	doc := El("html", Attrs(A("lang", "en")),
		El("head", nil,
			meta(),
			El("title", nil, Text(fmt.Sprintf("Guest List - %s", titleText(cfg)))),
			stylesheetLink(GoogleFontsURL(cfg.FontFamily)),
			stylesheetLink(fontAwesomeURL),
			El("link", Attrs(A("rel", "icon"), A("href", "favicon.png"), A("type", "image/png"))),
			stylesheetLink("style.css"),
			El("script", Attrs(A("src", jsPDFURL))),
		),
		El("body", nil,
			If(refs.Background != "", func() Node { return El("div", Class("bg-container")) }),
			El("div", Class("container"),
				El("h3", nil, Text("Guest List")),
				El("div", Class("location"), Text(titleText(cfg))),
				El("div", Class("date-time"), Text(date+" at "+eventTime)),
				El("div", Class("location"), Text(orText(cfg.EventLocation, "Event Location"))),
				El("div", p.sectionClass(),
					El("div", Class("guest-toolbar"),
						El("a", Attrs(A("href", "index.html"), A("title", "Back to the invitation")),
							El("i", Class("fas fa-arrow-left")),
						),
						El("div", Class("guest-actions"),
							El("button", Attrs(A("type", "button"), A("class", "form-button"), A("id", "show-rsvp-form-btn"), A("title", "Add RSVP")),
								El("i", Class("fas fa-plus")),
							),
							El("button", Attrs(A("type", "button"), A("class", "form-button"), A("id", "download-pdf-btn"), A("title", "Download PDF")),
								El("i", Class("fas fa-download")),
							),
						),
					),
					guestTable(),
					El("p", Attrs(A("class", "empty-message"), A("id", "empty-message")), Text("No guests have RSVP'd yet.")),
				),
				El("div", Attrs(A("id", "pagination"), A("class", "pagination"))),
				guestModal(),
			),
			El("script", nil, Raw(guestScript)),
		),
	)
	return Document(doc)
}

var guestColumns = []string{"#", "Name", "Address", "Phone", "Attending", "Guests", "Message"}

func guestTable() Node {
	return El("table", nil,
		El("thead", nil,
			El("tr", nil, Each(guestColumns, func(_ int, c string) Node { return El("th", nil, Text(c)) })),
		),
		El("tbody", Attrs(A("id", "guest-list"))),
	)
}

func guestModal() Node {
	field := func(id, label string, control Node) Node {
		return El("div", nil,
			El("label", Attrs(A("for", id)), Text(label)),
			control,
		)
	}
	return El("div", Attrs(A("id", "rsvp-modal"), A("class", "modal"), A("style", "display: none;")),
		El("div", Class("modal-content"),
			El("span", Attrs(A("class", "close-btn"), A("id", "close-modal-btn")), Text("×")),
			El("h3", nil, Text("Add RSVP")),
			El("form", Attrs(A("id", "rsvp-form")),
				field("name", "Name:", El("input", Attrs(A("type", "text"), A("id", "name"), Flag("required")))),
				field("address", "Address:", El("input", Attrs(A("type", "text"), A("id", "address"), Flag("required")))),
				field("phone", "Phone:", El("input", Attrs(A("type", "text"), A("id", "phone"), Flag("required")))),
				field("attending", "Attending:", El("select", Attrs(A("id", "attending"), Flag("required")),
					El("option", Attrs(A("value", "yes")), Text("Yes")),
					El("option", Attrs(A("value", "no")), Text("No")),
				)),
				El("div", Attrs(A("id", "guests-container")),
					El("label", Attrs(A("for", "guests")), Text("Guests:")),
					El("input", Attrs(A("type", "number"), A("id", "guests"), A("min", "0"))),
				),
				field("message", "Message:", El("textarea", Attrs(A("id", "message")))),
				El("button", Attrs(A("type", "submit")), Text("Submit RSVP")),
			),
		),
	)
}
