package render

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var scriptTmpl = template.Must(template.New("script.js").Parse(scriptTemplate))

// Script renders script.js.
func Script(cfg invitation.Config) string {
	vol := cfg.MusicVolume
	if vol < invitation.MinMusicVolume {
		vol = invitation.MinMusicVolume
	}
	if vol > invitation.MaxMusicVolume {
		vol = invitation.MaxMusicVolume
	}

	var b strings.Builder
	err := scriptTmpl.Execute(&b, struct{ Volume string }{
		Volume: strconv.FormatFloat(float64(vol)/100, 'f', -1, 64),
	})
	if err != nil {
		panic("render: executing script template: " + err.Error())
	}
	return b.String()
}
