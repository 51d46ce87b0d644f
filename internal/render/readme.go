package render

import (
	"strings"
	"text/template"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var readmeTmpl = template.Must(template.New("README.md").Parse(readmeTemplate))

// MusicOmittedNote is appended to README.md when the background music could
// not be packaged.
const MusicOmittedNote = "NOTE: The music file could not be included in this zip. Please add your own music.mp3 file."

type readmeView struct {
	Title string
	Music bool
	Notes []string
}

// Readme renders README.md. notes are appended verbatim, one paragraph each.
func Readme(cfg invitation.Config, notes []string) string {
	var b strings.Builder
	err := readmeTmpl.Execute(&b, readmeView{
		Title: titleText(cfg),
		Music: cfg.BackgroundMusic != "",
		Notes: notes,
	})
	if err != nil {
		panic("render: executing readme template: " + err.Error())
	}
	return b.String()
}

const readmeTemplate = `# {{.Title}}

## Overview
This is a custom wedding invitation. It contains all the files needed to host your own wedding invitation website.

## File structure
After you extract the zip file you will find:

    index.html
    guest.html
    style.css
    script.js
{{- if .Music}}
    music.mp3
{{- end}}
    README.md
    favicon.png

- ` + "`index.html`" + `: the invitation itself. Open it in a browser.
- ` + "`guest.html`" + `: the guest list, showing the RSVPs stored in this browser.
- ` + "`style.css`" + `: the appearance of the invitation.
- ` + "`script.js`" + `: image fallbacks, the RSVP form and the music player.
{{- if .Music}}
- ` + "`music.mp3`" + `: background music.
{{- end}}
- ` + "`README.md`" + `: this file.
- ` + "`favicon.png`" + `: the icon shown in browser tabs.

Photos you uploaded are included as main-image, male-photo, female-photo and gallery-image-N files.

## Open it locally

### On a computer (Windows/Mac/Linux)
1. Extract the zip file into a folder.
2. Open the extracted folder.
3. Double-click ` + "`index.html`" + `.

### On a phone or tablet
1. Extract the zip file with a file manager app (Files on iOS, ZArchiver on Android).
2. Open the extracted folder and tap ` + "`index.html`" + `.
3. Choose a browser to open it.

## Host it on a server

### 1. Upload the files
Upload the extracted folder to your web server, for example with scp:

    scp -r wedding-invitation/ user@your-vps-ip:/var/www/html/

### 2. Configure the web server
For Nginx:

    server {
      listen 80;
      server_name your-domain.com;

      root /var/www/html/wedding-invitation;
      index index.html;

      location / {
        try_files $uri $uri/ =404;
      }
    }

For Apache, place the folder in the document root of your site.

### 3. Open the invitation
Browse to http://your-vps-ip/ or http://your-domain.com/.

## FAQ
{{- if .Music}}

**Why doesn't the music start automatically?**
Some browsers block audio autoplay. Tap the music button or interact with the page to start it.

**How do I change the music?**
Replace music.mp3 with another file and keep the name music.mp3.
{{- end}}

**How do I change the favicon?**
Replace favicon.png with another icon and keep the name favicon.png.

**Where are the RSVPs stored?**
RSVPs are saved in the browser of whoever submits them. They are not sent to any server.

## Customization
- Edit index.html to change content.
- Edit style.css to change styling.
- Edit script.js to change behavior.
{{- range .Notes}}

{{.}}
{{- end}}
`
