package preview

import (
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/render"
)

const shellStyle = `body { margin: 0; font-family: sans-serif; background: #f4f4f4; }
.bar { display: flex; gap: 1rem; align-items: center; padding: 0.5rem 1rem; background: #222; color: #fff; }
.bar a { color: #fff; }
#warnings { margin: 0; padding: 0 1rem; color: #b45309; background: #fffbeb; }
#warnings li { padding: 0.25rem 0; }
iframe { border: 0; width: 100%; height: calc(100vh - 3rem); background: #fff; }`

const shellScript = `(function () {
  var frame = document.getElementById('preview-frame');
  var shown = 0;

  function loadWarnings() {
    fetch('/api/warnings').then(function (r) { return r.json(); }).then(function (data) {
      var list = document.getElementById('warnings');
      list.innerHTML = '';
      (data.warnings || []).forEach(function (w) {
        var li = document.createElement('li');
        li.textContent = w;
        list.appendChild(li);
      });
    });
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/ws');
    ws.onmessage = function (e) {
      var msg = JSON.parse(e.data);
      if (msg.version !== shown) {
        shown = msg.version;
        frame.src = '/frame?v=' + shown;
        loadWarnings();
      }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }

  loadWarnings();
  connect();
})();`

// shellPage hosts the preview in an iframe so the invitation's styles and
// scripts stay isolated from the preview controls.
func shellPage() string {
	return render.Document(render.El("html", render.Attrs(render.A("lang", "en")),
		render.El("head", nil,
			render.El("meta", render.Attrs(render.A("charset", "UTF-8"))),
			render.El("title", nil, render.Text("invitekit preview")),
			render.El("style", nil, render.Raw(shellStyle)),
		),
		render.El("body", nil,
			render.El("div", render.Class("bar"),
				render.El("strong", nil, render.Text("invitekit preview")),
				render.El("a", render.Attrs(render.A("href", "/export")), render.Text("Download zip")),
				render.El("a", render.Attrs(render.A("href", "/readme"), render.A("target", "_blank")), render.Text("README")),
			),
			render.El("ul", render.Attrs(render.A("id", "warnings"))),
			render.El("iframe", render.Attrs(
				render.A("id", "preview-frame"),
				render.A("src", "/frame"),
				render.A("title", "Invitation preview"),
				render.A("sandbox", "allow-scripts allow-same-origin allow-forms allow-popups"),
			)),
			render.El("script", nil, render.Raw(shellScript)),
		),
	))
}

func readmePage(cfg invitation.Config, body string) string {
	title := "README"
	if cfg.CoupleNames != "" {
		title = "README - " + cfg.CoupleNames
	}
	return render.Document(render.El("html", render.Attrs(render.A("lang", "en")),
		render.El("head", nil,
			render.El("meta", render.Attrs(render.A("charset", "UTF-8"))),
			render.El("title", nil, render.Text(title)),
			render.El("style", nil, render.Raw("body { max-width: 760px; margin: 2rem auto; font-family: sans-serif; line-height: 1.5; } pre { background: #f5f5f5; padding: 1rem; overflow-x: auto; }")),
		),
		render.El("body", nil, render.Raw(body)),
	))
}
