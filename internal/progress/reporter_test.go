package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	r := &Lines{Out: &buf}
	r.Start(3)
	r.Update(1, "index.html")
	r.Update(3, "favicon.png")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Packaging 3 archive entries", "[1/3] index.html", "[3/3] favicon.png", "Packaging complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*Lines); !ok {
		t.Error("expected line output when CI is set")
	}
}

func TestBarWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	b := &Bar{Out: &buf}
	b.Start(2)
	b.Update(1, "index.html")
	b.Update(2, "style.css")
	b.Finish()
	if buf.Len() == 0 {
		t.Error("bar wrote nothing")
	}
}

func TestBarUpdateBeforeStart(t *testing.T) {
	b := &Bar{}
	b.Update(1, "index.html")
	b.Finish()
}

func TestNopSatisfiesReporter(t *testing.T) {
	var r Reporter = Nop{}
	r.Start(1)
	r.Update(1, "x")
	r.Finish()
}
