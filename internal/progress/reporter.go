// Package progress reports export progress on the terminal.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter receives one update per archive entry while an invitation is
// packaged.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a Bar when stderr is an interactive terminal, and a
// Lines reporter otherwise (CI logs, pipes, redirected output).
func NewReporter() Reporter {
	if os.Getenv("CI") == "" && isatty.IsTerminal(os.Stderr.Fd()) {
		return &Bar{Out: os.Stderr}
	}
	return &Lines{Out: os.Stderr}
}

// Bar draws a single updating progress bar.
type Bar struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.Out),
		progressbar.OptionSetDescription("packaging"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Update(current int, entry string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(fmt.Sprintf("%-22s", entry))
	_ = b.bar.Set(current)
}

func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

// Lines prints one line per archive entry.
type Lines struct {
	Out   io.Writer
	total int
}

func (l *Lines) Start(total int) {
	l.total = total
	fmt.Fprintf(l.Out, "Packaging %d archive entries\n", total)
}

func (l *Lines) Update(current int, entry string) {
	fmt.Fprintf(l.Out, "[%d/%d] %s\n", current, l.total, entry)
}

func (l *Lines) Finish() {
	fmt.Fprintln(l.Out, "Packaging complete")
}

// Nop discards all progress. It is used by the MCP server and the preview
// export endpoint, where nothing is attached to a terminal.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
