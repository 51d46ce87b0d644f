package render

import (
	"html"
	"strings"
)

// Node is one piece of a generated HTML document.
type Node interface {
	write(b *strings.Builder, depth int)
}

// Attr is an element attribute. Flag attributes render as a bare name.
type Attr struct {
	Key  string
	Val  string
	Flag bool
}

// A builds a key="value" attribute.
func A(key, val string) Attr { return Attr{Key: key, Val: val} }

// Flag builds a boolean attribute such as autoplay or required.
func Flag(key string) Attr { return Attr{Key: key, Flag: true} }

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

type element struct {
	tag      string
	attrs    []Attr
	children []Node
}

// El builds an element. Nil children are skipped.
func El(tag string, attrs []Attr, children ...Node) Node {
	return &element{tag: tag, attrs: attrs, children: compact(children)}
}

// Attrs is shorthand for an attribute list.
func Attrs(a ...Attr) []Attr { return a }

// Class is shorthand for a single class attribute.
func Class(name string) []Attr { return []Attr{A("class", name)} }

func (e *element) write(b *strings.Builder, depth int) {
	indent(b, depth)
	e.open(b)
	if voidElements[e.tag] {
		b.WriteString("\n")
		return
	}
	if e.inline() {
		for _, c := range e.children {
			c.write(b, -1)
		}
	} else {
		b.WriteString("\n")
		for _, c := range e.children {
			c.write(b, depth+1)
		}
		indent(b, depth)
	}
	b.WriteString("</" + e.tag + ">\n")
}

func (e *element) open(b *strings.Builder) {
	b.WriteString("<" + e.tag)
	for _, a := range e.attrs {
		b.WriteString(" " + a.Key)
		if !a.Flag {
			b.WriteString(`="` + html.EscapeString(a.Val) + `"`)
		}
	}
	b.WriteString(">")
}

// inline reports whether the element holds only text, so it can be
// written on a single line.
func (e *element) inline() bool {
	for _, c := range e.children {
		if _, ok := c.(text); !ok {
			return false
		}
	}
	return true
}

type text string

// Text is character data. Markup-significant characters are escaped.
func Text(s string) Node { return text(s) }

func (t text) write(b *strings.Builder, depth int) {
	indent(b, depth)
	b.WriteString(html.EscapeString(string(t)))
	if depth >= 0 {
		b.WriteString("\n")
	}
}

type raw string

// Raw is written verbatim. It carries generated CSS, JS and markup.
func Raw(s string) Node { return raw(s) }

func (r raw) write(b *strings.Builder, _ int) {
	b.WriteString(string(r))
	if !strings.HasSuffix(string(r), "\n") {
		b.WriteString("\n")
	}
}

type comment string

// Comment is an HTML comment.
func Comment(s string) Node { return comment(s) }

func (c comment) write(b *strings.Builder, depth int) {
	indent(b, depth)
	b.WriteString("<!-- " + strings.ReplaceAll(string(c), "--", "- -") + " -->\n")
}

type fragment []Node

// Fragment groups nodes without a wrapper element.
func Fragment(children ...Node) Node { return fragment(compact(children)) }

func (f fragment) write(b *strings.Builder, depth int) {
	for _, c := range f {
		c.write(b, depth)
	}
}

// If returns the node built by fn when cond holds and nil otherwise. fn is
// not called when cond is false.
func If(cond bool, fn func() Node) Node {
	if !cond {
		return nil
	}
	return fn()
}

// Each maps items to nodes.
func Each[T any](items []T, fn func(int, T) Node) Node {
	out := make([]Node, 0, len(items))
	for i, it := range items {
		out = append(out, fn(i, it))
	}
	return Fragment(out...)
}

// Document serializes a complete HTML document.
func Document(root Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	root.write(&b, 0)
	return b.String()
}

func compact(nodes []Node) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if f, ok := n.(fragment); ok && len(f) == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
