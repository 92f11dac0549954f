// Package script lowers a code request into a single fail-fast Python script.
//
// Every cell becomes a block guarded by one boolean. Code cells run inside a
// try statement whose handler clears the guard, so after the first fault every
// later block is still present in the source but skipped at run time.
package script

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultIndent = "    "
	fence         = "```"
)

// Generator renders requests as Python source.
type Generator struct {
	guard    string
	language string
	indent   string
}

// New creates a Generator with the default guard, fence language and indentation.
func New() *Generator {
	return &Generator{
		guard:    domain.DefaultGuard,
		language: domain.DefaultLanguage,
		indent:   defaultIndent,
	}
}

// FromSettings creates a Generator configured by s. Empty fields keep their defaults.
func FromSettings(s domain.ScriptSettings) *Generator {
	return New().WithGuard(s.Guard).WithLanguage(s.Language)
}

// WithGuard sets the name of the guard variable. An empty name is ignored.
func (g *Generator) WithGuard(name string) *Generator {
	if name != "" {
		g.guard = name
	}
	return g
}

// WithLanguage sets the info string of the fences echoing code cells.
// An empty language is ignored.
func (g *Generator) WithLanguage(language string) *Generator {
	if language != "" {
		g.language = language
	}
	return g
}

// WithIndent sets the indentation unit. An empty unit is ignored.
func (g *Generator) WithIndent(unit string) *Generator {
	if unit != "" {
		g.indent = unit
	}
	return g
}

// Generate returns the script for req. It never fails: cell contents are
// emitted as they are, and faults are left to the interpreter running the script.
func (g *Generator) Generate(req domain.Request) string {
	var b strings.Builder

	b.WriteString(g.guard + " = True\n")

	for _, cell := range req.Cells() {
		switch c := cell.(type) {
		case *domain.CodeCell:
			g.writeCode(&b, c)
		case *domain.MarkdownCell:
			g.writeMarkdown(&b, c)
		}
	}

	if domain.HasCode(req) {
		b.WriteString("if not " + g.guard + ":\n")
		b.WriteString(g.indent + "raise SystemExit(1)\n")
	}

	return b.String()
}

// Write generates the script for req and writes it to w.
func (g *Generator) Write(w io.Writer, req domain.Request) error {
	if _, err := io.WriteString(w, g.Generate(req)); err != nil {
		return zerr.Wrap(err, "failed to write script")
	}
	return nil
}

func (g *Generator) writeMarkdown(b *strings.Builder, cell *domain.MarkdownCell) {
	b.WriteString("if " + g.guard + ":\n")

	echoed := g.writeEcho(b, cell.Contents(), g.indent)
	if echoed == 0 {
		b.WriteString(g.indent + "pass\n")
	}
}

func (g *Generator) writeCode(b *strings.Builder, cell *domain.CodeCell) {
	body := g.indent + g.indent

	b.WriteString("if " + g.guard + ":\n")

	g.writePrint(b, fence+g.language, g.indent)
	g.writeEcho(b, cell.Contents(), g.indent)
	g.writePrint(b, fence, g.indent)

	b.WriteString(g.indent + "try:\n")
	written := 0
	for line := range sourceLines(cell.Contents()) {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(body + line + "\n")
		written++
	}
	if written == 0 {
		b.WriteString(body + "pass\n")
	}

	b.WriteString(g.indent + "except Exception:\n")
	b.WriteString(body + g.guard + " = False\n")
	b.WriteString(body + `__import__("traceback").print_exc()` + "\n")
}

// writeEcho prints every non-blank line of text and returns how many it printed.
func (g *Generator) writeEcho(b *strings.Builder, text, indent string) int {
	n := 0
	for line := range sourceLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g.writePrint(b, line, indent)
		n++
	}
	return n
}

func (g *Generator) writePrint(b *strings.Builder, text, indent string) {
	b.WriteString(indent + "print(" + strconv.Quote(text) + ")\n")
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// sourceLines yields the lines of text without their terminators. Python ends
// a source line at "\n", "\r\n" and a lone "\r", so all three split here.
func sourceLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(lineBreaks.Replace(text)) {
			if !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
		}
	}
}
