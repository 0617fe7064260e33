package diag

import (
	"fmt"

	document "github.com/inference-gateway/tilecfg/internal/document"
	multierr "go.uber.org/multierr"
)

// Diagnostic is one non-fatal problem found while decoding a document
type Diagnostic struct {
	File    string
	Span    document.Span
	Message string
}

func (d Diagnostic) Error() string {
	name := d.File
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, d.Span.Line, d.Span.Col, d.Message)
}

// Collector gathers diagnostics in emission order. Decoders report into it
// and keep going so a single pass surfaces every problem.
type Collector struct {
	file  string
	diags []Diagnostic
}

func NewCollector(file string) *Collector {
	return &Collector{file: file}
}

// File returns the document name diagnostics are attributed to
func (c *Collector) File() string {
	return c.file
}

// Errorf records a diagnostic at span
func (c *Collector) Errorf(span document.Span, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		File:    c.file,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// Append adds diagnostics collected elsewhere, e.g. from an included file
func (c *Collector) Append(diags ...Diagnostic) {
	c.diags = append(c.diags, diags...)
}

func (c *Collector) Len() int {
	return len(c.diags)
}

func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Err combines every diagnostic into one error, or nil when there are none
func (c *Collector) Err() error {
	var err error
	for _, d := range c.diags {
		err = multierr.Append(err, d)
	}
	return err
}
