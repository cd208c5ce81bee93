// Package renderer turns the application's views into markdown strings.
//
// Every renderer is a pure function from a view struct to a string, so the
// command layer stays free of formatting concerns and the output is easy to
// test.
package renderer

import (
	"fmt"
	"strings"
)

// printer accumulates markdown line by line, for documents whose layout does
// not fit the table-oriented builders.
type printer struct {
	*strings.Builder
}

func newPrinter() *printer { return &printer{Builder: &strings.Builder{}} }

// Printf formats according to a format specifier and writes to the printer's buffer.
func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
}
