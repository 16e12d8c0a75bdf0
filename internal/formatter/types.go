package formatter

import (
	"fmt"
	"strings"

	"internship-assistant/internal/model"
)

// NoDataText is how the NO_DATA sentinel renders inside a prompt.
const NoDataText = "NO DATA"

// FactSheet is verified data rendered for the composer: either the NO_DATA
// sentinel or a title followed by ordered lines.
type FactSheet struct {
	title  string
	lines  []string
	noData bool
}

// NoData returns the sentinel sheet.
func NoData() FactSheet {
	return FactSheet{noData: true}
}

// NewFactSheet starts a sheet with a title line.
func NewFactSheet(title string) *FactSheet {
	return &FactSheet{title: title}
}

// Add appends one line.
func (f *FactSheet) Add(line string) *FactSheet {
	f.lines = append(f.lines, line)
	return f
}

// Addf appends one formatted line.
func (f *FactSheet) Addf(format string, args ...any) *FactSheet {
	return f.Add(fmt.Sprintf(format, args...))
}

// IsNoData reports whether f is the sentinel.
func (f FactSheet) IsNoData() bool {
	return f.noData
}

// Lines returns a copy of the fact lines.
func (f FactSheet) Lines() []string {
	return append([]string(nil), f.lines...)
}

func (f FactSheet) String() string {
	if f.noData {
		return NoDataText
	}
	var sb strings.Builder
	sb.WriteString(f.title)
	for _, l := range f.lines {
		sb.WriteString("\n")
		sb.WriteString(l)
	}
	return sb.String()
}

// Kind tells the composer how to treat an Outcome.
type Kind int

const (
	// KindGrounded carries a FactSheet the answer must be restricted to.
	KindGrounded Kind = iota
	// KindOpen carries a standalone instruction with no data behind it.
	KindOpen
)

// Outcome is the formatter's result for one question.
type Outcome struct {
	Kind   Kind
	Intent model.Intent

	// Grounded
	Sheet       FactSheet
	RoleContext string

	// Open
	Instruction string
}
