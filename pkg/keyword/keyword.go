// Package keyword finds the highest-priority vocabulary term inside free text.
package keyword

import (
	"errors"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// ErrEmptyVocabulary is returned when a Matcher is built without terms.
var ErrEmptyVocabulary = errors.New("keyword: empty vocabulary")

// Matcher scans text for any vocabulary term in one pass. Terms earlier in
// the vocabulary win when several occur, so "javascript" placed before
// "java" is preferred for "javascript jobs".
type Matcher struct {
	machine  *goahocorasick.Machine
	priority map[string]int
}

// New builds a Matcher. Terms are lowercased; order defines priority.
func New(vocabulary []string) (*Matcher, error) {
	priority := make(map[string]int, len(vocabulary))
	patterns := make([][]rune, 0, len(vocabulary))
	for i, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, dup := priority[term]; dup {
			continue
		}
		priority[term] = i
		patterns = append(patterns, []rune(term))
	}
	if len(patterns) == 0 {
		return nil, ErrEmptyVocabulary
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, priority: priority}, nil
}

// MustNew is New for package-level vocabularies known to be valid.
func MustNew(vocabulary []string) *Matcher {
	m, err := New(vocabulary)
	if err != nil {
		panic(err)
	}
	return m
}

// Find returns the matched term with the lowest priority index, lowercased.
// Matching is substring based on the lowercased text.
func (m *Matcher) Find(text string) (string, bool) {
	runes := []rune(strings.ToLower(text))
	if len(runes) == 0 {
		return "", false
	}

	best, bestIdx := "", -1
	for _, hit := range m.machine.MultiPatternSearch(runes, false) {
		word := string(hit.Word)
		idx, ok := m.priority[word]
		if !ok {
			continue
		}
		if bestIdx == -1 || idx < bestIdx {
			best, bestIdx = word, idx
		}
	}
	return best, bestIdx != -1
}

// Extract is Find followed by Capitalize.
func (m *Matcher) Extract(text string) (string, bool) {
	term, ok := m.Find(text)
	if !ok {
		return "", false
	}
	return Capitalize(term), true
}

// Capitalize upper-cases the first letter and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
