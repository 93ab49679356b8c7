// Package validation normalizes submitted form fields and collects every
// rule failure before the caller decides what to do with them.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Form is the raw submission. url.Values satisfies it; a missing key reads
// as the empty string.
type Form interface {
	Get(key string) string
}

// Failure is one failed rule, echoed back to the user.
type Failure struct {
	Field   string `json:"param,omitempty"`
	Message string `json:"msg"`
	Value   string `json:"value,omitempty"`
}

// Failures keeps rule failures in evaluation order.
type Failures []Failure

// Empty reports whether every rule passed.
func (f Failures) Empty() bool { return len(f) == 0 }

// Messages returns the failure messages in order.
func (f Failures) Messages() []string {
	out := make([]string, len(f))
	for i, v := range f {
		out[i] = v.Message
	}
	return out
}

// Check is the outcome of one rule applied to one raw value.
type Check[T any] struct {
	Value      T      // typed result
	Normalized string // value echoed back into a re-rendered form
	Failed     bool
	Message    string
}

// Rule maps a raw value to its check. Rules must be pure.
type Rule[T any] func(raw string) Check[T]

// Field binds a rule to a form key.
type Field[T any] struct {
	Name string
	Rule Rule[T]
}

// Pipeline runs fields one after another without short-circuiting.
type Pipeline struct {
	form     Form
	failures Failures
}

// New starts a pipeline over form.
func New(form Form) *Pipeline {
	return &Pipeline{form: form}
}

// Failures returns everything collected so far.
func (p *Pipeline) Failures() Failures {
	return p.failures
}

// Run evaluates field against the submission, records any failure and
// returns the check so the caller can keep the normalized value.
func Run[T any](p *Pipeline, field Field[T]) Check[T] {
	c := field.Rule(p.form.Get(field.Name))
	if c.Failed {
		p.failures = append(p.failures, Failure{
			Field:   field.Name,
			Message: c.Message,
			Value:   c.Normalized,
		})
	}
	return c
}

// Text trims, requires at least min characters, then escapes. The length is
// measured on the trimmed value.
func Text(min int, message string) Rule[string] {
	return func(raw string) Check[string] {
		trimmed := strings.TrimSpace(raw)
		escaped := Escape(trimmed)
		c := Check[string]{Value: escaped, Normalized: escaped}
		if utf8.RuneCountInString(trimmed) < min {
			c.Failed = true
			c.Message = message
		}
		return c
	}
}

// Escaped only escapes; it never fails.
func Escaped() Rule[string] {
	return func(raw string) Check[string] {
		escaped := Escape(raw)
		return Check[string]{Value: escaped, Normalized: escaped}
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-unsafe characters with entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
