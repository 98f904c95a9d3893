// Package validation checks character positions requests before matching.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/anmicius0/lexicon/internal/config"
)

// rule is a single predicate with the failure it reports when the predicate
// does not hold.
type rule struct {
	valid   func(in *config.MatchInput) bool
	code    string
	message string
}

// inputRules are evaluated in order and every failure is collected.
var inputRules = []rule{
	{
		valid:   func(in *config.MatchInput) bool { return in.Text != nil },
		code:    CodeTextNotNull,
		message: MessageTextNotNull,
	},
	{
		valid:   func(in *config.MatchInput) bool { return notBlank(in.Text) },
		code:    CodeTextNotEmpty,
		message: MessageTextNotEmpty,
	},
	{
		valid:   func(in *config.MatchInput) bool { return in.Subtext != nil },
		code:    CodeSubtextNotNull,
		message: MessageSubtextNotNull,
	},
	{
		valid:   func(in *config.MatchInput) bool { return notBlank(in.Subtext) },
		code:    CodeSubtextNotEmpty,
		message: MessageSubtextNotEmpty,
	},
	{
		valid: func(in *config.MatchInput) bool {
			return in.Text != nil && in.Subtext != nil &&
				utf8.RuneCountInString(*in.Text) >= utf8.RuneCountInString(*in.Subtext)
		},
		code:    CodeSubtextLongerThanText,
		message: MessageSubtextLongerThanText,
	},
}

// Validator validates MatchInput values. It holds no per-call state and is
// safe for concurrent use.
type Validator struct {
	rules []rule
}

// NewValidator returns a Validator with the standard rule set.
func NewValidator() *Validator {
	return &Validator{rules: inputRules}
}

// Validate checks input and returns every failing rule. A nil input, a nil
// text or a nil subtext stop validation early with a single failure.
func (v *Validator) Validate(input *config.MatchInput) Outcome {
	switch {
	case input == nil:
		return single(CodeInputNotNull, MessageInputNotNull)
	case input.Text == nil:
		return single(CodeTextNotNull, MessageTextNotNull)
	case input.Subtext == nil:
		return single(CodeSubtextNotNull, MessageSubtextNotNull)
	}

	var outcome Outcome
	for _, r := range v.rules {
		if !r.valid(input) {
			outcome.Failures = append(outcome.Failures, Failure{Code: r.code, Message: r.message})
		}
	}
	return outcome
}

// notBlank rejects nil, empty and whitespace-only strings.
func notBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
