package safety

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

// RefusalMessage is returned for blocked and off-topic messages alike.
const RefusalMessage = "Sorry, I’m here to help with portfolio-related questions only."

// DefaultBlockedTerms extend the built-in profanity dictionary.
var DefaultBlockedTerms = []string{"adult"}

// portfolioFalsePositives are words recruiters use that embed a dictionary
// entry ("ass", "sex").
var portfolioFalsePositives = []string{
	"assess",
	"essex",
	"middlesex",
	"sextant",
	"sexagesimal",
}

// Filter is a lexical content gate.
type Filter interface {
	ContainsViolation(message string) bool
}

type denylistFilter struct {
	detector *goaway.ProfanityDetector
}

var _ Filter = (*denylistFilter)(nil)

// New builds a Filter over the default profanity dictionary plus extraTerms.
func New(extraTerms ...string) Filter {
	profanities := make([]string, 0, len(goaway.DefaultProfanities)+len(extraTerms))
	profanities = append(profanities, goaway.DefaultProfanities...)
	for _, term := range extraTerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			profanities = append(profanities, term)
		}
	}

	falsePositives := make([]string, 0, len(goaway.DefaultFalsePositives)+len(portfolioFalsePositives))
	falsePositives = append(falsePositives, goaway.DefaultFalsePositives...)
	falsePositives = append(falsePositives, portfolioFalsePositives...)

	// Spaces are kept so a term never matches across a word boundary
	// ("his experience").
	detector := goaway.NewProfanityDetector().
		WithSanitizeSpaces(false).
		WithCustomDictionary(profanities, falsePositives, goaway.DefaultFalseNegatives)

	return &denylistFilter{detector: detector}
}

// ContainsViolation reports whether message contains a blocked term.
func (f *denylistFilter) ContainsViolation(message string) bool {
	if strings.TrimSpace(message) == "" {
		return false
	}
	return f.detector.IsProfane(message)
}
