// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies free-text author affiliations. An
// affiliation is non-academic when it names a commercial organization, and
// marks a corresponding author when it carries contact details.
package affiliation

import (
	"regexp"
	"strings"
)

// defaultKeywords are the substrings whose presence marks a commercial or
// industry affiliation. Matching is case-sensitive.
var defaultKeywords = []string{
	"Inc",
	"Ltd",
	"Corporation",
	"Pharma",
	"Biotech",
	"Biomedical",
	"GmbH",
	"S.A.",
	"LLC",
	"Laboratories",
	"Sciences",
}

// defaultContactSubstrings are matched case-sensitively by IsContact.
var defaultContactSubstrings = []string{"@gmail.com"}

// contactWord matches "email" as a whole word, ignoring case. Word
// characters are Unicode letters, digits and underscore, so "Señemail" does
// not match.
var contactWord = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])email(?:$|[^\p{L}\p{N}_])`)

// Classifier holds an immutable rule set. The zero value matches nothing;
// use Default or New.
type Classifier struct {
	keywords   []string
	substrings []string
	pattern    *regexp.Regexp
}

// Default returns the built-in rule set.
func Default() Classifier {
	return New(defaultKeywords)
}

// New returns a classifier using keywords for the non-academic rule and the
// built-in contact heuristic. An empty keyword list selects the defaults.
func New(keywords []string) Classifier {
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}
	return Classifier{
		keywords:   append([]string(nil), keywords...),
		substrings: append([]string(nil), defaultContactSubstrings...),
		pattern:    contactWord,
	}
}

// Keywords returns a copy of the non-academic keyword set.
func (c Classifier) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// MatchedKeyword returns the first keyword contained in affiliation.
func (c Classifier) MatchedKeyword(affiliation string) (string, bool) {
	for _, kw := range c.keywords {
		if strings.Contains(affiliation, kw) {
			return kw, true
		}
	}
	return "", false
}

// IsNonAcademic reports whether affiliation names a commercial organization.
func (c Classifier) IsNonAcademic(affiliation string) bool {
	_, ok := c.MatchedKeyword(affiliation)
	return ok
}

// IsContact reports whether affiliation carries corresponding-author contact
// details: a gmail address or the word "email".
func (c Classifier) IsContact(affiliation string) bool {
	for _, s := range c.substrings {
		if strings.Contains(affiliation, s) {
			return true
		}
	}
	return c.pattern != nil && c.pattern.MatchString(affiliation)
}
