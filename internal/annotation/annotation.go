// Package annotation derives structured lead metadata from the freeform
// inquiry message. The contact form embeds tags of the form [Key: Value]
// inline with prose; this package extracts the recognized tags and produces a
// cleaned, display-ready message. Extraction is pure: it never mutates the
// stored message and yields identical results on identical input.
package annotation

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultInterest is used when a message carries no [Interest: ...] tag.
const DefaultInterest = "General"

var (
	productTagRe  = regexp.MustCompile(`\[Product:\s*([^\]]*)\]`)
	interestTagRe = regexp.MustCompile(`\[Interest:\s*([^\]]*)\]`)
	bracketSpanRe = regexp.MustCompile(`\[[^\]]*\]`)
)

// TagMatch is the result of looking up a single tag label in a message.
// Absence of a tag is an ordinary outcome, not an error.
type TagMatch struct {
	Matched bool
	Value   string
}

// Annotation is the derived metadata triple for one inquiry message. It is
// computed on read and never persisted.
type Annotation struct {
	TargetProduct *string `json:"target_product"`
	Interest      string  `json:"interest"`
	CleanMessage  string  `json:"clean_message"`
}

// matchFirst returns the first capture of re in message, trimmed.
func matchFirst(message string, re *regexp.Regexp) TagMatch {
	m := re.FindStringSubmatch(message)
	if m == nil {
		return TagMatch{}
	}
	value := strings.TrimSpace(m[1])
	if strings.Contains(value, "[") {
		// The tag format has no escaping rule, so a literal bracket inside a
		// value is almost certainly a malformed upstream submission. Keep the
		// value as captured but leave a trace for the operator.
		logrus.Warnf("tag value contains nested bracket: %q", value)
	}
	return TagMatch{Matched: true, Value: value}
}

// MatchProduct returns the first [Product: ...] tag in message, if any.
func MatchProduct(message string) TagMatch {
	return matchFirst(message, productTagRe)
}

// MatchInterest returns the first [Interest: ...] tag in message, if any.
func MatchInterest(message string) TagMatch {
	return matchFirst(message, interestTagRe)
}

// Extract computes the annotation for a raw inquiry message.
//
// The first [Product: ...] and [Interest: ...] tags are matched
// independently; labels are case-sensitive and later duplicates are ignored.
// The clean message is the input with every bracketed span removed
// left-to-right, one leading " - " separator stripped, and outer whitespace
// trimmed. Unterminated brackets do not match and are left in place.
func Extract(message string) Annotation {
	a := Annotation{Interest: DefaultInterest}

	if m := MatchProduct(message); m.Matched {
		v := m.Value
		a.TargetProduct = &v
	}
	if m := MatchInterest(message); m.Matched {
		a.Interest = m.Value
	}

	clean := bracketSpanRe.ReplaceAllString(message, "")
	clean = strings.TrimPrefix(clean, " - ")
	a.CleanMessage = strings.TrimSpace(clean)

	return a
}
