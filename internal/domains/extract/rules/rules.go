// Package rules holds the ordered, named pattern recognizers the extractor
// runs over inquiry text. Each rule is independently testable; matching is
// always first-match-wins in the declared order.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rule derives one canonical field value from free text.
type Rule struct {
	Name    string
	pattern *regexp.Regexp
	// normalize converts a raw submatch into the canonical value. A false
	// return rejects the match (e.g. an impossible calendar date).
	normalize func(match []string) (string, bool)
}

// Apply runs the rule against the text and returns the first occurrence that
// survives normalization. The second return is false when nothing matches or
// every match fails normalization.
func (r Rule) Apply(text string) (string, bool) {
	for _, match := range r.pattern.FindAllStringSubmatch(text, -1) {
		if value, ok := r.normalize(match); ok {
			return value, ok
		}
	}

	return "", false
}

// FirstMatch evaluates the rules in order and returns the first successful
// result.
func FirstMatch(rules []Rule, text string) (string, bool) {
	for _, rule := range rules {
		if value, ok := rule.Apply(text); ok {
			return value, ok
		}
	}

	return "", false
}

var monthsByName = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

const monthNameAlternatives = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

// canonicalDate validates the components against the real calendar and
// renders them as YYYY-MM-DD.
func canonicalDate(year, month, day int) (string, bool) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func numericDate(yearIdx, monthIdx, dayIdx int) func(match []string) (string, bool) {
	return func(match []string) (string, bool) {
		year, _ := strconv.Atoi(match[yearIdx])
		month, _ := strconv.Atoi(match[monthIdx])
		day, _ := strconv.Atoi(match[dayIdx])

		return canonicalDate(year, month, day)
	}
}

// DateRules returns the date recognizers in priority order: ISO first, then
// the dotted year-first form common in Hungarian text, then day-month-year,
// then English month names.
func DateRules() []Rule {
	return []Rule{
		{
			Name:      "date-iso",
			pattern:   regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
			normalize: numericDate(1, 2, 3),
		},
		{
			Name:      "date-dotted-year-first",
			pattern:   regexp.MustCompile(`\b(\d{4})\.\s?(\d{1,2})\.\s?(\d{1,2})\b`),
			normalize: numericDate(1, 2, 3),
		},
		{
			Name:      "date-day-month-year",
			pattern:   regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})[./](\d{4})\b`),
			normalize: numericDate(3, 2, 1),
		},
		{
			Name:    "date-month-name",
			pattern: regexp.MustCompile(`(?i)\b(` + monthNameAlternatives + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`),
			normalize: func(match []string) (string, bool) {
				month := monthsByName[strings.ToLower(match[1])]
				day, _ := strconv.Atoi(match[2])
				year, _ := strconv.Atoi(match[3])

				return canonicalDate(year, month, day)
			},
		},
		{
			Name:    "date-day-month-name",
			pattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthNameAlternatives + `)\.?,?\s+(\d{4})\b`),
			normalize: func(match []string) (string, bool) {
				day, _ := strconv.Atoi(match[1])
				month := monthsByName[strings.ToLower(match[2])]
				year, _ := strconv.Atoi(match[3])

				return canonicalDate(year, month, day)
			},
		},
	}
}

// Trailing word boundaries are deliberately absent: Go's \b is ASCII-only
// and would never match after accented units like "fő" or "gäste".
var headcountPattern = regexp.MustCompile(
	`(?i)(\d{1,4})\s*(fő|főre|vendég|vendégre|személy|people|persons?|guests?|attendees?|personen|gäste|leute)`)

// ExtractHeadcount finds the first "<number> <people-word>" occurrence in any
// supported language.
func ExtractHeadcount(text string) (int, bool) {
	match := headcountPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	count, err := strconv.Atoi(match[1])
	if err != nil || count <= 0 {
		return 0, false
	}

	return count, true
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

func ExtractEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)

	return match, match != ""
}

// Permissive on purpose: international prefixes, separators and grouping all
// vary, so false positives are accepted as best-effort.
var phonePattern = regexp.MustCompile(`\+?\d[\d\s\-/()]{6,}\d`)

func ExtractPhone(text string) (string, bool) {
	match := phonePattern.FindString(text)

	return strings.TrimSpace(match), match != ""
}

var namePattern = regexp.MustCompile(
	`[A-ZÁÉÍÓÖŐÚÜŰ][a-záéíóöőúüű]+(?:\s+[A-ZÁÉÍÓÖŐÚÜŰ][a-záéíóöőúüű]+)+`)

// ExtractName finds the first run of two or more capitalized words. Latin
// scripts only; lowercase-convention and non-Latin names will not match.
func ExtractName(text string) (string, bool) {
	match := namePattern.FindString(text)

	return match, match != ""
}
