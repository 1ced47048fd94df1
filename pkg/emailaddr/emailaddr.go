package emailaddr

import (
	"regexp"
	"strings"
)

var (
	separatorPattern = regexp.MustCompile(`[;\s]+`)

	// Requires local@domain with at least one dot in the domain, so bare
	// hostnames like "c@bad" are rejected.
	addressPattern = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)
)

// ParseList splits a string of addresses separated by commas, semicolons
// or whitespace runs into a clean list.
func ParseList(raw string) []string {
	normalized := separatorPattern.ReplaceAllString(strings.TrimSpace(raw), ",")

	var emails []string
	for _, part := range strings.Split(normalized, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			emails = append(emails, part)
		}
	}
	return emails
}

// ValidationResult partitions a list of addresses into valid and invalid sets
type ValidationResult struct {
	Valid        []string `json:"valid_emails"`
	Invalid      []string `json:"invalid_emails"`
	ValidCount   int      `json:"valid_count"`
	InvalidCount int      `json:"invalid_count"`
}

// AllValid reports whether no address was rejected
func (r *ValidationResult) AllValid() bool {
	return len(r.Invalid) == 0
}

// Validate syntax-checks a list of addresses
func Validate(emails []string) *ValidationResult {
	result := &ValidationResult{}

	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if addressPattern.MatchString(email) {
			result.Valid = append(result.Valid, email)
		} else {
			result.Invalid = append(result.Invalid, email)
		}
	}

	result.ValidCount = len(result.Valid)
	result.InvalidCount = len(result.Invalid)
	return result
}
