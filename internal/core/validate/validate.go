// Package validate holds the guard clauses run by handlers before a lookup or
// contact submission reaches its service.
package validate

import "regexp"

// whitespace is the browser whitespace class: ASCII space and controls plus the
// Unicode space separators, line/paragraph separators and the BOM. RE2's \s
// covers only the ASCII part.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	emailPattern    = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	phonePattern    = regexp.MustCompile(`^(\+84|84|0)?[1-9][0-9]{8,9}$`)
	phoneSeparators = regexp.MustCompile(`[` + whitespace + `\-.]`)
	positiveInteger = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// RequiredFields reports whether origin, destination and date are all non-empty.
func RequiredFields(origin, destination, date string) bool {
	return origin != "" && destination != "" && date != ""
}

// DistinctEndpoints reports whether origin and destination are different codes.
func DistinctEndpoints(origin, destination string) bool {
	return origin != destination
}

// Email reports whether s has the local@domain.tld shape with no whitespace and
// a single @.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is a Vietnamese phone number once spaces, hyphens and
// dots are removed. An optional +84, 84 or 0 prefix is followed by 9 or 10
// digits, the first of which is not 0.
func Phone(s string) bool {
	return phonePattern.MatchString(phoneSeparators.ReplaceAllString(s, ""))
}

// PositiveInteger reports whether s is a plain decimal integer greater than
// zero. Signs and leading zeros are rejected so s can be echoed as typed.
func PositiveInteger(s string) bool {
	return positiveInteger.MatchString(s)
}
