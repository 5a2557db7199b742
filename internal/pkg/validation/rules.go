package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Email validation pattern, matched case-insensitively
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Calendar date as yyyy-mm-dd
	ISODatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Semester label such as "Fall 2023"
	SemesterPattern = `^\S+ (\d{4})$`

	// Name validation max length
	NameMaxLength = 100

	// Mark bounds
	MarksMin = 0
	MarksMax = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	ISODate  *regexp.Regexp
	Semester *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	ISODate:  regexp.MustCompile(ISODatePattern),
	Semester: regexp.MustCompile(SemesterPattern),
}

// IsEmail reports whether value looks like an email address
func IsEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsISODate reports whether value is a real yyyy-mm-dd calendar date
func IsISODate(value string) bool {
	if !CompiledPatterns.ISODate.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// SemesterYear extracts the year of a "<Term> <yyyy>" semester label
func SemesterYear(semester string) (string, bool) {
	m := CompiledPatterns.Semester.FindStringSubmatch(strings.TrimSpace(semester))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StringValidation checks a required text value; surrounding whitespace is ignored
type StringValidation struct {
	Value  string
	MaxLen int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: strings.TrimSpace(value)}
}

// WithMaxLength sets the maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate reports whether the value is present and within bounds
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return false
	}
	return true
}

// Numeric validation with inclusive bounds
type NumericValidation struct {
	Value  int
	Min    int
	Max    int
	hasMin bool
	hasMax bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min, v.hasMin = min, true
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max, v.hasMax = max, true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.hasMin && v.Value < v.Min {
		return false
	}
	if v.hasMax && v.Value > v.Max {
		return false
	}
	return true
}
