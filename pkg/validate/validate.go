// Package validate collects field-scoped validation messages so a request
// can report every failure at once instead of stopping at the first.
package validate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NonFieldErrors is the key for messages not tied to a single field.
const NonFieldErrors = "non_field_errors"

// Errors maps a field name to the messages recorded against it.
// A non-empty Errors value is itself an error.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString("validation failed")
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e[f], ", "))
	}
	return sb.String()
}

// Add records a message against a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Err returns the collected errors as an error, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors unwraps err into Errors when it carries field messages.
func AsErrors(err error) (Errors, bool) {
	ve, ok := err.(Errors)
	return ve, ok
}

// Single builds an Errors value with one message on one field.
func Single(field, message string) Errors {
	return Errors{field: []string{message}}
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email reports whether v looks like an email address.
func Email(v string) bool {
	return len(v) <= 254 && reEmail.MatchString(v)
}

var rePhoneLoose = regexp.MustCompile(`^[0-9][0-9 ()./-]{5,18}[0-9]$`)

// Phone reports whether v is an acceptable phone number. International
// numbers (leading +) must parse as valid; local free-form numbers only
// need a plausible digit shape, matching how clinics actually record them.
func Phone(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if strings.HasPrefix(v, "+") {
		num, err := phonenumbers.Parse(v, "")
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(num)
	}
	return rePhoneLoose.MatchString(v)
}
