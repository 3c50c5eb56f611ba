package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
)

// Minimal internal validator to avoid external dependency. Supports:
// - required
// - emailok (basic something@something.tld shape)
// - pwdstrong (min 8 chars with lower, upper and digit)
// - alphaname (letters and spaces only, 1-100 chars)
// - phoneintl (optional international phone: digits, spaces, dashes, parens, leading +)
// - eqfield=OtherField (field equals another field)
//
// Rules are evaluated in tag order and the first failing rule wins, so each
// field yields at most one message.

var (
	reEmail     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reAlphaName = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	rePhoneIntl = regexp.MustCompile(`^\+?[\d\s()-]+$`)
)

// passwordStrong checks length and character classes separately; RE2 has no
// lookahead so this cannot be a single pattern.
func passwordStrong(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		fv := v.Field(i)
		var sval string
		if fv.IsValid() && fv.Kind() == reflect.String {
			sval = fv.String()
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "required" {
				if strings.TrimSpace(sval) == "" {
					return errors.New(field.Name + " is required")
				}
			} else if p == "emailok" {
				// handlers trim/lowercase after decoding, so validate the
				// trimmed value rather than rejecting padded input
				if v := strings.TrimSpace(sval); v != "" && !reEmail.MatchString(v) {
					return errors.New(field.Name + " must be a valid email address")
				}
			} else if p == "pwdstrong" {
				if !passwordStrong(sval) {
					return errors.New(field.Name + " must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
				}
			} else if p == "alphaname" {
				if sval != "" && !reAlphaName.MatchString(sval) {
					return errors.New(field.Name + " may only contain letters and spaces")
				}
			} else if p == "phoneintl" {
				if sval != "" && !rePhoneIntl.MatchString(sval) {
					return errors.New(field.Name + " must be a valid phone number")
				}
			} else if strings.HasPrefix(p, "eqfield=") {
				other := strings.TrimPrefix(p, "eqfield=")
				of := v.FieldByName(other)
				if of.IsValid() && of.Kind() == reflect.String {
					if sval != of.String() {
						return errors.New(field.Name + " must equal " + other)
					}
				}
			}
		}
	}
	return nil
}
