package validators

import (
	"errors"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "BR"

var ErrInvalidPhone = errors.New("invalid phone number")

// NormalizePhone devolve o telefone em E.164. Números sem DDI são
// tratados como brasileiros.
func NormalizePhone(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return "", ErrInvalidPhone
	}

	candidate := digits
	switch {
	case strings.HasPrefix(strings.TrimSpace(raw), "+"):
		candidate = "+" + digits
	case strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13):
		candidate = "+" + digits
	}

	num, err := phonenumbers.Parse(candidate, DefaultRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func IsValidPhone(raw string) bool {
	_, err := NormalizePhone(raw)
	return err == nil
}
