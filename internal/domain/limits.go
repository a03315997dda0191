package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Column limits. VARCHAR limits count characters, TEXT limits count bytes.
const (
	MaxNameLen    = 100
	MaxPhoneLen   = 32
	MaxEmailLen   = 255
	MaxTextBytes  = 65535
	MaxAnswerLen  = 100
	MaxAnswerText = 2000
)

var ErrTooLong = errors.New("value too long")

func checkChars(field, v string, limit int) error {
	if utf8.RuneCountInString(v) > limit {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrTooLong, field, limit)
	}
	return nil
}

func checkBytes(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%w: %s must be at most %d bytes", ErrTooLong, field, limit)
	}
	return nil
}
