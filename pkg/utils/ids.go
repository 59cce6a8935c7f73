package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxResultIDBytes is the Bot API limit on inline result identifiers.
const MaxResultIDBytes = 64

// ValidateResultID checks that an inline query result identifier is between
// 1 and 64 bytes of valid UTF-8.
func ValidateResultID(id string) error {
	if id == "" {
		return errors.New("result id must not be empty")
	}
	if len(id) > MaxResultIDBytes {
		return fmt.Errorf("result id must be at most %d bytes, got %d", MaxResultIDBytes, len(id))
	}
	if !utf8.ValidString(id) {
		return errors.New("result id must be valid UTF-8")
	}
	return nil
}
