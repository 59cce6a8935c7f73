package content

import (
	"fmt"
	"strings"
)

// Kind identifies one of the input message content variants.
type Kind string

const (
	KindContact  Kind = "contact"
	KindLocation Kind = "location"
	KindText     Kind = "text"
	KindVenue    Kind = "venue"
)

// Kinds returns every supported variant in a stable order.
func Kinds() []Kind {
	return []Kind{KindContact, KindLocation, KindText, KindVenue}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a variant name. Matching is case-insensitive and accepts
// the short form ("venue") as well as the Bot API type names
// ("VenueContent", "InputVenueMessageContent").
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "input")
	s = strings.TrimSuffix(s, "messagecontent")
	s = strings.TrimSuffix(s, "content")

	for _, k := range Kinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
