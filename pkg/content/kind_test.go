package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"contact":                    KindContact,
		"ContactContent":             KindContact,
		"InputContactMessageContent": KindContact,
		"  LOCATION ":                KindLocation,
		"TextContent":                KindText,
		"venue":                      KindVenue,
		"InputVenueMessageContent":   KindVenue,
	}

	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, in := range []string{"", "photo", "InputMessageContent", "contacts"} {
		_, err := ParseKind(in)
		assert.ErrorIs(t, err, ErrUnknownKind, in)
	}
}

func TestDescribe(t *testing.T) {
	infos, err := Describe(KindContact)
	require.NoError(t, err)
	assert.Equal(t, []FieldInfo{
		{Name: "phone_number", Type: "string", Required: true},
		{Name: "first_name", Type: "string"},
		{Name: "last_name", Type: "string"},
	}, infos)

	names, err := FieldNames(KindText)
	require.NoError(t, err)
	assert.Equal(t, []string{"message_text", "parse_mode", "disable_web_page_preview"}, names)

	_, err = Describe(Kind("sticker"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KindVenue, "latitude", "52.52")
	require.NoError(t, err)
	assert.Equal(t, 52.52, v)

	v, err = ParseValue(KindText, "disable_web_page_preview", "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = ParseValue(KindContact, "phone_number", "+100")
	require.NoError(t, err)
	assert.Equal(t, "+100", v)

	_, err = ParseValue(KindLocation, "latitude", "north")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseValue(KindLocation, "altitude", "1")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestOpt(t *testing.T) {
	var unset Opt[string]
	_, ok := unset.Get()
	assert.False(t, ok)
	assert.False(t, unset.IsSet())

	empty := Some("")
	v, ok := empty.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.NotEqual(t, unset, empty)
}
