package content

import "github.com/mymmrac/telego"

// Location is the content of a location message. Both coordinates are
// required.
type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(latitude, longitude float64) *Location {
	return &Location{Latitude: latitude, Longitude: longitude}
}

func buildLocation(v values) InlineContent {
	return &Location{
		Latitude:  v.number("latitude"),
		Longitude: v.number("longitude"),
	}
}

func (l Location) Kind() Kind { return KindLocation }

func (l Location) Fields() []Field {
	return []Field{
		{Name: "latitude", Value: l.Latitude},
		{Name: "longitude", Value: l.Longitude},
	}
}

func (l Location) MarshalJSON() ([]byte, error) {
	return marshalFields(l.Fields())
}

func (l *Location) UnmarshalJSON(data []byte) error {
	v, err := unmarshalInto[*Location](KindLocation, data)
	if err != nil {
		return err
	}
	*l = *v
	return nil
}

func (l Location) toTelego() (telego.InputMessageContent, error) {
	return &telego.InputLocationMessageContent{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}, nil
}
