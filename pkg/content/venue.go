package content

import "github.com/mymmrac/telego"

// Venue is the content of a venue message. Every field is optional.
type Venue struct {
	Latitude     Opt[float64]
	Longitude    Opt[float64]
	Title        Opt[string]
	Address      Opt[string]
	FoursquareID Opt[string]
}

type VenueOption func(*Venue)

// WithCoordinates sets both latitude and longitude.
func WithCoordinates(latitude, longitude float64) VenueOption {
	return func(v *Venue) {
		v.Latitude = Some(latitude)
		v.Longitude = Some(longitude)
	}
}

func WithTitle(title string) VenueOption {
	return func(v *Venue) { v.Title = Some(title) }
}

func WithAddress(address string) VenueOption {
	return func(v *Venue) { v.Address = Some(address) }
}

func WithFoursquareID(id string) VenueOption {
	return func(v *Venue) { v.FoursquareID = Some(id) }
}

func NewVenue(opts ...VenueOption) *Venue {
	v := &Venue{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func buildVenue(v values) InlineContent {
	return &Venue{
		Latitude:     v.optNumber("latitude"),
		Longitude:    v.optNumber("longitude"),
		Title:        v.optText("title"),
		Address:      v.optText("address"),
		FoursquareID: v.optText("foursquare_id"),
	}
}

func (v Venue) Kind() Kind { return KindVenue }

func (v Venue) Fields() []Field {
	var fields []Field
	fields = appendOpt(fields, "latitude", v.Latitude)
	fields = appendOpt(fields, "longitude", v.Longitude)
	fields = appendOpt(fields, "title", v.Title)
	fields = appendOpt(fields, "address", v.Address)
	fields = appendOpt(fields, "foursquare_id", v.FoursquareID)
	return fields
}

func (v Venue) MarshalJSON() ([]byte, error) {
	return marshalFields(v.Fields())
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	out, err := unmarshalInto[*Venue](KindVenue, data)
	if err != nil {
		return err
	}
	*v = *out
	return nil
}

func (v Venue) toTelego() (telego.InputMessageContent, error) {
	err := requireSet(KindVenue,
		presence{"latitude", v.Latitude.IsSet()},
		presence{"longitude", v.Longitude.IsSet()},
		presence{"title", v.Title.IsSet()},
		presence{"address", v.Address.IsSet()},
	)
	if err != nil {
		return nil, err
	}
	return &telego.InputVenueMessageContent{
		Latitude:     v.Latitude.OrZero(),
		Longitude:    v.Longitude.OrZero(),
		Title:        v.Title.OrZero(),
		Address:      v.Address.OrZero(),
		FoursquareID: v.FoursquareID.OrZero(),
	}, nil
}
