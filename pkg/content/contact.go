package content

import "github.com/mymmrac/telego"

// Contact is the content of a contact message.
type Contact struct {
	PhoneNumber string
	FirstName   Opt[string]
	LastName    Opt[string]
}

type ContactOption func(*Contact)

func WithFirstName(name string) ContactOption {
	return func(c *Contact) { c.FirstName = Some(name) }
}

func WithLastName(name string) ContactOption {
	return func(c *Contact) { c.LastName = Some(name) }
}

func NewContact(phoneNumber string, opts ...ContactOption) *Contact {
	c := &Contact{PhoneNumber: phoneNumber}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func buildContact(v values) InlineContent {
	return &Contact{
		PhoneNumber: v.text("phone_number"),
		FirstName:   v.optText("first_name"),
		LastName:    v.optText("last_name"),
	}
}

func (c Contact) Kind() Kind { return KindContact }

func (c Contact) Fields() []Field {
	fields := []Field{{Name: "phone_number", Value: c.PhoneNumber}}
	fields = appendOpt(fields, "first_name", c.FirstName)
	fields = appendOpt(fields, "last_name", c.LastName)
	return fields
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return marshalFields(c.Fields())
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	v, err := unmarshalInto[*Contact](KindContact, data)
	if err != nil {
		return err
	}
	*c = *v
	return nil
}

func (c Contact) toTelego() (telego.InputMessageContent, error) {
	if err := requireSet(KindContact, presence{"first_name", c.FirstName.IsSet()}); err != nil {
		return nil, err
	}
	return &telego.InputContactMessageContent{
		PhoneNumber: c.PhoneNumber,
		FirstName:   c.FirstName.OrZero(),
		LastName:    c.LastName.OrZero(),
	}, nil
}
