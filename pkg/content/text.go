package content

import "github.com/mymmrac/telego"

// Text is the content of a text message. Every field is optional.
type Text struct {
	MessageText           Opt[string]
	ParseMode             Opt[string]
	DisableWebPagePreview Opt[bool]
}

type TextOption func(*Text)

func WithMessageText(text string) TextOption {
	return func(t *Text) { t.MessageText = Some(text) }
}

func WithParseMode(mode string) TextOption {
	return func(t *Text) { t.ParseMode = Some(mode) }
}

func WithDisableWebPagePreview(disable bool) TextOption {
	return func(t *Text) { t.DisableWebPagePreview = Some(disable) }
}

func NewText(opts ...TextOption) *Text {
	t := &Text{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func buildText(v values) InlineContent {
	return &Text{
		MessageText:           v.optText("message_text"),
		ParseMode:             v.optText("parse_mode"),
		DisableWebPagePreview: v.optBool("disable_web_page_preview"),
	}
}

func (t Text) Kind() Kind { return KindText }

func (t Text) Fields() []Field {
	var fields []Field
	fields = appendOpt(fields, "message_text", t.MessageText)
	fields = appendOpt(fields, "parse_mode", t.ParseMode)
	fields = appendOpt(fields, "disable_web_page_preview", t.DisableWebPagePreview)
	return fields
}

func (t Text) MarshalJSON() ([]byte, error) {
	return marshalFields(t.Fields())
}

func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := unmarshalInto[*Text](KindText, data)
	if err != nil {
		return err
	}
	*t = *v
	return nil
}

// toTelego maps disable_web_page_preview onto link preview options, which
// replaced the flag in the Bot API.
func (t Text) toTelego() (telego.InputMessageContent, error) {
	if err := requireSet(KindText, presence{"message_text", t.MessageText.IsSet()}); err != nil {
		return nil, err
	}
	out := &telego.InputTextMessageContent{
		MessageText: t.MessageText.OrZero(),
		ParseMode:   t.ParseMode.OrZero(),
	}
	if disabled, ok := t.DisableWebPagePreview.Get(); ok {
		out.LinkPreviewOptions = &telego.LinkPreviewOptions{IsDisabled: disabled}
	}
	return out, nil
}
