package intl

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// MessageFormatter is the contract a compiled message exposes. Values
// implementing it may be passed directly as the _msg parameter to skip
// compilation and cache lookup.
type MessageFormatter interface {
	Format(args map[string]any) (string, error)
}

// Message is the tagged form a message takes once resolved at the call
// boundary: either an uncompiled template (optionally with plural forms) or a
// pre-compiled formatter. Exactly one branch is set.
type Message struct {
	Template string
	Forms    map[string]string
	Compiled MessageFormatter
}

// identity returns the cache-key contribution of an uncompiled message.
func (m Message) identity() string {
	if len(m.Forms) == 0 {
		return checksum(m.Template)
	}

	keys := make([]string, 0, len(m.Forms))
	for key := range m.Forms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(m.Forms[key])
		b.WriteByte(';')
	}
	return checksum(b.String())
}

func checksum(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// messageFormatter interpolates and pluralizes one message template, backed
// by go-i18n.
type messageFormatter struct {
	localizer *goi18n.Localizer
	msg       *goi18n.Message
}

func newMessageFormatter(msg Message, locales []string) (*messageFormatter, error) {
	compiled := &goi18n.Message{ID: msg.identity(), Other: msg.Template}

	for form, template := range msg.Forms {
		switch form {
		case "zero":
			compiled.Zero = template
		case "one":
			compiled.One = template
		case "two":
			compiled.Two = template
		case "few":
			compiled.Few = template
		case "many":
			compiled.Many = template
		case "other":
			compiled.Other = template
		default:
			return nil, fmt.Errorf("intl: unknown plural form %q", form)
		}
	}

	tag := language.English
	if len(locales) > 0 {
		tag = language.Make(locales[0])
	}

	bundle := goi18n.NewBundle(tag)
	return &messageFormatter{
		localizer: goi18n.NewLocalizer(bundle, locales...),
		msg:       compiled,
	}, nil
}

// Format substitutes the named args into the template. A "count" argument
// additionally drives plural-form selection.
func (f *messageFormatter) Format(args map[string]any) (string, error) {
	cfg := &goi18n.LocalizeConfig{
		DefaultMessage: f.msg,
		TemplateData:   args,
	}
	if count, ok := args["count"]; ok {
		cfg.PluralCount = count
	}
	return f.localizer.Localize(cfg)
}

// resolveMessage extracts the message for one formatMessage call: an inline
// _msg (template string or pre-compiled formatter) wins, else _key is looked
// up in the ambient intl.messages namespace and then the plugin catalog.
// The tagged Message form is decided here, once, not probed downstream.
func (in *Intl) resolveMessage(ctx *Context, params Params) (Message, error) {
	if raw, ok := params.message(); ok {
		return messageFromValue(raw)
	}

	key, ok := params.messageKey()
	if !ok {
		return Message{}, &MissingParameterError{Name: paramMsg}
	}

	if ctx != nil {
		if raw, found := ctx.Get("intl.messages." + key); found {
			return messageFromValue(raw)
		}
	}

	if raw, found := lookupPath(in.catalog, strings.Split(key, ".")); found {
		return messageFromValue(raw)
	}

	return Message{}, fmt.Errorf("%w: %q", ErrUnknownMessage, key)
}

// messageFromValue classifies a raw message value into the tagged form.
func messageFromValue(raw any) (Message, error) {
	switch value := raw.(type) {
	case MessageFormatter:
		return Message{Compiled: value}, nil
	case string:
		return Message{Template: value}, nil
	case map[string]any:
		forms := make(map[string]string, len(value))
		for form, template := range value {
			s, ok := template.(string)
			if !ok {
				return Message{}, fmt.Errorf("intl: plural form %q is not a string", form)
			}
			forms[form] = s
		}
		return Message{Template: forms["other"], Forms: forms}, nil
	case map[string]string:
		forms := make(map[string]string, len(value))
		for form, template := range value {
			forms[form] = template
		}
		return Message{Template: forms["other"], Forms: forms}, nil
	default:
		return Message{}, fmt.Errorf("intl: unsupported message value %v (%T)", raw, raw)
	}
}
