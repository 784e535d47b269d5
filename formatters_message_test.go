package intl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatMessageInlineTemplate(t *testing.T) {
	in := newTestIntl(t)

	chunk := in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{
		"_msg": "Hello, {{.name}}!",
		"name": "Ana",
	})
	if err := chunk.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := chunk.String(); got != "Hello, Ana!" {
		t.Fatalf("output = %q", got)
	}
}

func TestFormatMessagePluralForms(t *testing.T) {
	in := newTestIntl(t, WithMessages(map[string]any{
		"cart": map[string]any{
			"items": map[string]any{
				"one":   "{{.count}} item",
				"other": "{{.count}} items",
			},
		},
	}))

	chunk := in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{"_key": "cart.items", "count": 1})
	if err := chunk.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := chunk.String(); got != "1 item" {
		t.Fatalf("singular = %q", got)
	}

	chunk = in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{"_key": "cart.items", "count": 4})
	if got := chunk.String(); got != "4 items" {
		t.Fatalf("plural = %q", got)
	}
}

func TestFormatMessageKeyFromContext(t *testing.T) {
	in := newTestIntl(t)

	ctx := NewContext(map[string]any{
		"intl": map[string]any{
			"messages": map[string]any{
				"greeting": "Hi, {{.name}}.",
			},
		},
	})

	chunk := in.FormatMessage(NewChunk(), ctx, nil, Params{"_key": "greeting", "name": "Bo"})
	if err := chunk.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := chunk.String(); got != "Hi, Bo." {
		t.Fatalf("output = %q", got)
	}
}

func TestFormatMessageUnknownKey(t *testing.T) {
	in := newTestIntl(t)

	chunk := in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{"_key": "missing.key"})
	if err := chunk.Err(); !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("err = %v", err)
	}
	if chunk.String() != "" {
		t.Fatal("no output may be written for a failed call")
	}
}

// stubCompiledMessage counts invocations to prove the cache is bypassed.
type stubCompiledMessage struct {
	calls int
}

func (s *stubCompiledMessage) Format(args map[string]any) (string, error) {
	s.calls++
	return fmt.Sprintf("compiled for %v", args["name"]), nil
}

func TestFormatMessagePreCompiledBypassesCache(t *testing.T) {
	in := newTestIntl(t)
	stub := &stubCompiledMessage{}

	chunk := in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{"_msg": stub, "name": "Ana"})
	if err := chunk.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := chunk.String(); got != "compiled for Ana" {
		t.Fatalf("output = %q", got)
	}
	if stub.calls != 1 {
		t.Fatalf("compiled formatter invoked %d times", stub.calls)
	}
	if in.messages.len() != 0 {
		t.Fatal("pre-compiled message must not touch the cache")
	}
}

func TestFormatMessageCachesCompiledTemplates(t *testing.T) {
	in := newTestIntl(t)

	params := Params{"_msg": "Hola, {{.name}}.", "name": "Ana", "locales": "es"}
	in.FormatMessage(NewChunk(), NewContext(nil), nil, params)
	in.FormatMessage(NewChunk(), NewContext(nil), nil, params)

	if got := in.messages.len(); got != 1 {
		t.Fatalf("message cache entries = %d", got)
	}
}

func TestFormatMessageEscapesOutput(t *testing.T) {
	in := newTestIntl(t)

	chunk := in.FormatMessage(NewChunk(), NewContext(nil), nil, Params{
		"_msg":    "{{.content}} rocks",
		"content": "<b>bold</b>",
	})
	if err := chunk.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	got := chunk.String()
	if strings.Contains(got, "<b>") {
		t.Fatalf("output not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Fatalf("expected escaped markup: %q", got)
	}
}

func TestMessageFromValueTagging(t *testing.T) {
	msg, err := messageFromValue("plain template")
	if err != nil || msg.Template != "plain template" || msg.Compiled != nil {
		t.Fatalf("string message = %+v, %v", msg, err)
	}

	stub := &stubCompiledMessage{}
	msg, err = messageFromValue(stub)
	if err != nil || msg.Compiled == nil || msg.Template != "" {
		t.Fatalf("compiled message = %+v, %v", msg, err)
	}

	msg, err = messageFromValue(map[string]any{"one": "a", "other": "b"})
	if err != nil || msg.Forms["one"] != "a" || msg.Template != "b" {
		t.Fatalf("plural message = %+v, %v", msg, err)
	}

	if _, err = messageFromValue(42); err == nil {
		t.Fatal("expected error for unsupported message value")
	}
}

func TestMessageIdentityStableAcrossFormOrder(t *testing.T) {
	a := Message{Forms: map[string]string{"one": "x", "other": "y"}}
	b := Message{Forms: map[string]string{"other": "y", "one": "x"}}
	if a.identity() != b.identity() {
		t.Fatal("identity must not depend on map iteration order")
	}
}
