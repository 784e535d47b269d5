package intl

import (
	"reflect"
	"testing"
)

func TestResolveOptionsPrecedence(t *testing.T) {
	in, err := New(WithFormats(KindDate, FormatOptions{"style": "short"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext(map[string]any{
		"intl": map[string]any{
			"formats": map[string]any{
				"date": map[string]any{"style": "long"},
			},
		},
	})

	opts := in.resolveOptions(KindDate, ctx, Params{"style": "narrow"})
	if opts["style"] != "narrow" {
		t.Fatalf("call-level should win, got %v", opts["style"])
	}

	opts = in.resolveOptions(KindDate, ctx, Params{})
	if opts["style"] != "long" {
		t.Fatalf("block-level should win without call override, got %v", opts["style"])
	}

	opts = in.resolveOptions(KindDate, NewContext(nil), Params{})
	if opts["style"] != "short" {
		t.Fatalf("process default should apply, got %v", opts["style"])
	}
}

func TestResolveOptionsFiltersControlParameters(t *testing.T) {
	in, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	params := Params{
		"val":     1234,
		"now":     5678,
		"_key":    "a.b",
		"_msg":    "hi",
		"locales": "es",
		"style":   "long",
	}

	opts := in.resolveOptions(KindDate, NewContext(nil), params)
	if !reflect.DeepEqual(opts, FormatOptions{"style": "long"}) {
		t.Fatalf("opts = %v", opts)
	}
}

func TestResolveOptionsDoesNotMutateParams(t *testing.T) {
	in, err := New(WithFormats(KindNumber, FormatOptions{"style": "decimal"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	params := Params{"val": 1, "currency": "USD"}
	before := make(Params, len(params))
	for k, v := range params {
		before[k] = v
	}

	_ = in.resolveOptions(KindNumber, NewContext(nil), params)
	if !reflect.DeepEqual(params, before) {
		t.Fatalf("params mutated: %v", params)
	}
}

func TestResolveLocalesPrecedence(t *testing.T) {
	in, err := New(WithDefaultLocales("fr", "en"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext(map[string]any{
		"intl": map[string]any{"locales": []string{"de", "en"}},
	})

	got := in.resolveLocales(ctx, Params{"locales": "es_MX"})
	if !reflect.DeepEqual(got, []string{"es-MX"}) {
		t.Fatalf("call-level locales = %v", got)
	}

	got = in.resolveLocales(ctx, Params{})
	if !reflect.DeepEqual(got, []string{"de", "en"}) {
		t.Fatalf("ambient locales = %v", got)
	}

	got = in.resolveLocales(NewContext(nil), Params{})
	if !reflect.DeepEqual(got, []string{"fr", "en"}) {
		t.Fatalf("default locales = %v", got)
	}
}

func TestNormalizeLocalesPreservesOrder(t *testing.T) {
	got := normalizeLocales([]string{" es_MX ", "es", "es", ""})
	if !reflect.DeepEqual(got, []string{"es-MX", "es"}) {
		t.Fatalf("normalizeLocales = %v", got)
	}
}

func TestResolveMessageOptionsUsesAmbientFormats(t *testing.T) {
	in, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext(map[string]any{
		"intl": map[string]any{
			"formats": map[string]any{"tone": "formal"},
		},
	})

	opts := in.resolveMessageOptions(ctx)
	if opts["tone"] != "formal" {
		t.Fatalf("ambient formats = %v", opts)
	}
}
