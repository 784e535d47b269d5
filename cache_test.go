package intl

import (
	"errors"
	"testing"
)

func TestFormatterCacheIdentity(t *testing.T) {
	constructed := 0
	cache := newFormatterCache(func(locales []string, opts FormatOptions) (*dateFormatter, error) {
		constructed++
		return &dateFormatter{}, nil
	})

	first, err := cache.get([]string{"en-US"}, FormatOptions{"style": "long", "pattern": ""})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// Semantically equal options, different insertion order.
	second, err := cache.get([]string{"en-US"}, FormatOptions{"pattern": "", "style": "long"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if first != second {
		t.Fatal("equal (locales, options) must return the identical instance")
	}
	if constructed != 1 {
		t.Fatalf("constructor ran %d times", constructed)
	}

	third, err := cache.get([]string{"en-US"}, FormatOptions{"style": "short"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if third == first {
		t.Fatal("differing options must yield a distinct instance")
	}
	if constructed != 2 {
		t.Fatalf("constructor ran %d times", constructed)
	}
}

func TestFormatterCacheLocaleOrderSensitive(t *testing.T) {
	cache := newFormatterCache(func(locales []string, opts FormatOptions) (*dateFormatter, error) {
		return &dateFormatter{}, nil
	})

	first, _ := cache.get([]string{"es", "en"}, nil)
	second, _ := cache.get([]string{"en", "es"}, nil)
	if first == second {
		t.Fatal("locale order is part of the cache identity")
	}
}

func TestFormatterCacheConstructionErrorNotCached(t *testing.T) {
	calls := 0
	boom := errors.New("construction failed")
	cache := newFormatterCache(func(locales []string, opts FormatOptions) (*dateFormatter, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return &dateFormatter{}, nil
	})

	if _, err := cache.get([]string{"en"}, nil); !errors.Is(err, boom) {
		t.Fatalf("expected construction error, got %v", err)
	}
	if cache.len() != 0 {
		t.Fatal("failed construction must not populate the cache")
	}

	formatter, err := cache.get([]string{"en"}, nil)
	if err != nil || formatter == nil {
		t.Fatalf("retry after failure = %v, %v", formatter, err)
	}
}

func TestCacheKeyCanonicalOptionOrder(t *testing.T) {
	a := cacheKey([]string{"en"}, FormatOptions{"style": "long", "currency": "USD"})
	b := cacheKey([]string{"en"}, FormatOptions{"currency": "USD", "style": "long"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}

	c := cacheKey([]string{"en"}, FormatOptions{"style": "short", "currency": "USD"})
	if a == c {
		t.Fatal("differing option values must produce differing keys")
	}
}
