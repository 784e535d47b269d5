package intl

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FormatterKind enumerates the formatter families, each owning one cache
// table.
type FormatterKind int

const (
	KindDate FormatterKind = iota
	KindTime
	KindRelative
	KindNumber
	KindMessage
)

func (k FormatterKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindRelative:
		return "relative"
	case KindNumber:
		return "number"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// formatterCache memoizes formatter construction per serialized
// (locales, options) key. Entries live for the life of the process; there is
// no eviction because the key space is bounded by template configuration, not
// request volume. Construction errors are not cached.
type formatterCache[F any] struct {
	mu      sync.RWMutex
	build   func(locales []string, opts FormatOptions) (F, error)
	entries map[string]F
}

func newFormatterCache[F any](build func(locales []string, opts FormatOptions) (F, error)) *formatterCache[F] {
	return &formatterCache[F]{
		build:   build,
		entries: make(map[string]F),
	}
}

// get returns the formatter for (locales, opts), constructing it on first use.
func (c *formatterCache[F]) get(locales []string, opts FormatOptions) (F, error) {
	return c.getKey(cacheKey(locales, opts), func() (F, error) {
		return c.build(locales, opts)
	})
}

// getKey is the keyed variant used when the identity of a formatter includes
// more than locales and options, e.g. a message template.
func (c *formatterCache[F]) getKey(key string, build func() (F, error)) (F, error) {
	c.mu.RLock()
	formatter, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return formatter, nil
	}

	// Double-checked insert so two concurrent misses for the same key do not
	// race to construct distinct instances.
	c.mu.Lock()
	defer c.mu.Unlock()
	if formatter, ok := c.entries[key]; ok {
		return formatter, nil
	}

	formatter, err := build()
	if err != nil {
		var zero F
		return zero, err
	}
	c.entries[key] = formatter
	return formatter, nil
}

// len reports the number of cached formatters.
func (c *formatterCache[F]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey serializes locales order-sensitively and options with sorted keys,
// so semantically equal option sets produce the same key regardless of
// insertion order.
func cacheKey(locales []string, opts FormatOptions) string {
	var b strings.Builder
	for _, locale := range locales {
		b.WriteString(locale)
		b.WriteByte(';')
	}
	b.WriteByte('|')

	keys := make([]string, 0, len(opts))
	for key := range opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%v;", key, opts[key])
	}
	return b.String()
}
