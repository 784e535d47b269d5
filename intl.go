package intl

import (
	"fmt"
	"log/slog"
)

// Intl holds the plugin configuration and the per-kind formatter caches.
// Construct one per process (or per template set) and register it into the
// host's helper table with Register.
type Intl struct {
	locales []string
	formats map[FormatterKind]FormatOptions
	catalog map[string]any
	rules   *rulesProvider
	logger  *slog.Logger

	dates     *formatterCache[*dateFormatter]
	times     *formatterCache[*dateFormatter]
	relatives *formatterCache[*relativeFormatter]
	numbers   *formatterCache[*numberFormatter]
	messages  *formatterCache[*messageFormatter]
}

// Option mutates Intl during construction.
type Option func(*Intl) error

// New builds the plugin via supplied options.
func New(opts ...Option) (*Intl, error) {
	in := &Intl{
		formats: make(map[FormatterKind]FormatOptions),
		catalog: make(map[string]any),
		rules:   newRulesProvider(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(in); err != nil {
			return nil, err
		}
	}

	if len(in.locales) == 0 {
		in.locales = []string{"en"}
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}

	in.dates = newFormatterCache(in.newDateFormatter(KindDate))
	in.times = newFormatterCache(in.newDateFormatter(KindTime))
	in.relatives = newFormatterCache(in.newRelativeFormatter)
	in.numbers = newFormatterCache(in.newNumberFormatter)
	// Message formatters go through the keyed cache path only; the template
	// is part of the identity, so there is no (locales, options) constructor.
	in.messages = newFormatterCache[*messageFormatter](nil)

	return in, nil
}

// WithDefaultLocales sets the process-wide locale priority list used when
// neither the call nor the context chain supplies one.
func WithDefaultLocales(locales ...string) Option {
	return func(in *Intl) error {
		normalized := normalizeLocales(locales)
		if len(normalized) == 0 {
			return fmt.Errorf("intl: no valid default locales")
		}
		in.locales = normalized
		return nil
	}
}

// WithFormats sets the process-wide default options for one formatter kind.
func WithFormats(kind FormatterKind, opts FormatOptions) Option {
	return func(in *Intl) error {
		if kind == KindMessage {
			return fmt.Errorf("intl: message formatting has no default options")
		}
		merged := make(FormatOptions, len(opts))
		mergeOptions(merged, opts)
		in.formats[kind] = merged
		return nil
	}
}

// WithMessages merges a message catalog: nested mappings of message id to
// template string or plural-form mapping.
func WithMessages(messages map[string]any) Option {
	return func(in *Intl) error {
		mergeCatalog(in.catalog, messages)
		return nil
	}
}

// WithMessageFiles loads message catalogs from YAML, TOML, or JSON files.
func WithMessageFiles(paths ...string) Option {
	return func(in *Intl) error {
		for _, path := range paths {
			catalog, err := loadMessageFile(path)
			if err != nil {
				return err
			}
			mergeCatalog(in.catalog, catalog)
		}
		return nil
	}
}

// WithRules registers or overrides the formatting rules for a locale.
func WithRules(locale string, rules LocaleRules) Option {
	return func(in *Intl) error {
		if normalizeLocale(locale) == "" {
			return fmt.Errorf("intl: empty rules locale")
		}
		in.rules.set(locale, rules)
		return nil
	}
}

// WithLogger sets the diagnostic logger used by the deprecation shims.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Intl) error {
		in.logger = logger
		return nil
	}
}
