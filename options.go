package intl

import "strings"

// Params is the parameter mapping the host passes to one helper call. The
// reserved control names (val, now, _key, _msg, locales) are read through
// accessors; everything else is treated as format options or interpolation
// arguments. Params are never mutated: derived mappings are always copies.
type Params map[string]any

// FormatOptions maps formatting-library option names to values. Merging is
// shallow: a later key overwrites an earlier key of the same name.
type FormatOptions map[string]any

const (
	paramVal     = "val"
	paramNow     = "now"
	paramKey     = "_key"
	paramMsg     = "_msg"
	paramLocales = "locales"
)

var reservedParams = map[string]struct{}{
	paramVal:     {},
	paramNow:     {},
	paramKey:     {},
	paramMsg:     {},
	paramLocales: {},
}

func (p Params) value() (any, bool) {
	v, ok := p[paramVal]
	return v, ok
}

func (p Params) now() (any, bool) {
	v, ok := p[paramNow]
	return v, ok
}

func (p Params) messageKey() (string, bool) {
	v, ok := p[paramKey]
	if !ok {
		return "", false
	}
	key, ok := v.(string)
	return key, ok && key != ""
}

func (p Params) message() (any, bool) {
	v, ok := p[paramMsg]
	return v, ok
}

// locales returns the call-level locale override, accepting a single
// identifier or an ordered list.
func (p Params) locales() []string {
	switch v := p[paramLocales].(type) {
	case string:
		return normalizeLocales([]string{v})
	case []string:
		return normalizeLocales(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return normalizeLocales(out)
	default:
		return nil
	}
}

// formatOptions returns a fresh mapping of the non-reserved parameters.
func (p Params) formatOptions() FormatOptions {
	out := make(FormatOptions, len(p))
	for key, value := range p {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		out[key] = value
	}
	return out
}

// interpolationArgs returns a fresh mapping of the non-reserved parameters
// used as named substitution values for message formatting.
func (p Params) interpolationArgs() map[string]any {
	return map[string]any(p.formatOptions())
}

// mergeOptions shallow-merges src into dst, overwriting same-named keys.
func mergeOptions(dst FormatOptions, src map[string]any) {
	for key, value := range src {
		dst[key] = value
	}
}

// resolveOptions computes the effective options for one formatting call:
// process-wide defaults for the kind, then block-scoped overrides from the
// context chain, then call-level parameters. Each merge layer overwrites
// same-named keys; the result is always a new mapping.
func (in *Intl) resolveOptions(kind FormatterKind, ctx *Context, params Params) FormatOptions {
	opts := make(FormatOptions)

	if defaults, ok := in.formats[kind]; ok {
		mergeOptions(opts, defaults)
	}

	if ctx != nil {
		if block, ok := ctx.Get("intl.formats." + kind.String()); ok {
			if m, ok := block.(map[string]any); ok {
				mergeOptions(opts, m)
			}
		}
	}

	mergeOptions(opts, params.formatOptions())
	return opts
}

// resolveMessageOptions returns the ambient formats namespace used verbatim
// for message formatting; call parameters are interpolation arguments there,
// not options.
func (in *Intl) resolveMessageOptions(ctx *Context) FormatOptions {
	opts := make(FormatOptions)
	if ctx != nil {
		if block, ok := ctx.Get("intl.formats"); ok {
			if m, ok := block.(map[string]any); ok {
				mergeOptions(opts, m)
			}
		}
	}
	return opts
}

// resolveLocales picks the effective locale list: call-level override, else
// the nearest context value, else the plugin default.
func (in *Intl) resolveLocales(ctx *Context, params Params) []string {
	if locales := params.locales(); len(locales) > 0 {
		return locales
	}

	if ctx != nil {
		if ambient, ok := ctx.Get("intl.locales"); ok {
			switch v := ambient.(type) {
			case string:
				if locales := normalizeLocales([]string{v}); len(locales) > 0 {
					return locales
				}
			case []string:
				if locales := normalizeLocales(v); len(locales) > 0 {
					return locales
				}
			case []any:
				out := make([]string, 0, len(v))
				for _, item := range v {
					if s, ok := item.(string); ok {
						out = append(out, s)
					}
				}
				if locales := normalizeLocales(out); len(locales) > 0 {
					return locales
				}
			}
		}
	}

	return in.locales
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// normalizeLocales normalizes and deduplicates while preserving order; the
// locale list is a priority chain, so order matters.
func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
