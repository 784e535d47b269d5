package intl

import (
	"html"
	"time"
)

// Register installs the formatting helpers, the intl block wrapper, and the
// deprecated aliases into the host's helper table.
func (in *Intl) Register(registry HelperRegistry) {
	if registry == nil {
		return
	}

	registry.RegisterHelper("formatDate", in.FormatDate)
	registry.RegisterHelper("formatTime", in.FormatTime)
	registry.RegisterHelper("formatRelative", in.FormatRelative)
	registry.RegisterHelper("formatNumber", in.FormatNumber)
	registry.RegisterHelper("formatMessage", in.FormatMessage)
	registry.RegisterHelper("intl", in.Scope)

	registry.RegisterHelper("intlDate", in.deprecated("intlDate", "formatDate", in.FormatDate))
	registry.RegisterHelper("intlTime", in.deprecated("intlTime", "formatTime", in.FormatTime))
	registry.RegisterHelper("intlNumber", in.deprecated("intlNumber", "formatNumber", in.FormatNumber))
	registry.RegisterHelper("intlMessage", in.deprecated("intlMessage", "formatMessage", in.FormatMessage))
}

// FormatDate formats a date-like val into localized text.
func (in *Intl) FormatDate(chunk *Chunk, ctx *Context, _ Body, params Params) *Chunk {
	return in.formatTemporal(KindDate, in.dates, chunk, ctx, params)
}

// FormatTime formats a date-like val into localized clock text.
func (in *Intl) FormatTime(chunk *Chunk, ctx *Context, _ Body, params Params) *Chunk {
	return in.formatTemporal(KindTime, in.times, chunk, ctx, params)
}

func (in *Intl) formatTemporal(kind FormatterKind, cache *formatterCache[*dateFormatter], chunk *Chunk, ctx *Context, params Params) *Chunk {
	raw, ok := params.value()
	if !ok {
		return chunk.SetError(&MissingParameterError{Name: paramVal})
	}

	t, err := toDate(raw)
	if err != nil {
		return chunk.SetError(err)
	}

	opts := in.resolveOptions(kind, ctx, params)
	locales := in.resolveLocales(ctx, params)

	formatter, err := cache.get(locales, opts)
	if err != nil {
		return chunk.SetError(err)
	}

	return chunk.Write(html.EscapeString(formatter.Format(t)))
}

// FormatRelative formats a date-like val relative to a reference instant.
// The optional now parameter defaults to wall-clock time at format time.
func (in *Intl) FormatRelative(chunk *Chunk, ctx *Context, _ Body, params Params) *Chunk {
	raw, ok := params.value()
	if !ok {
		return chunk.SetError(&MissingParameterError{Name: paramVal})
	}

	t, err := toDate(raw)
	if err != nil {
		return chunk.SetError(err)
	}

	now := time.Now()
	if rawNow, ok := params.now(); ok {
		if now, err = toDate(rawNow); err != nil {
			return chunk.SetError(err)
		}
	}

	opts := in.resolveOptions(KindRelative, ctx, params)
	locales := in.resolveLocales(ctx, params)

	formatter, err := in.relatives.get(locales, opts)
	if err != nil {
		return chunk.SetError(err)
	}

	return chunk.Write(html.EscapeString(formatter.Format(t, now)))
}

// FormatNumber formats a numeric val into localized text.
func (in *Intl) FormatNumber(chunk *Chunk, ctx *Context, _ Body, params Params) *Chunk {
	raw, ok := params.value()
	if !ok {
		return chunk.SetError(&MissingParameterError{Name: paramVal})
	}

	opts := in.resolveOptions(KindNumber, ctx, params)
	locales := in.resolveLocales(ctx, params)

	formatter, err := in.numbers.get(locales, opts)
	if err != nil {
		return chunk.SetError(err)
	}

	return chunk.Write(html.EscapeString(formatter.Format(toNumber(raw))))
}

// FormatMessage formats an interpolated, pluralization-aware message. The
// message comes from the inline _msg parameter or a _key catalog lookup; a
// pre-compiled _msg bypasses options resolution and the cache entirely.
func (in *Intl) FormatMessage(chunk *Chunk, ctx *Context, _ Body, params Params) *Chunk {
	msg, err := in.resolveMessage(ctx, params)
	if err != nil {
		return chunk.SetError(err)
	}

	args := params.interpolationArgs()

	if msg.Compiled != nil {
		out, err := msg.Compiled.Format(args)
		if err != nil {
			return chunk.SetError(err)
		}
		return chunk.Write(html.EscapeString(out))
	}

	opts := in.resolveMessageOptions(ctx)
	locales := in.resolveLocales(ctx, params)

	formatter, err := in.messages.getKey(msg.identity()+"\x00"+cacheKey(locales, opts), func() (*messageFormatter, error) {
		return newMessageFormatter(msg, locales)
	})
	if err != nil {
		return chunk.SetError(err)
	}

	out, err := formatter.Format(args)
	if err != nil {
		return chunk.SetError(err)
	}
	return chunk.Write(html.EscapeString(out))
}

// Scope is the intl block wrapper: it pushes the call parameters as the
// ambient intl namespace and renders the nested body against the extended
// context. Without a body it is a no-op.
func (in *Intl) Scope(chunk *Chunk, ctx *Context, body Body, params Params) *Chunk {
	if body == nil {
		return chunk
	}

	ambient := make(map[string]any, len(params))
	for key, value := range params {
		ambient[key] = value
	}

	return body(chunk, ctx.Push(map[string]any{"intl": ambient}))
}

// deprecated wraps a helper under its legacy name, logging one warning per
// invocation before delegating.
func (in *Intl) deprecated(alias, replacement string, helper Helper) Helper {
	return func(chunk *Chunk, ctx *Context, body Body, params Params) *Chunk {
		in.logger.Warn("deprecated helper invoked", "helper", alias, "use", replacement)
		return helper(chunk, ctx, body, params)
	}
}
