package intl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// relativeUnits orders the buckets from finest to coarsest with the
// threshold at which the next bucket takes over.
var relativeUnits = []struct {
	name    string
	unit    time.Duration
	matchUp time.Duration
}{
	{"second", time.Second, time.Minute},
	{"minute", time.Minute, time.Hour},
	{"hour", time.Hour, 24 * time.Hour},
	{"day", 24 * time.Hour, 7 * 24 * time.Hour},
	{"week", 7 * 24 * time.Hour, 30 * 24 * time.Hour},
	{"month", 30 * 24 * time.Hour, 365 * 24 * time.Hour},
	{"year", 365 * 24 * time.Hour, 0},
}

// relativeFormatter renders a date value relative to a reference instant.
// Supported option surface: style (long, short), units (force a bucket).
type relativeFormatter struct {
	style string
	unit  string // forced bucket, or ""
	rules RelativeRules
}

func (in *Intl) newRelativeFormatter(locales []string, opts FormatOptions) (*relativeFormatter, error) {
	f := &relativeFormatter{
		style: "long",
		rules: in.rules.resolve(locales).Relative,
	}

	if style, ok := optString(opts, "style"); ok {
		switch style {
		case "long", "short":
			f.style = style
		default:
			return nil, fmt.Errorf("intl: unknown relative style %q", style)
		}
	}

	if unit, ok := optString(opts, "units"); ok {
		unit = strings.TrimSuffix(unit, "s")
		if _, known := f.rules.Units[unit]; !known {
			return nil, fmt.Errorf("intl: unknown relative units %q", unit)
		}
		f.unit = unit
	}

	return f, nil
}

// Format renders t relative to now.
func (f *relativeFormatter) Format(t, now time.Time) string {
	delta := t.Sub(now)
	past := delta < 0
	if past {
		delta = -delta
	}

	name, count := f.bucket(delta)
	if name == "" {
		return f.rules.Now
	}

	phrase := f.phrase(name, count)
	if past {
		return strings.ReplaceAll(f.rules.Past, "{0}", phrase)
	}
	return strings.ReplaceAll(f.rules.Future, "{0}", phrase)
}

// bucket picks the unit and count for delta. An empty name means the delta is
// below one minute and the "now" phrase applies. A forced unit always
// produces a count, even a zero one.
func (f *relativeFormatter) bucket(delta time.Duration) (string, int) {
	if f.unit != "" {
		for _, entry := range relativeUnits {
			if entry.name == f.unit {
				return entry.name, int(delta / entry.unit)
			}
		}
	}

	if delta < time.Minute {
		return "", 0
	}

	for _, entry := range relativeUnits[1:] {
		if entry.matchUp == 0 || delta < entry.matchUp {
			return entry.name, int(delta / entry.unit)
		}
	}
	return "year", int(delta / (365 * 24 * time.Hour))
}

func (f *relativeFormatter) phrase(unit string, count int) string {
	entry := f.rules.Units[unit]

	template := entry.Other
	if f.style == "short" {
		template = entry.ShortOther
		if count == 1 && entry.ShortOne != "" {
			template = entry.ShortOne
		}
	} else if count == 1 && entry.One != "" {
		template = entry.One
	}

	if template == "" {
		template = "{0} " + unit
	}
	return strings.ReplaceAll(template, "{0}", strconv.Itoa(count))
}
