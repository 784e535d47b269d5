package intl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateFormatter renders a date or time value using a per-locale style pattern
// or an explicit Go layout. Instances are immutable after construction.
type dateFormatter struct {
	kind    FormatterKind
	pattern string // placeholder pattern for dates
	layout  string // Go layout, used when set
	rules   LocaleRules
}

func (in *Intl) newDateFormatter(kind FormatterKind) func(locales []string, opts FormatOptions) (*dateFormatter, error) {
	return func(locales []string, opts FormatOptions) (*dateFormatter, error) {
		rules := in.rules.resolve(locales)

		f := &dateFormatter{kind: kind, rules: rules}

		if layout, ok := optString(opts, "pattern"); ok {
			f.layout = layout
			return f, nil
		}

		style := "medium"
		if s, ok := optString(opts, "style"); ok {
			style = s
		}

		switch kind {
		case KindDate:
			pattern, ok := rules.DatePatterns[style]
			if !ok {
				return nil, fmt.Errorf("intl: unknown date style %q", style)
			}
			f.pattern = pattern
		case KindTime:
			layout, ok := rules.TimePatterns[style]
			if !ok {
				return nil, fmt.Errorf("intl: unknown time style %q", style)
			}
			f.layout = layout
		default:
			return nil, fmt.Errorf("intl: %s is not a temporal formatter kind", kind)
		}

		return f, nil
	}
}

// Format renders t. The zero pattern case means an explicit or style-derived
// Go layout applies.
func (f *dateFormatter) Format(t time.Time) string {
	if f.layout != "" {
		return t.Format(f.layout)
	}
	return expandDatePattern(f.pattern, t, f.rules)
}

// expandDatePattern substitutes the rule-table placeholders into pattern.
func expandDatePattern(pattern string, t time.Time, rules LocaleRules) string {
	result := strings.ReplaceAll(pattern, "{day}", strconv.Itoa(t.Day()))
	result = strings.ReplaceAll(result, "{day2}", fmt.Sprintf("%02d", t.Day()))
	result = strings.ReplaceAll(result, "{month}", monthName(rules.MonthNames, t.Month()))
	result = strings.ReplaceAll(result, "{monthShort}", monthName(rules.MonthAbbrevs, t.Month()))
	result = strings.ReplaceAll(result, "{month2}", fmt.Sprintf("%02d", int(t.Month())))
	result = strings.ReplaceAll(result, "{weekday}", weekdayName(rules.WeekdayNames, t.Weekday()))
	result = strings.ReplaceAll(result, "{year}", strconv.Itoa(t.Year()))
	return result
}

func monthName(names []string, m time.Month) string {
	if idx := int(m) - 1; idx >= 0 && idx < len(names) {
		return names[idx]
	}
	return m.String()
}

func weekdayName(names []string, d time.Weekday) string {
	if idx := int(d); idx >= 0 && idx < len(names) {
		return names[idx]
	}
	return d.String()
}

// optString reads a string-valued option.
func optString(opts FormatOptions, name string) (string, bool) {
	v, ok := opts[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// toDate coerces a helper value into a time.Time. Numeric values are unix
// epoch timestamps; magnitudes of 1e12 and above are treated as milliseconds.
// Strings are parsed as RFC3339, then the common ISO date/datetime layouts.
func toDate(v any) (time.Time, error) {
	switch value := v.(type) {
	case time.Time:
		return value, nil
	case *time.Time:
		if value != nil {
			return *value, nil
		}
	case int:
		return epochToTime(int64(value)), nil
	case int64:
		return epochToTime(value), nil
	case float64:
		return epochToTime(int64(value)), nil
	case string:
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, &InvalidDateError{Value: v}
}

func epochToTime(epoch int64) time.Time {
	abs := epoch
	if abs < 0 {
		abs = -abs
	}
	if abs >= 1e12 {
		return time.UnixMilli(epoch).UTC()
	}
	return time.Unix(epoch, 0).UTC()
}
