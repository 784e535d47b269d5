package intl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberFormatter renders numeric values backed by golang.org/x/text.
// Supported option surface: style (decimal, percent, currency), currency
// (ISO 4217 code), minimumFractionDigits, maximumFractionDigits.
type numberFormatter struct {
	style   string
	unit    currency.Unit
	minFrac int // -1 when unset
	maxFrac int
	printer *message.Printer
	rules   CurrencyFormatRules
}

func (in *Intl) newNumberFormatter(locales []string, opts FormatOptions) (*numberFormatter, error) {
	tag := language.Und
	if len(locales) > 0 {
		tag = language.Make(locales[0])
	}

	f := &numberFormatter{
		style:   "decimal",
		minFrac: -1,
		maxFrac: -1,
		printer: message.NewPrinter(tag),
		rules:   in.rules.resolve(locales).CurrencyRules,
	}

	if style, ok := optString(opts, "style"); ok {
		switch style {
		case "decimal", "percent", "currency":
			f.style = style
		default:
			return nil, fmt.Errorf("intl: unknown number style %q", style)
		}
	}

	if f.style == "currency" {
		code, ok := optString(opts, "currency")
		if !ok {
			return nil, fmt.Errorf("intl: currency style requires a currency option")
		}
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("intl: invalid currency %q: %w", code, err)
		}
		f.unit = unit
	}

	var err error
	if f.minFrac, err = optDigits(opts, "minimumFractionDigits"); err != nil {
		return nil, err
	}
	if f.maxFrac, err = optDigits(opts, "maximumFractionDigits"); err != nil {
		return nil, err
	}

	return f, nil
}

// Format renders v according to the formatter style.
func (f *numberFormatter) Format(v float64) string {
	switch f.style {
	case "percent":
		return f.printer.Sprintf("%v", number.Percent(v, f.fractionOpts(0)...))
	case "currency":
		return f.formatCurrency(v)
	default:
		return f.printer.Sprintf("%v", number.Decimal(v, f.fractionOpts(-1)...))
	}
}

func (f *numberFormatter) fractionOpts(defaultDigits int) []number.Option {
	minFrac, maxFrac := f.minFrac, f.maxFrac
	if minFrac < 0 && maxFrac < 0 && defaultDigits >= 0 {
		minFrac, maxFrac = defaultDigits, defaultDigits
	}

	var opts []number.Option
	if minFrac >= 0 {
		opts = append(opts, number.MinFractionDigits(minFrac))
	}
	if maxFrac >= 0 {
		opts = append(opts, number.MaxFractionDigits(maxFrac))
	}
	return opts
}

// formatCurrency composes the locale-formatted amount with the currency
// symbol placed per the locale rules.
func (f *numberFormatter) formatCurrency(amount float64) string {
	digits := 2
	if f.maxFrac >= 0 {
		digits = f.maxFrac
	}
	opts := []number.Option{number.MinFractionDigits(digits), number.MaxFractionDigits(digits)}
	formatted := f.printer.Sprintf("%v", number.Decimal(amount, opts...))

	symbol := f.currencySymbol(amount, opts)
	if f.rules.SymbolPosition == "after" {
		return formatted + " " + symbol
	}
	return symbol + " " + formatted
}

// currencySymbol extracts the display symbol by removing the formatted amount
// from x/text's symbol rendering, falling back to an English printer and
// finally to the ISO code.
func (f *numberFormatter) currencySymbol(amount float64, opts []number.Option) string {
	value := f.unit.Amount(amount)
	full := f.printer.Sprintf("%v", currency.Symbol(value))
	localized := f.printer.Sprintf("%v", number.Decimal(amount, opts...))
	symbol := strings.TrimSpace(strings.ReplaceAll(full, localized, ""))

	if symbol == "" || symbol == f.unit.String() {
		englishPrinter := message.NewPrinter(language.English)
		englishFull := englishPrinter.Sprintf("%v", currency.Symbol(value))
		englishAmount := englishPrinter.Sprintf("%v", number.Decimal(amount, opts...))
		symbol = strings.TrimSpace(strings.ReplaceAll(englishFull, englishAmount, ""))
	}

	if symbol == "" {
		symbol = f.unit.String()
	}
	return symbol
}

func optDigits(opts FormatOptions, name string) (int, error) {
	v, ok := opts[name]
	if !ok {
		return -1, nil
	}
	switch value := v.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	case string:
		digits, err := strconv.Atoi(value)
		if err != nil {
			return -1, fmt.Errorf("intl: invalid %s %q", name, value)
		}
		return digits, nil
	default:
		return -1, fmt.Errorf("intl: invalid %s value %v", name, v)
	}
}

// toNumber coerces a helper value into a float64. There is no validity
// check beyond type coercion; unparseable input becomes NaN and the
// formatting backend decides how to render it.
func toNumber(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int8:
		return float64(value)
	case int16:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint8:
		return float64(value)
	case uint16:
		return float64(value)
	case uint32:
		return float64(value)
	case uint64:
		return float64(value)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return math.NaN()
}
