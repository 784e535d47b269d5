package intl

import "golang.org/x/text/language"

// LocaleRules contains the locale-specific patterns the formatters draw on
// beyond what golang.org/x/text supplies directly. In the future this could
// be generated from CLDR data or loaded from JSON files.
type LocaleRules struct {
	Locale        string              `json:"locale"`
	DatePatterns  map[string]string   `json:"date_patterns"`
	TimePatterns  map[string]string   `json:"time_patterns"`
	MonthNames    []string            `json:"month_names"`
	MonthAbbrevs  []string            `json:"month_abbrevs"`
	WeekdayNames  []string            `json:"weekday_names"`
	Relative      RelativeRules       `json:"relative"`
	CurrencyRules CurrencyFormatRules `json:"currency_rules"`
}

// RelativeRules defines relative-time phrasing. Unit templates substitute
// {0} with the count.
type RelativeRules struct {
	Now    string                  `json:"now"`
	Past   string                  `json:"past"`
	Future string                  `json:"future"`
	Units  map[string]RelativeUnit `json:"units"`
}

// RelativeUnit holds singular/plural phrases in long and short styles.
type RelativeUnit struct {
	One        string `json:"one"`
	Other      string `json:"other"`
	ShortOne   string `json:"short_one"`
	ShortOther string `json:"short_other"`
}

// CurrencyFormatRules defines currency symbol placement.
type CurrencyFormatRules struct {
	SymbolPosition string `json:"symbol_position"` // "before", "after"
}

// localeRulesData contains hardcoded rules for the built-in locales.
var localeRulesData = map[string]LocaleRules{
	"en": {
		Locale: "en",
		DatePatterns: map[string]string{
			"full":   "{weekday}, {month} {day}, {year}",
			"long":   "{month} {day}, {year}",
			"medium": "{monthShort} {day}, {year}",
			"short":  "{month2}/{day2}/{year}",
		},
		TimePatterns: map[string]string{
			"full":   "3:04:05 PM MST",
			"long":   "3:04:05 PM",
			"medium": "3:04:05 PM",
			"short":  "3:04 PM",
		},
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrevs: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		WeekdayNames: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		Relative: RelativeRules{
			Now:    "just now",
			Past:   "{0} ago",
			Future: "in {0}",
			Units: map[string]RelativeUnit{
				"second": {One: "{0} second", Other: "{0} seconds", ShortOne: "{0} sec.", ShortOther: "{0} sec."},
				"minute": {One: "{0} minute", Other: "{0} minutes", ShortOne: "{0} min.", ShortOther: "{0} min."},
				"hour":   {One: "{0} hour", Other: "{0} hours", ShortOne: "{0} hr.", ShortOther: "{0} hr."},
				"day":    {One: "{0} day", Other: "{0} days", ShortOne: "{0} day", ShortOther: "{0} days"},
				"week":   {One: "{0} week", Other: "{0} weeks", ShortOne: "{0} wk.", ShortOther: "{0} wk."},
				"month":  {One: "{0} month", Other: "{0} months", ShortOne: "{0} mo.", ShortOther: "{0} mo."},
				"year":   {One: "{0} year", Other: "{0} years", ShortOne: "{0} yr.", ShortOther: "{0} yr."},
			},
		},
		CurrencyRules: CurrencyFormatRules{SymbolPosition: "before"},
	},
	"es": {
		Locale: "es",
		DatePatterns: map[string]string{
			"full":   "{weekday}, {day} de {month} de {year}",
			"long":   "{day} de {month} de {year}",
			"medium": "{day} {monthShort} {year}",
			"short":  "{day2}/{month2}/{year}",
		},
		TimePatterns: map[string]string{
			"full":   "15:04:05 MST",
			"long":   "15:04:05",
			"medium": "15:04:05",
			"short":  "15:04",
		},
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthAbbrevs: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		WeekdayNames: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		Relative: RelativeRules{
			Now:    "ahora mismo",
			Past:   "hace {0}",
			Future: "dentro de {0}",
			Units: map[string]RelativeUnit{
				"second": {One: "{0} segundo", Other: "{0} segundos", ShortOne: "{0} s", ShortOther: "{0} s"},
				"minute": {One: "{0} minuto", Other: "{0} minutos", ShortOne: "{0} min", ShortOther: "{0} min"},
				"hour":   {One: "{0} hora", Other: "{0} horas", ShortOne: "{0} h", ShortOther: "{0} h"},
				"day":    {One: "{0} día", Other: "{0} días", ShortOne: "{0} día", ShortOther: "{0} días"},
				"week":   {One: "{0} semana", Other: "{0} semanas", ShortOne: "{0} sem.", ShortOther: "{0} sem."},
				"month":  {One: "{0} mes", Other: "{0} meses", ShortOne: "{0} mes", ShortOther: "{0} meses"},
				"year":   {One: "{0} año", Other: "{0} años", ShortOne: "{0} a", ShortOther: "{0} a"},
			},
		},
		CurrencyRules: CurrencyFormatRules{SymbolPosition: "after"},
	},
}

// rulesProvider resolves LocaleRules for a locale priority list.
type rulesProvider struct {
	rules map[string]LocaleRules
}

func newRulesProvider() *rulesProvider {
	rules := make(map[string]LocaleRules, len(localeRulesData))
	for locale, entry := range localeRulesData {
		rules[locale] = entry
	}
	return &rulesProvider{rules: rules}
}

func (p *rulesProvider) set(locale string, rules LocaleRules) {
	if rules.Locale == "" {
		rules.Locale = locale
	}
	p.rules[normalizeLocale(locale)] = rules
}

// resolve walks the locale priority list; for each candidate it tries the
// exact locale, then its parent chain, then the base language. English is the
// ultimate fallback.
func (p *rulesProvider) resolve(locales []string) LocaleRules {
	for _, locale := range locales {
		if rules, ok := p.lookup(locale); ok {
			return rules
		}
	}
	if rules, ok := p.rules["en"]; ok {
		return rules
	}
	return localeRulesData["en"]
}

func (p *rulesProvider) lookup(locale string) (LocaleRules, bool) {
	if rules, ok := p.rules[locale]; ok {
		return rules, true
	}

	tag := language.Make(locale)
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		if rules, ok := p.rules[parent.String()]; ok {
			return rules, true
		}
	}

	base, _ := tag.Base()
	if rules, ok := p.rules[base.String()]; ok {
		return rules, true
	}
	return LocaleRules{}, false
}
