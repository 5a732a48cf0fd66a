package enums

// Locale is a BCP 47 language-region tag used across customers, product
// translations, and the trilingual annotation columns.
type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleZhCN Locale = "zh-CN"
	LocaleEsES Locale = "es-ES"
	LocaleFrFR Locale = "fr-FR"
	LocaleJaJP Locale = "ja-JP"
)

// CustomerLocales returns the locales customers may carry.
func CustomerLocales() []Locale {
	return []Locale{LocaleEnUS, LocaleZhCN, LocaleEsES, LocaleFrFR, LocaleJaJP}
}

// TranslationLocales returns the locales every product is translated into.
// Exactly one translation row exists per product per entry.
func TranslationLocales() []Locale {
	return []Locale{LocaleEnUS, LocaleZhCN, LocaleEsES}
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}
