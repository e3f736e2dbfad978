package i18n

// Language is a supported UI language tag.
type Language string

const (
	// Romanian is the club's primary language and the default.
	Romanian Language = "ro"
	// English is the fallback language.
	English Language = "en"
)

// Languages lists all supported languages in preference order.
func Languages() []Language {
	return []Language{Romanian, English}
}

// Parse maps a raw string to a supported Language.
func Parse(s string) (Language, bool) {
	switch s {
	case "ro":
		return Romanian, true
	case "en":
		return English, true
	}
	return "", false
}

// Bundle holds the translation tables for all supported languages.
// Lookups fall back to English, then to the key itself, so a missing
// translation degrades to something visible rather than an error.
type Bundle struct {
	tables map[Language]map[string]string
}

// NewBundle returns a Bundle backed by the built-in resource tables.
func NewBundle() *Bundle {
	return &Bundle{tables: map[Language]map[string]string{
		English:  englishTable,
		Romanian: romanianTable,
	}}
}

// T resolves key in lang, falling back to English and then the key itself.
func (b *Bundle) T(lang Language, key string) string {
	if table, ok := b.tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if lang != English {
		if v, ok := b.tables[English][key]; ok {
			return v
		}
	}
	return key
}

// Has reports whether key exists for lang without falling back.
func (b *Bundle) Has(lang Language, key string) bool {
	table, ok := b.tables[lang]
	if !ok {
		return false
	}
	_, ok = table[key]
	return ok
}

// Table returns a copy of the full translation table for lang.
func (b *Bundle) Table(lang Language) map[string]string {
	src, ok := b.tables[lang]
	if !ok {
		src = b.tables[English]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
