package catalog

// LocalizedText maps a language code to a translated string.
type LocalizedText map[string]string

// Resolve returns the value for lang, falling back to the fallback language
// when lang has no entry. Returns "" when neither exists.
func (t LocalizedText) Resolve(lang, fallback string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[fallback]
}

// Has reports whether a non-empty entry exists for lang.
func (t LocalizedText) Has(lang string) bool {
	return t[lang] != ""
}

func cloneLocalized(t LocalizedText) LocalizedText {
	if t == nil {
		return nil
	}
	c := make(LocalizedText, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}
