// Package locale provides the text-lookup collaborator mapping source
// strings to display strings.
package locale

// Translator maps a source string to its display form.
type Translator func(string) string

// Passthrough returns source strings unchanged.
func Passthrough(s string) string { return s }

// Catalog is a translation table for one display language.
type Catalog map[string]string

// Translator returns a lookup function over the catalog; untranslated
// strings pass through unchanged.
func (c Catalog) Translator() Translator {
	return func(s string) string {
		if t, ok := c[s]; ok && t != "" {
			return t
		}
		return s
	}
}
