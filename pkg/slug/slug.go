package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD), elimina las marcas de acento y recompone (NFC).
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make deriva un slug URL-safe a partir del nombre de la tienda:
// minúsculas, sin acentos, espacios a guiones y solo [a-z0-9-].
// "Minha Loja Ótima" -> "minha-loja-otima".
func Make(name string) string {
	s, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_':
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		default:
			// otros caracteres se descartan
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// WithSuffix agrega un sufijo numérico para resolver colisiones de unicidad ("mi-loja-2").
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
