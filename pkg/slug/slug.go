// Package slug deriva identificadores legibles (slug y code) a partir de nombres.
// La derivación es determinista: el mismo nombre produce siempre el mismo slug.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make convierte un nombre en lower-kebab-case ASCII: quita tildes, colapsa todo lo que no sea
// letra o dígito en un único guion y recorta guiones en los extremos.
// "Teléfonos Móviles 5G" → "telefonos-moviles-5g".
func Make(name string) string {
	return join(name, '-', unicode.ToLower)
}

// Code deriva un código en UPPER_SNAKE_CASE ("Memoria RAM" → "MEMORIA_RAM").
func Code(name string) string {
	return join(name, '_', unicode.ToUpper)
}

func join(name string, sep rune, mapCase func(rune) rune) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range plain {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSep && b.Len() > 0 {
				b.WriteRune(sep)
			}
			pendingSep = false
			b.WriteRune(mapCase(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}
