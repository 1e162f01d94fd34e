package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeFilter prepara un término de búsqueda libre: recorta espacios,
// pasa a minúsculas y pliega los acentos (NFD, quitar marcas, NFC) para que
// "Camisón" y "camison" filtren lo mismo. El lado de la columna lo pliegan
// las consultas con unaccent(); aquí solo se normaliza el término.
func normalizeFilter(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, q)
	if err != nil {
		return strings.ToLower(q)
	}
	return strings.ToLower(folded)
}
