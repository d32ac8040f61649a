package domain

import "strings"

// NormalizarEmail aplica a forma canônica usada em toda a base: minúsculo e
// sem espaços nas pontas. Todo lookup e toda escrita passam por aqui.
func NormalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
