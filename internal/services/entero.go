package services

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	errNoNumerico = errors.New("no es un número")
	errDesborde   = errors.New("fuera de rango")
)

// parsearEntero interpreta un parámetro de ruta como lo hace un parseInt
// tolerante: ignora espacios iniciales, acepta signo y prefijo 0x, y lee
// dígitos hasta el primer carácter inválido ("12abc" es 12).
func parsearEntero(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	negativo := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negativo = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	fin := 0
	for fin < len(s) && esDigito(s[fin], base) {
		fin++
	}
	if fin == 0 {
		return 0, errNoNumerico
	}
	valor, err := strconv.ParseInt(s[:fin], base, 64)
	if err != nil {
		return 0, errDesborde
	}
	if negativo {
		valor = -valor
	}
	if int64(int(valor)) != valor {
		return 0, errDesborde
	}
	return int(valor), nil
}

func esDigito(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f', base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
