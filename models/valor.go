package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// Valor conserva un campo JSON tal como lo envió el cliente, sea cual sea su
// tipo. Un Valor vacío significa que el campo no existe en el registro.
type Valor []byte

// ValorTexto construye un Valor con una cadena JSON.
func ValorTexto(s string) Valor {
	b, _ := json.Marshal(s)
	return b
}

func (v Valor) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *Valor) UnmarshalJSON(data []byte) error {
	*v = append(Valor(nil), data...)
	return nil
}

// Presente indica si el campo existe, aunque sea null.
func (v Valor) Presente() bool { return len(v) > 0 }

// Texto devuelve la cadena cuando el valor es un string JSON.
func (v Valor) Texto() (string, bool) {
	b := bytes.TrimSpace(v)
	if len(b) == 0 || b[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false
	}
	return s, true
}

// Entero devuelve el número cuando el valor es un número JSON sin parte
// decimal. Las cadenas numéricas no cuentan: "7" no es 7.
func (v Valor) Entero() (int, bool) {
	b := bytes.TrimSpace(v)
	if len(b) == 0 || !(b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

func (v Valor) clonar() Valor {
	if v == nil {
		return nil
	}
	return append(Valor(nil), v...)
}
