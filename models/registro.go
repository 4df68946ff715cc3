package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Extras conserva los campos que no forman parte del registro base. Se
// persisten y se devuelven tal como llegaron.
type Extras map[string]json.RawMessage

// decodificarCampos reparte un objeto JSON entre los campos conocidos y los
// extras. Los campos ausentes en data conservan su valor actual (merge
// superficial). Los campos Valor guardan el JSON tal cual, null incluido; los
// identificadores numéricos ignoran null y rechazan otros tipos.
func decodificarCampos(data []byte, conocidos map[string]any, extras *Extras) error {
	var crudo map[string]json.RawMessage
	if err := json.Unmarshal(data, &crudo); err != nil {
		return err
	}
	for clave, valor := range crudo {
		destino, ok := conocidos[clave]
		if !ok {
			if *extras == nil {
				*extras = Extras{}
			}
			(*extras)[clave] = valor
			continue
		}
		if v, ok := destino.(*Valor); ok {
			*v = append(Valor(nil), valor...)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(valor), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(valor, destino); err != nil {
			return fmt.Errorf("campo %s: %w", clave, err)
		}
	}
	return nil
}

// codificarCampos serializa base y le agrega los extras sin pisar los campos
// conocidos.
func codificarCampos(base any, extras Extras) ([]byte, error) {
	data, err := json.Marshal(base)
	if err != nil || len(extras) == 0 {
		return data, err
	}
	var salida map[string]json.RawMessage
	if err := json.Unmarshal(data, &salida); err != nil {
		return nil, err
	}
	for clave, valor := range extras {
		if _, ok := salida[clave]; !ok {
			salida[clave] = valor
		}
	}
	return json.Marshal(salida)
}

func clonarExtras(e Extras) Extras {
	if e == nil {
		return nil
	}
	out := make(Extras, len(e))
	for k, v := range e {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// alternar aplica la regla de cambio de estado: si el estado actual es la
// cadena primero vuelve a implicito; cualquier otro valor, o la ausencia del
// campo, lleva a primero.
func alternar(actual Valor, implicito, primero string) Valor {
	if s, ok := actual.Texto(); ok && s == primero {
		return ValorTexto(implicito)
	}
	return ValorTexto(primero)
}
