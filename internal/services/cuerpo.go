package services

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// objetoCuerpo decodifica el cuerpo de la petición como objeto JSON. Un
// cuerpo vacío equivale a {}.
func objetoCuerpo(body []byte) (map[string]json.RawMessage, []byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]json.RawMessage{}, []byte("{}"), nil
	}
	var campos map[string]json.RawMessage
	if err := json.Unmarshal(body, &campos); err != nil {
		return nil, nil, err
	}
	if campos == nil {
		return map[string]json.RawMessage{}, []byte("{}"), nil
	}
	return campos, body, nil
}

// presente replica la evaluación de verdad de un campo requerido: ausente,
// null, false, 0 y "" cuentan como faltantes.
func presente(valor json.RawMessage) bool {
	v := bytes.TrimSpace(valor)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", `""`:
		return false
	}
	if v[0] == '-' || (v[0] >= '0' && v[0] <= '9') {
		if f, err := strconv.ParseFloat(string(v), 64); err == nil && f == 0 {
			return false
		}
	}
	return true
}
