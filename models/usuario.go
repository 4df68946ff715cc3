package models

// Usuario se identifica por su dni, que siempre envía el cliente. El campo id
// es un consecutivo interno y no participa en las búsquedas.
type Usuario struct {
	ID     int    `json:"id"`
	Dni    Valor  `json:"dni,omitempty"`
	Nombre Valor  `json:"nombre,omitempty"`
	Email  Valor  `json:"email,omitempty"`
	Estado Valor  `json:"estado,omitempty"`
	Extras Extras `json:"-"`
}

func (u Usuario) MarshalJSON() ([]byte, error) {
	type plano Usuario
	return codificarCampos(plano(u), u.Extras)
}

func (u *Usuario) UnmarshalJSON(data []byte) error {
	return decodificarCampos(data, map[string]any{
		"id":     &u.ID,
		"dni":    &u.Dni,
		"nombre": &u.Nombre,
		"email":  &u.Email,
		"estado": &u.Estado,
	}, &u.Extras)
}

// Clave devuelve el dni cuando es un número entero; un dni ausente o de otro
// tipo ("123" incluido) no se puede buscar.
func (u Usuario) Clave() (int, bool) { return u.Dni.Entero() }

func (u *Usuario) AlternarEstado() {
	u.Estado = alternar(u.Estado, UsuarioInactivo, UsuarioActivo)
}

func (u Usuario) Clonar() Usuario {
	u.Dni = u.Dni.clonar()
	u.Nombre = u.Nombre.clonar()
	u.Email = u.Email.clonar()
	u.Estado = u.Estado.clonar()
	u.Extras = clonarExtras(u.Extras)
	return u
}
