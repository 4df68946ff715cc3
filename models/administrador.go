package models

// Administrador se identifica por nroAdministrador. Su estado se alterna en
// sentido inverso al de Usuario: el primer cambio lo deja Inactivo.
type Administrador struct {
	NroAdministrador int    `json:"nroAdministrador"`
	Nombre           Valor  `json:"nombre,omitempty"`
	Email            Valor  `json:"email,omitempty"`
	Estado           Valor  `json:"estado,omitempty"`
	Extras           Extras `json:"-"`
}

func (a Administrador) MarshalJSON() ([]byte, error) {
	type plano Administrador
	return codificarCampos(plano(a), a.Extras)
}

func (a *Administrador) UnmarshalJSON(data []byte) error {
	return decodificarCampos(data, map[string]any{
		"nroAdministrador": &a.NroAdministrador,
		"nombre":           &a.Nombre,
		"email":            &a.Email,
		"estado":           &a.Estado,
	}, &a.Extras)
}

func (a Administrador) Clave() (int, bool) { return a.NroAdministrador, true }

func (a *Administrador) AlternarEstado() {
	a.Estado = alternar(a.Estado, AdministradorActivo, AdministradorInactivo)
}

func (a Administrador) Clonar() Administrador {
	a.Nombre = a.Nombre.clonar()
	a.Email = a.Email.clonar()
	a.Estado = a.Estado.clonar()
	a.Extras = clonarExtras(a.Extras)
	return a
}
