package entity

// Identity usuario autenticado devuelto por login/registro/perfil.
// El token que acompaña la respuesta de login se ignora: la sesión viaja en la cookie.
type Identity struct {
	ID        ID       `json:"id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	IsActive  bool     `json:"isActive"`
	LastLogin Fecha    `json:"lastLogin"`
	Roles     []string `json:"roles"`
}

// Clone copia profunda (los roles son un slice compartible).
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.Roles = append([]string(nil), i.Roles...)
	return &c
}
