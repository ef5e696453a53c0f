package entity

// Cliente cliente del concesionario.
type Cliente struct {
	ID                   ID       `json:"id"`
	ContactoID           ID       `json:"contacto_id"`
	FechaRegistroCliente Fecha    `json:"fecha_registro_cliente"`
	NotasCliente         string   `json:"notas_cliente"`
	Activo               bool     `json:"activo"`
	Contacto             Contacto `json:"contacto"`
}

// Key implementa store.Keyed.
func (c Cliente) Key() ID { return c.ID }

// Empleado empleado del concesionario.
type Empleado struct {
	ID                  ID       `json:"id"`
	ContactoID          ID       `json:"contacto_id"`
	PuestoID            ID       `json:"puesto_id"`
	FechaContratacion   Fecha    `json:"fecha_contratacion"`
	FechaDesvinculacion Fecha    `json:"fecha_desvinculacion"`
	Activo              bool     `json:"activo"`
	Contacto            Contacto `json:"contacto"`
	Puesto              Puesto   `json:"puesto"`
}

// Key implementa store.Keyed.
func (e Empleado) Key() ID { return e.ID }

// Proveedor proveedor de vehículos o servicios.
type Proveedor struct {
	ID                     ID       `json:"id"`
	ContactoID             ID       `json:"contacto_id"`
	TipoProveedor          string   `json:"tipo_proveedor"`
	FechaRegistroProveedor Fecha    `json:"fecha_registro_proveedor"`
	Activo                 bool     `json:"activo"`
	Contacto               Contacto `json:"contacto"`
}

// Key implementa store.Keyed.
func (p Proveedor) Key() ID { return p.ID }

// Rol rol tal como lo devuelve la administración de usuarios.
type Rol struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Usuario fila de la tabla de administración de usuarios.
type Usuario struct {
	ID        ID     `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsActive  bool   `json:"isActive"`
	LastLogin Fecha  `json:"lastLogin"`
	Roles     []Rol  `json:"roles"`
}

// Key implementa store.Keyed.
func (u Usuario) Key() ID { return u.ID }

// NombresRoles lista plana de nombres de rol.
func (u Usuario) NombresRoles() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Name)
	}
	return out
}
