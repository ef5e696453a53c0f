package entity

// Contacto datos de contacto compartidos por clientes, empleados y proveedores.
type Contacto struct {
	ID             ID     `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	NombreEmpresa  string `json:"nombre_empresa,omitempty"`
	Email          string `json:"email"`
	DniRuc         string `json:"dni_ruc"`
}

// Etiqueta texto para selectores y tablas.
func (c Contacto) Etiqueta() string {
	if c.NombreEmpresa != "" {
		return c.NombreCompleto + " (" + c.NombreEmpresa + ")"
	}
	return c.NombreCompleto
}

// Puesto cargo de un empleado.
type Puesto struct {
	ID           ID     `json:"id"`
	NombrePuesto string `json:"nombre_puesto"`
}
