package dto

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	ContactoID   int64  `json:"contacto_id" form:"contacto_id" validate:"required,gt=0"`
	NotasCliente string `json:"notas_cliente" form:"notas_cliente" validate:"required"`
	Activo       bool   `json:"activo" form:"activo"`
}

// UpdateClientRequest modificación parcial de cliente.
type UpdateClientRequest struct {
	ContactoID   *int64  `json:"contacto_id,omitempty" form:"contacto_id" validate:"omitempty,gt=0"`
	NotasCliente *string `json:"notas_cliente,omitempty" form:"notas_cliente"`
	Activo       *bool   `json:"activo,omitempty" form:"activo"`
}

// CreateEmployeeRequest alta de empleado. Las fechas viajan como YYYY-MM-DD.
type CreateEmployeeRequest struct {
	ContactoID          int64  `json:"contacto_id" form:"contacto_id" validate:"required,gt=0"`
	PuestoID            int64  `json:"puesto_id" form:"puesto_id" validate:"required,gt=0"`
	FechaContratacion   string `json:"fecha_contratacion" form:"fecha_contratacion" validate:"required,datetime=2006-01-02"`
	FechaDesvinculacion string `json:"fecha_desvinculacion,omitempty" form:"fecha_desvinculacion" validate:"omitempty,datetime=2006-01-02"`
	Activo              bool   `json:"activo" form:"activo"`
}

// UpdateEmployeeRequest modificación parcial de empleado.
type UpdateEmployeeRequest struct {
	ContactoID          *int64  `json:"contacto_id,omitempty" form:"contacto_id" validate:"omitempty,gt=0"`
	PuestoID            *int64  `json:"puesto_id,omitempty" form:"puesto_id" validate:"omitempty,gt=0"`
	FechaContratacion   *string `json:"fecha_contratacion,omitempty" form:"fecha_contratacion" validate:"omitempty,datetime=2006-01-02"`
	FechaDesvinculacion *string `json:"fecha_desvinculacion,omitempty" form:"fecha_desvinculacion" validate:"omitempty,datetime=2006-01-02"`
	Activo              *bool   `json:"activo,omitempty" form:"activo"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	ContactoID          int64  `json:"contacto_id" form:"contacto_id" validate:"required,gt=0"`
	TipoProveedor       string `json:"tipo_proveedor" form:"tipo_proveedor" validate:"required,min=1"`
	FechaContratacion   string `json:"fecha_contratacion" form:"fecha_contratacion" validate:"required,datetime=2006-01-02"`
	FechaDesvinculacion string `json:"fecha_desvinculacion,omitempty" form:"fecha_desvinculacion" validate:"omitempty,datetime=2006-01-02"`
	Activo              bool   `json:"activo" form:"activo"`
}

// UpdateSupplierRequest modificación parcial de proveedor.
type UpdateSupplierRequest struct {
	ContactoID          *int64  `json:"contacto_id,omitempty" form:"contacto_id" validate:"omitempty,gt=0"`
	TipoProveedor       *string `json:"tipo_proveedor,omitempty" form:"tipo_proveedor" validate:"omitempty,min=1"`
	FechaContratacion   *string `json:"fecha_contratacion,omitempty" form:"fecha_contratacion" validate:"omitempty,datetime=2006-01-02"`
	FechaDesvinculacion *string `json:"fecha_desvinculacion,omitempty" form:"fecha_desvinculacion" validate:"omitempty,datetime=2006-01-02"`
	Activo              *bool   `json:"activo,omitempty" form:"activo"`
}

// CreateUserRequest alta de usuario desde administración.
type CreateUserRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=2,max=15"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Role            string `json:"role" form:"role" validate:"required,oneof=user admin"`
	Password        string `json:"password" form:"password" validate:"required,password"`
	ConfirmPassword string `json:"-" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// UpdateUserRequest modificación parcial de usuario; al menos un campo debe venir.
type UpdateUserRequest struct {
	Username        *string `json:"username,omitempty" form:"username" validate:"omitempty,min=2,max=15"`
	Email           *string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	Role            *string `json:"role,omitempty" form:"role" validate:"omitempty,oneof=user admin"`
	Password        *string `json:"password,omitempty" form:"password" validate:"omitempty,password"`
	ConfirmPassword *string `json:"-" form:"confirmPassword"`
}

// Empty indica que no se envió ningún campo para actualizar.
func (r UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Email == nil && r.Role == nil && r.Password == nil
}

// Normalize descarta los campos de texto vacíos: en un formulario HTML "vacío" significa "sin cambios".
func (r *UpdateUserRequest) Normalize() {
	emptyToNil(&r.Username)
	emptyToNil(&r.Email)
	emptyToNil(&r.Role)
	emptyToNil(&r.Password)
	emptyToNil(&r.ConfirmPassword)
}

// Normalize ver UpdateUserRequest.Normalize.
func (r *UpdateClientRequest) Normalize() {
	emptyToNil(&r.NotasCliente)
}

// Normalize ver UpdateUserRequest.Normalize.
func (r *UpdateEmployeeRequest) Normalize() {
	emptyToNil(&r.FechaContratacion)
	emptyToNil(&r.FechaDesvinculacion)
}

// Normalize ver UpdateUserRequest.Normalize.
func (r *UpdateSupplierRequest) Normalize() {
	emptyToNil(&r.TipoProveedor)
	emptyToNil(&r.FechaContratacion)
	emptyToNil(&r.FechaDesvinculacion)
}

func emptyToNil(p **string) {
	if *p != nil && **p == "" {
		*p = nil
	}
}
