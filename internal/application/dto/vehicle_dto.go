package dto

// AdquisicionRequest datos de la compra/ingreso que acompañan el alta del vehículo.
type AdquisicionRequest struct {
	FechaAdquisicion   string  `json:"fecha_adquisicion" form:"fecha_adquisicion" validate:"required,datetime=2006-01-02"`
	CostoAdquisicion   float64 `json:"costo_adquisicion" form:"costo_adquisicion" validate:"gte=0"`
	TipoAdquisicion    string  `json:"tipo_adquisicion" form:"tipo_adquisicion" validate:"required,tipo_adquisicion"`
	ProveedorID        *int64  `json:"proveedor_id,omitempty" form:"proveedor_id" validate:"omitempty,gt=0"`
	ClienteTradeInID   *int64  `json:"cliente_trade_in_id,omitempty" form:"cliente_trade_in_id" validate:"omitempty,gt=0"`
	EmpleadoRegistraID int64   `json:"empleado_registra_id" form:"empleado_registra_id" validate:"required,gt=0"`
	NotasAdquisicion   string  `json:"notas_adquisicion,omitempty" form:"notas_adquisicion"`
}

// CaracteristicaRequest característica opcional elegida.
type CaracteristicaRequest struct {
	CaracteristicaID    int64  `json:"caracteristica_id" form:"caracteristica_id" validate:"required,gte=1"`
	ValorCaracteristica string `json:"valor_caracteristica" form:"valor_caracteristica" validate:"required,min=1"`
}

// CreateVehicleRequest alta de vehículo (POST /vehicle). Los montos viajan como números.
type CreateVehicleRequest struct {
	ModeloID             int64                   `json:"modelo_id" form:"modelo_id" validate:"required,gte=1"`
	ColorID              int64                   `json:"color_id" form:"color_id" validate:"required,gte=1"`
	TipoTransmisionID    int64                   `json:"tipo_transmision_id" form:"tipo_transmision_id" validate:"required,gte=1"`
	TipoCombustibleID    int64                   `json:"tipo_combustible_id" form:"tipo_combustible_id" validate:"required,gte=1"`
	Anio                 int                     `json:"anio" form:"anio" validate:"required,anio"`
	VIN                  string                  `json:"vin" form:"vin" validate:"required,min=1,max=17"`
	NumeroMotor          string                  `json:"numero_motor,omitempty" form:"numero_motor"`
	NumeroChasis         string                  `json:"numero_chasis,omitempty" form:"numero_chasis"`
	Kilometraje          *int                    `json:"kilometraje,omitempty" form:"kilometraje" validate:"omitempty,gte=0"`
	NumeroPuertas        *int                    `json:"numero_puertas,omitempty" form:"numero_puertas" validate:"omitempty,gte=1,lte=9"`
	CapacidadPasajeros   *int                    `json:"capacidad_pasajeros,omitempty" form:"capacidad_pasajeros" validate:"omitempty,gte=1"`
	PrecioBase           float64                 `json:"precio_base" form:"precio_base" validate:"gte=0"`
	PrecioVentaSugerido  *float64                `json:"precio_venta_sugerido,omitempty" form:"precio_venta_sugerido" validate:"omitempty,gte=0"`
	DescripcionAdicional string                  `json:"descripcion_adicional,omitempty" form:"descripcion_adicional"`
	EstadoInventario     string                  `json:"estado_inventario" form:"estado_inventario" validate:"estado_inventario"`
	UbicacionFisica      string                  `json:"ubicacion_fisica,omitempty" form:"ubicacion_fisica"`
	Adquisicion          AdquisicionRequest      `json:"adquisicion" form:"adquisicion"`
	Caracteristicas      []CaracteristicaRequest `json:"caracteristicasOpcionales,omitempty" form:"caracteristicasOpcionales" validate:"omitempty,dive"`
}

// ApplyDefaults valores por defecto del formulario. Las características no marcadas
// llegan sin id y se descartan.
func (r *CreateVehicleRequest) ApplyDefaults() {
	if r.EstadoInventario == "" {
		r.EstadoInventario = "En Preparacion"
	}
	kept := r.Caracteristicas[:0]
	for _, c := range r.Caracteristicas {
		if c.CaracteristicaID != 0 {
			kept = append(kept, c)
		}
	}
	r.Caracteristicas = kept
	if len(r.Caracteristicas) == 0 {
		r.Caracteristicas = nil
	}
}
