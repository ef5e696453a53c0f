package entity

import "github.com/shopspring/decimal"

// Estados de inventario de un vehículo.
const (
	EstadoDisponible    = "Disponible"
	EstadoReservado     = "Reservado"
	EstadoVendido       = "Vendido"
	EstadoEnPreparacion = "En Preparacion"
	EstadoConsignacion  = "Consignacion"
	EstadoNoDisponible  = "No Disponible"
)

// EstadosInventario en el orden en que se ofrecen en el formulario.
var EstadosInventario = []string{
	EstadoDisponible, EstadoReservado, EstadoVendido,
	EstadoEnPreparacion, EstadoConsignacion, EstadoNoDisponible,
}

// Tipos de adquisición.
const (
	AdquisicionCompraDirecta = "Compra Directa"
	AdquisicionTradeIn       = "Trade-In"
	AdquisicionConsignacion  = "Consignacion"
	AdquisicionSubasta       = "Subasta"
	AdquisicionOtro          = "Otro"
)

// TiposAdquisicion en el orden en que se ofrecen en el formulario.
var TiposAdquisicion = []string{
	AdquisicionCompraDirecta, AdquisicionTradeIn, AdquisicionConsignacion,
	AdquisicionSubasta, AdquisicionOtro,
}

// Catalogo entrada simple id/nombre (color, transmisión, combustible, marca).
type Catalogo struct {
	ID     ID     `json:"id"`
	Nombre string `json:"nombre"`
}

// Modelo modelo de vehículo con su marca.
type Modelo struct {
	ID      ID       `json:"id"`
	MarcaID ID       `json:"marca_id,omitempty"`
	Nombre  string   `json:"nombre"`
	Marca   Catalogo `json:"marca"`
}

// Etiqueta "Marca Modelo".
func (m Modelo) Etiqueta() string {
	if m.Marca.Nombre == "" {
		return m.Nombre
	}
	return m.Marca.Nombre + " " + m.Nombre
}

// Adquisicion registro de compra/ingreso embebido en el vehículo.
type Adquisicion struct {
	ID                 ID              `json:"id"`
	VehiculoID         ID              `json:"vehiculo_id"`
	FechaAdquisicion   Fecha           `json:"fecha_adquisicion"`
	CostoAdquisicion   decimal.Decimal `json:"costo_adquisicion"`
	TipoAdquisicion    string          `json:"tipo_adquisicion"`
	ProveedorID        ID              `json:"proveedor_id"`
	ClienteTradeInID   ID              `json:"cliente_trade_in_id"`
	EmpleadoRegistraID ID              `json:"empleado_registra_id"`
	NotasAdquisicion   string          `json:"notas_adquisicion"`
}

// CaracteristicaVehiculo característica opcional seleccionada para un vehículo.
type CaracteristicaVehiculo struct {
	CaracteristicaID    ID     `json:"caracteristica_id"`
	ValorCaracteristica string `json:"valor_caracteristica"`
}

// Vehiculo unidad del inventario tal como la devuelve GET /vehicle.
type Vehiculo struct {
	ID                   ID                       `json:"id"`
	ModeloID             ID                       `json:"modelo_id"`
	ColorID              ID                       `json:"color_id"`
	TipoTransmisionID    ID                       `json:"tipo_transmision_id"`
	TipoCombustibleID    ID                       `json:"tipo_combustible_id"`
	Anio                 int                      `json:"anio"`
	VIN                  string                   `json:"vin"`
	NumeroMotor          *string                  `json:"numero_motor"`
	NumeroChasis         *string                  `json:"numero_chasis"`
	Kilometraje          *int                     `json:"kilometraje"`
	NumeroPuertas        *int                     `json:"numero_puertas"`
	CapacidadPasajeros   *int                     `json:"capacidad_pasajeros"`
	PrecioBase           decimal.Decimal          `json:"precio_base"`
	PrecioVentaSugerido  decimal.NullDecimal      `json:"precio_venta_sugerido"`
	DescripcionAdicional *string                  `json:"descripcion_adicional"`
	EstadoInventario     string                   `json:"estado_inventario"`
	FechaIngresoSistema  Fecha                    `json:"fecha_ingreso_sistema"`
	UbicacionFisica      *string                  `json:"ubicacion_fisica"`
	Modelo               Modelo                   `json:"modelo"`
	Color                Catalogo                 `json:"color"`
	TipoTransmision      Catalogo                 `json:"tipo_transmision"`
	TipoCombustible      Catalogo                 `json:"tipo_combustible"`
	Adquisicion          *Adquisicion             `json:"adquisicion"`
	Caracteristicas      []CaracteristicaVehiculo `json:"caracteristicas"`
}

// Key implementa store.Keyed.
func (v Vehiculo) Key() ID { return v.ID }

// ProveedorOpcion proveedor tal como se usa en el selector del formulario de vehículos.
type ProveedorOpcion struct {
	ID       ID       `json:"id"`
	Contacto Contacto `json:"contacto"`
}

// CaracteristicaOpcion característica opcional disponible.
type CaracteristicaOpcion struct {
	CaracteristicaID    ID     `json:"caracteristica_id"`
	ValorCaracteristica string `json:"valor_caracteristica"`
}
