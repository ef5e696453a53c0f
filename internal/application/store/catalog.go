package store

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/ports"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// optionsConcurrency peticiones simultáneas al cargar las opciones del formulario de vehículos.
const optionsConcurrency = 3

// VehicleOptions listas para los selectores del formulario de vehículos.
type VehicleOptions struct {
	Modelos         []entity.Modelo
	Colores         []entity.Catalogo
	Transmisiones   []entity.Catalogo
	Combustibles    []entity.Catalogo
	Proveedores     []entity.ProveedorOpcion
	Caracteristicas []entity.CaracteristicaOpcion
}

// CatalogState foto del catálogo. Cada lista es nil mientras no se haya cargado.
type CatalogState struct {
	Contactos        []entity.Contacto
	Puestos          []entity.Puesto
	Options          VehicleOptions
	IsLoadingOptions bool
	OptionsError     string
}

// Catalog listas de referencia (contactos, puestos, opciones de vehículos) usadas por los formularios.
type Catalog struct {
	backend  ports.Backend
	notifier ports.Notifier
	log      *logger.Logger

	mu       sync.RWMutex
	state    CatalogState
	detached bool
}

// NewCatalog construye el catálogo vacío.
func NewCatalog(backend ports.Backend, notifier ports.Notifier, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	if notifier == nil {
		notifier = discard{}
	}
	return &Catalog{backend: backend, notifier: notifier, log: log.Named("store.catalogo")}
}

// Snapshot copia superficial del estado (las listas se reemplazan, nunca se modifican en sitio).
func (c *Catalog) Snapshot() CatalogState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Detach descarta las respuestas posteriores.
func (c *Catalog) Detach() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()
}

// ClearErrors borra el error de opciones.
func (c *Catalog) ClearErrors() {
	c.mu.Lock()
	c.state.OptionsError = ""
	c.mu.Unlock()
}

// LoadContactos GET /contact.
func (c *Catalog) LoadContactos(ctx context.Context) {
	items, err := fetchData[[]entity.Contacto](ctx, c.backend, "/contact")
	c.apply(err, "Error al obtener contactos", func(s *CatalogState) { s.Contactos = items })
}

// LoadPuestos GET /position.
func (c *Catalog) LoadPuestos(ctx context.Context) {
	items, err := fetchData[[]entity.Puesto](ctx, c.backend, "/position")
	c.apply(err, "Error al obtener puestos", func(s *CatalogState) { s.Puestos = items })
}

// apply escribe el resultado de una lectura simple o notifica su fallo.
func (c *Catalog) apply(err error, fallback string, set func(*CatalogState)) {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	if err == nil {
		set(&c.state)
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Msg(fallback)
		c.notifier.Error(dto.MessageFrom(err, fallback))
	}
}

type optionLoader struct {
	path     string
	fallback string
	load     func(ctx context.Context) (func(*VehicleOptions), error)
}

func loader[T any](b ports.Backend, path, fallback string, set func(*VehicleOptions, T)) optionLoader {
	return optionLoader{
		path:     path,
		fallback: fallback,
		load: func(ctx context.Context) (func(*VehicleOptions), error) {
			v, err := fetchData[T](ctx, b, path)
			if err != nil {
				return nil, err
			}
			return func(o *VehicleOptions) { set(o, v) }, nil
		},
	}
}

// LoadFormOptions carga las seis listas del formulario de vehículos en paralelo.
// Una lista que falla no impide las demás; los fallos se juntan en OptionsError
// y se notifican una sola vez.
func (c *Catalog) LoadFormOptions(ctx context.Context) {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	c.state.IsLoadingOptions = true
	c.state.OptionsError = ""
	c.mu.Unlock()

	loaders := []optionLoader{
		loader(c.backend, "/test/modelo", "Error al obtener los modelos",
			func(o *VehicleOptions, v []entity.Modelo) { o.Modelos = v }),
		loader(c.backend, "/test/color", "Error al obtener los colores",
			func(o *VehicleOptions, v []entity.Catalogo) { o.Colores = v }),
		loader(c.backend, "/test/transmision", "Error al obtener los tipos de transmisión",
			func(o *VehicleOptions, v []entity.Catalogo) { o.Transmisiones = v }),
		loader(c.backend, "/test/combustible", "Error al obtener los tipos de combustible",
			func(o *VehicleOptions, v []entity.Catalogo) { o.Combustibles = v }),
		loader(c.backend, "/supplier", "Error al obtener los proveedores",
			func(o *VehicleOptions, v []entity.ProveedorOpcion) { o.Proveedores = v }),
		loader(c.backend, "/test/vehiculo-caracteristica", "Error al obtener las características opcionales",
			func(o *VehicleOptions, v []entity.CaracteristicaOpcion) { o.Caracteristicas = v }),
	}

	setters := make([]func(*VehicleOptions), len(loaders))
	failures := make([]string, len(loaders))

	var g errgroup.Group
	g.SetLimit(optionsConcurrency)
	for i, l := range loaders {
		i, l := i, l
		g.Go(func() error {
			set, err := l.load(ctx)
			if err != nil {
				c.log.Warn().Err(err).Str("path", l.path).Msg("opción no disponible")
				failures[i] = dto.MessageFrom(err, l.fallback)
				return nil
			}
			setters[i] = set
			return nil
		})
	}
	// Las tareas nunca devuelven error: el grupo solo acota la concurrencia.
	_ = g.Wait()

	var msgs []string
	for _, f := range failures {
		if f != "" {
			msgs = append(msgs, f)
		}
	}
	joined := strings.Join(msgs, ", ")

	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	opts := c.state.Options
	for _, set := range setters {
		if set != nil {
			set(&opts)
		}
	}
	c.state.Options = opts
	c.state.IsLoadingOptions = false
	c.state.OptionsError = joined
	c.mu.Unlock()

	if joined != "" {
		c.notifier.Error("Error al cargar algunas opciones: " + joined)
	}
}

func fetchData[T any](ctx context.Context, b ports.Backend, path string) (T, error) {
	raw, err := b.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return dto.DecodeData[T](raw)
}
