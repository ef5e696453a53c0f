package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/ports"
	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// Op operación de un contenedor de entidades.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Endpoints rutas del backend para una entidad. "{id}" se reemplaza por el id escapado.
// Una ruta vacía indica que el backend no ofrece esa operación.
type Endpoints struct {
	List   string
	Get    string
	Create string
	Update string
	Delete string
}

func (e Endpoints) path(op Op, id entity.ID) string {
	var p string
	switch op {
	case OpList:
		p = e.List
	case OpGet:
		p = e.Get
	case OpCreate:
		p = e.Create
	case OpUpdate:
		p = e.Update
	case OpDelete:
		p = e.Delete
	}
	return strings.ReplaceAll(p, "{id}", url.PathEscape(id.String()))
}

// Messages textos de notificación; los de error se usan solo si el backend no envía {message}.
type Messages struct {
	ListError   string
	GetError    string
	Created     string
	CreateError string
	Updated     string
	UpdateError string
	Deleted     string
	DeleteError string
}

// State foto de un contenedor. Items es nil hasta la primera respuesta exitosa.
type State[E any] struct {
	Items     []E
	IsLoading bool
	Error     string
}

// Loaded indica si ya hubo al menos una respuesta exitosa.
func (s State[E]) Loaded() bool { return s.Items != nil }

// Collection caché de una entidad del backend. Tras cada mutación exitosa los items
// pasan a ser exactamente la colección devuelta por el servidor.
//
// Las lecturas fallidas solo notifican; las mutaciones fallidas además dejan Error
// y devuelven el error para que el formulario siga abierto.
type Collection[E any] struct {
	name      string
	backend   ports.Backend
	notifier  ports.Notifier
	log       *logger.Logger
	endpoints Endpoints
	msgs      Messages

	mu       sync.RWMutex
	items    []E
	inFlight int
	err      string
	detached bool
}

// NewCollection construye un contenedor. notifier y log pueden ser nil.
func NewCollection[E any](name string, backend ports.Backend, notifier ports.Notifier, log *logger.Logger, endpoints Endpoints, msgs Messages) *Collection[E] {
	if log == nil {
		log = logger.Nop()
	}
	if notifier == nil {
		notifier = discard{}
	}
	return &Collection[E]{
		name:      name,
		backend:   backend,
		notifier:  notifier,
		log:       log.Named("store." + name),
		endpoints: endpoints,
		msgs:      msgs,
	}
}

// Name nombre de la entidad (clientes, empleados, ...).
func (c *Collection[E]) Name() string { return c.name }

// Supports indica si el backend ofrece la operación.
func (c *Collection[E]) Supports(op Op) bool {
	return c.endpoints.path(op, "") != ""
}

// Snapshot copia del estado actual.
func (c *Collection[E]) Snapshot() State[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var items []E
	if c.items != nil {
		items = make([]E, len(c.items))
		copy(items, c.items)
	}
	return State[E]{Items: items, IsLoading: c.inFlight > 0, Error: c.err}
}

// ClearError borra el error de la última mutación.
func (c *Collection[E]) ClearError() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Detach desconecta el contenedor: las respuestas posteriores se descartan.
func (c *Collection[E]) Detach() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()
}

func (c *Collection[E]) isDetached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.detached
}

// List trae la colección completa. Nunca falla hacia el llamador: un error se notifica
// y los items anteriores quedan como estaban.
func (c *Collection[E]) List(ctx context.Context) {
	if c.isDetached() {
		return
	}
	items, err := c.fetchList(ctx)
	if err != nil {
		if c.isDetached() {
			return
		}
		c.log.Error().Err(err).Msg("error al obtener la colección")
		c.notifier.Error(dto.MessageFrom(err, c.msgs.ListError))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.items = items
}

func (c *Collection[E]) fetchList(ctx context.Context) ([]E, error) {
	raw, err := c.backend.Do(ctx, http.MethodGet, c.endpoints.path(OpList, ""), nil)
	if err != nil {
		return nil, err
	}
	return dto.DecodeData[[]E](raw)
}

// GetByID trae un registro sin tocar la colección. Devuelve false si no se pudo obtener.
func (c *Collection[E]) GetByID(ctx context.Context, id entity.ID) (E, bool) {
	var zero E
	if !c.Supports(OpGet) {
		c.log.Warn().Str("id", id.String()).Msg("get por id no soportado")
		return zero, false
	}
	if c.isDetached() {
		return zero, false
	}
	raw, err := c.backend.Do(ctx, http.MethodGet, c.endpoints.path(OpGet, id), nil)
	if err == nil {
		var item E
		if item, err = dto.DecodeData[E](raw); err == nil {
			return item, true
		}
	}
	if !c.isDetached() {
		c.log.Error().Err(err).Str("id", id.String()).Msg("error al obtener registro")
		c.notifier.Error(dto.MessageFrom(err, c.msgs.GetError))
	}
	return zero, false
}

// Create envía el alta; body se serializa como JSON.
func (c *Collection[E]) Create(ctx context.Context, body any) error {
	return c.mutate(ctx, OpCreate, http.MethodPost, "", body, c.msgs.Created, c.msgs.CreateError)
}

// Update envía la modificación del registro id.
func (c *Collection[E]) Update(ctx context.Context, id entity.ID, body any) error {
	return c.mutate(ctx, OpUpdate, http.MethodPut, id, body, c.msgs.Updated, c.msgs.UpdateError)
}

// Delete elimina el registro id; la colección resultante es la que devuelve el servidor.
func (c *Collection[E]) Delete(ctx context.Context, id entity.ID) error {
	return c.mutate(ctx, OpDelete, http.MethodDelete, id, nil, c.msgs.Deleted, c.msgs.DeleteError)
}

func (c *Collection[E]) mutate(ctx context.Context, op Op, method string, id entity.ID, body any, okMsg, failMsg string) error {
	if !c.Supports(op) {
		return fmt.Errorf("%s %s: %w", c.name, op, domain.ErrUnsupported)
	}

	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return domain.ErrDetached
	}
	c.inFlight++
	c.err = ""
	c.mu.Unlock()

	items, err := c.send(ctx, method, c.endpoints.path(op, id), body)

	c.mu.Lock()
	c.inFlight--
	if c.detached {
		c.mu.Unlock()
		return domain.ErrDetached
	}
	if err != nil {
		msg := dto.MessageFrom(err, failMsg)
		c.err = msg
		c.mu.Unlock()
		c.log.Error().Err(err).Str("op", string(op)).Str("id", id.String()).Msg("mutación rechazada")
		c.notifier.Error(msg)
		return err
	}
	// La última respuesta en llegar gana.
	c.items = items
	c.mu.Unlock()

	c.log.Info().Str("op", string(op)).Str("id", id.String()).Int("items", len(items)).Msg("colección actualizada")
	c.notifier.Success(okMsg)
	return nil
}

func (c *Collection[E]) send(ctx context.Context, method, path string, body any) ([]E, error) {
	raw, err := c.backend.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return dto.DecodeData[[]E](raw)
}

type discard struct{}

func (discard) Success(string) {}
func (discard) Error(string)   {}
