package workspace

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/autogestion/internal/application/notify"
	"github.com/jhoicas/autogestion/internal/application/session"
	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/internal/infrastructure/apiclient"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// Options construcción de un espacio de trabajo.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Transport opcional para el cliente HTTP (tests).
	Transport http.RoundTripper
}

// Workspace estado de cliente de un navegador: su propia sesión de backend (cookiejar),
// la sesión, los contenedores de entidades, el catálogo y la cola de avisos.
type Workspace struct {
	ID      string
	Client  *apiclient.Client
	Session *session.Session
	Flash   *notify.Flash

	Clientes    *store.Collection[entity.Cliente]
	Empleados   *store.Collection[entity.Empleado]
	Proveedores *store.Collection[entity.Proveedor]
	Vehiculos   *store.Collection[entity.Vehiculo]
	Usuarios    *store.Collection[entity.Usuario]
	Catalog     *store.Catalog

	log         *logger.Logger
	unsubscribe func()
	ready       chan struct{}
	startOnce   sync.Once
	closeOnce   sync.Once
	closed      atomic.Bool
	evicted     atomic.Bool // el registro ya descontó este espacio
}

// New arma el espacio de trabajo y suscribe la sesión a las fallas de autenticación del cliente.
// No consulta al backend hasta Start.
func New(id string, opts Options, log *logger.Logger) (*Workspace, error) {
	if log == nil {
		log = logger.Nop()
	}
	client, err := apiclient.New(apiclient.Options{
		BaseURL:   opts.BaseURL,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	flash := notify.NewFlash()
	sess := session.New(client, log)
	w := &Workspace{
		ID:          id,
		Client:      client,
		Session:     sess,
		Flash:       flash,
		Clientes:    store.Clientes(client, flash, log),
		Empleados:   store.Empleados(client, flash, log),
		Proveedores: store.Proveedores(client, flash, log),
		Vehiculos:   store.Vehiculos(client, flash, log),
		Usuarios:    store.Usuarios(client, flash, log),
		Catalog:     store.NewCatalog(client, flash, log),
		log:         log.Named("workspace"),
		ready:       make(chan struct{}),
	}
	w.unsubscribe = client.Subscribe(sess)
	return w, nil
}

// Start lanza la verificación inicial de sesión en segundo plano. Solo la primera llamada tiene efecto.
func (w *Workspace) Start() {
	w.startOnce.Do(func() {
		go func() {
			defer close(w.ready)
			w.Session.CheckSession(context.Background())
		}()
	})
}

// Ready se cierra cuando termina la verificación inicial.
func (w *Workspace) Ready() <-chan struct{} {
	return w.ready
}

// Close desconecta todos los contenedores: las respuestas en vuelo se descartan.
func (w *Workspace) Close() {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		w.unsubscribe()
		w.Session.Detach()
		w.Clientes.Detach()
		w.Empleados.Detach()
		w.Proveedores.Detach()
		w.Vehiculos.Detach()
		w.Usuarios.Detach()
		w.Catalog.Detach()
		w.log.Debug().Str("workspace", w.ID).Msg("espacio de trabajo cerrado")
	})
}

// Closed indica si Close ya se ejecutó.
func (w *Workspace) Closed() bool {
	return w.closed.Load()
}
