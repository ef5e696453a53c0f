package workspace

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/autogestion/pkg/logger"
)

var activeWorkspaces = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "autogestion",
	Name:      "workspaces_active",
	Help:      "Espacios de trabajo (navegadores) vivos en memoria.",
})

// RegistryConfig expiración de los espacios de trabajo inactivos.
type RegistryConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Registry espacios de trabajo vivos, indexados por el UUID de la cookie del navegador.
// Cada acceso renueva el TTL; al expirar o eliminarse, el espacio se cierra.
type Registry struct {
	opts  Options
	cfg   RegistryConfig
	cache *cache.Cache
	log   *logger.Logger
}

// NewRegistry crea el registro vacío.
func NewRegistry(opts Options, cfg RegistryConfig, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = cfg.TTL / 2
	}
	r := &Registry{
		opts:  opts,
		cfg:   cfg,
		cache: cache.New(cfg.TTL, cfg.CleanupInterval),
		log:   log,
	}
	r.cache.OnEvicted(func(id string, v interface{}) {
		if w, ok := v.(*Workspace); ok {
			w.Close()
			if w.evicted.CompareAndSwap(false, true) {
				activeWorkspaces.Dec()
				r.log.Info().Str("workspace", id).Msg("espacio de trabajo liberado")
			}
		}
	})
	return r
}

// Create arma un espacio nuevo, lo registra y lanza la verificación de sesión.
func (r *Registry) Create() (*Workspace, error) {
	id := uuid.NewString()
	w, err := New(id, r.opts, r.log)
	if err != nil {
		return nil, err
	}
	r.cache.Set(id, w, cache.DefaultExpiration)
	activeWorkspaces.Inc()
	w.Start()
	r.log.Debug().Str("workspace", id).Msg("espacio de trabajo creado")
	return w, nil
}

// Get devuelve el espacio y renueva su TTL. Un espacio ya cerrado nunca se
// devuelve: se descarta del registro y el navegador recibe uno nuevo.
func (r *Registry) Get(id string) (*Workspace, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	w := v.(*Workspace)
	if w.Closed() {
		r.cache.Delete(id)
		return nil, false
	}
	// Set sobre una clave existente no dispara OnEvicted, pero si el janitor la
	// barrió entre Get y Set reinserta un espacio que está por cerrarse.
	r.cache.Set(id, w, cache.DefaultExpiration)
	if w.Closed() {
		r.cache.Delete(id)
		return nil, false
	}
	return w, true
}

// Remove cierra y elimina el espacio (no-op si no existe).
func (r *Registry) Remove(id string) {
	r.cache.Delete(id)
}

// Len espacios vivos (incluye expirados aún no barridos).
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

// Flush cierra todos los espacios; se usa al apagar el servidor.
func (r *Registry) Flush() {
	for id := range r.cache.Items() {
		r.cache.Delete(id)
	}
}
