package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/ports"
	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// Phase etapa del ciclo de vida de la sesión.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseChecking      Phase = "checking"
	PhaseAuthenticated Phase = "authenticated"
	PhaseAnonymous     Phase = "anonymous"
)

// Endpoints de autenticación del backend.
const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathLogout   = "/auth/logout"
	pathProfile  = "/auth/profile"
)

const (
	msgLoginFailed    = "Error al iniciar sesión"
	msgRegisterFailed = "Error al registrarse"
)

// State foto del estado de sesión. Mientras IsLoading sea true, IsAuthenticated no es confiable.
type State struct {
	Phase           Phase            `json:"phase"`
	Identity        *entity.Identity `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	IsLoading       bool             `json:"isLoading"`
	Error           string           `json:"error,omitempty"`
}

// HasRole ver Session.HasRole; evalúa sobre esta foto.
func (s State) HasRole(required ...string) bool {
	return hasRole(s.Identity, required)
}

// Session contenedor de la identidad autenticada de un espacio de trabajo.
// Implementa ports.AuthFailureListener para colapsar el estado ante un 401/403.
type Session struct {
	backend ports.Backend
	log     *logger.Logger

	mu    sync.RWMutex
	state State
	// epoch se incrementa en cada invalidación; una verificación o refresco iniciado
	// en una época anterior descarta su resultado.
	epoch    uint64
	detached bool
}

var _ ports.AuthFailureListener = (*Session)(nil)

// New crea la sesión en estado uninitialized (IsLoading = true).
func New(backend ports.Backend, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		backend: backend,
		log:     log.Named("session"),
		state:   State{Phase: PhaseUninitialized, IsLoading: true},
	}
}

// Snapshot copia del estado actual.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.state
	out.Identity = s.state.Identity.Clone()
	return out
}

// CheckSession consulta "quién soy" al backend. Cualquier fallo deja la sesión anónima sin error visible.
func (s *Session) CheckSession(ctx context.Context) {
	s.mu.Lock()
	if s.detached {
		s.mu.Unlock()
		return
	}
	epoch := s.epoch
	s.state = State{Phase: PhaseChecking, IsLoading: true}
	s.mu.Unlock()

	identity, err := s.fetchProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached || s.epoch != epoch {
		s.log.Debug().Msg("verificación de sesión descartada")
		return
	}
	if err != nil {
		s.log.Debug().Err(err).Msg("sin sesión activa")
		s.state = anonymous()
		return
	}
	s.state = authenticated(identity)
	s.log.Info().Str("email", identity.Email).Msg("usuario autenticado")
}

// Login inicia sesión. En caso de fallo deja la sesión anónima, registra el error y lo devuelve.
func (s *Session) Login(ctx context.Context, creds dto.LoginRequest) error {
	if !s.begin() {
		return domain.ErrDetached
	}

	identity, err := s.login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return domain.ErrDetached
	}
	if err != nil {
		s.state = anonymous()
		s.state.Error = dto.MessageFrom(err, msgLoginFailed)
		s.log.Warn().Err(err).Str("email", creds.Email).Msg("inicio de sesión rechazado")
		return err
	}
	s.state = authenticated(identity)
	s.log.Info().Str("email", identity.Email).Msg("sesión iniciada")
	return nil
}

// Register crea la cuenta y luego inicia sesión con las mismas credenciales.
// Un fallo en cualquiera de los dos pasos se reporta como un único error.
func (s *Session) Register(ctx context.Context, data dto.RegisterRequest) error {
	if !s.begin() {
		return domain.ErrDetached
	}

	identity, err := s.register(ctx, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return domain.ErrDetached
	}
	if err != nil {
		s.state = anonymous()
		s.state.Error = dto.MessageFrom(err, msgRegisterFailed)
		s.log.Warn().Err(err).Str("email", data.Email).Msg("registro rechazado")
		return err
	}
	s.state = authenticated(identity)
	s.log.Info().Str("email", identity.Email).Msg("cuenta registrada")
	return nil
}

func (s *Session) register(ctx context.Context, data dto.RegisterRequest) (*entity.Identity, error) {
	if _, err := s.backend.Do(ctx, http.MethodPost, pathRegister, data); err != nil {
		return nil, err
	}
	return s.login(ctx, dto.LoginRequest{Email: data.Email, Password: data.Password})
}

func (s *Session) login(ctx context.Context, creds dto.LoginRequest) (*entity.Identity, error) {
	raw, err := s.backend.Do(ctx, http.MethodPost, pathLogin, creds)
	if err != nil {
		return nil, err
	}
	return dto.DecodeIdentity(raw)
}

// Refresh vuelve a pedir la identidad si hay sesión. Los fallos solo se registran:
// la revocación de la sesión llega por OnAuthFailure, no por aquí.
func (s *Session) Refresh(ctx context.Context) {
	s.mu.RLock()
	ok := s.state.IsAuthenticated && !s.detached
	epoch := s.epoch
	s.mu.RUnlock()
	if !ok {
		return
	}

	identity, err := s.fetchProfile(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo actualizar la información del usuario")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached || s.epoch != epoch || !s.state.IsAuthenticated {
		return
	}
	s.state.Identity = identity
	s.state.Error = ""
}

// Logout cierra la sesión en el backend (best effort) y siempre limpia el estado local.
func (s *Session) Logout(ctx context.Context) {
	defer s.invalidate()

	if _, err := s.backend.Do(ctx, http.MethodPost, pathLogout, nil); err != nil {
		s.log.Warn().Err(err).Msg("error al cerrar sesión en el servidor")
	}
}

// OnAuthFailure colapsa la sesión a anónima. Es idempotente.
func (s *Session) OnAuthFailure(status int) {
	s.log.Info().Int("status", status).Msg("sesión invalidada")
	s.invalidate()
}

// HasRole true si hay identidad y alguno de sus roles coincide con alguno de required.
// Un conjunto vacío nunca coincide.
func (s *Session) HasRole(required ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasRole(s.state.Identity, required)
}

// ClearError borra el error reportable.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// Detach desconecta la sesión: los resultados que lleguen después se descartan.
func (s *Session) Detach() {
	s.mu.Lock()
	s.detached = true
	s.epoch++
	s.mu.Unlock()
}

func (s *Session) fetchProfile(ctx context.Context) (*entity.Identity, error) {
	raw, err := s.backend.Do(ctx, http.MethodGet, pathProfile, nil)
	if err != nil {
		return nil, err
	}
	return dto.DecodeIdentity(raw)
}

// begin marca una operación de credenciales en curso.
func (s *Session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return false
	}
	s.epoch++
	s.state.IsLoading = true
	s.state.Error = ""
	return true
}

func (s *Session) invalidate() {
	s.mu.Lock()
	s.epoch++
	s.state = anonymous()
	s.mu.Unlock()
}

func anonymous() State {
	return State{Phase: PhaseAnonymous}
}

func authenticated(identity *entity.Identity) State {
	return State{Phase: PhaseAuthenticated, Identity: identity, IsAuthenticated: true}
}
