package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/ports"
	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa Backend.
var _ ports.Backend = (*Client)(nil)

// maxBody límite de lectura de respuestas del backend.
const maxBody = 4 << 20

// Options construcción del cliente.
type Options struct {
	BaseURL string        // ej. http://localhost:5001/api/v1
	Timeout time.Duration // 0 = sin timeout propio (default del transporte)
	// Transport opcional; por defecto http.DefaultTransport.
	Transport http.RoundTripper
	Logger    *logger.Logger
}

// Client adaptador HTTP hacia la API REST de AutoGestión.
// Usa net/http de la librería estándar; la cookie de sesión vive en su propio cookiejar
// y el cliente nunca lee ni escribe su valor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger

	mu        sync.RWMutex
	listeners map[int]ports.AuthFailureListener
	nextID    int
}

// New construye el cliente con un cookiejar vacío (una sesión de backend por cliente).
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("apiclient: BaseURL vacío")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear cookiejar: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Jar:       jar,
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		log:       log,
		listeners: make(map[int]ports.AuthFailureListener),
	}, nil
}

// Subscribe registra un receptor de la señal de sesión invalidada. Devuelve la función para darlo de baja.
func (c *Client) Subscribe(l ports.AuthFailureListener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Do implementa ports.Backend.
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: serializar %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, 0)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("apiclient: %s %s cancelado: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend no disponible")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()
	observe(method, resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("apiclient: leer respuesta %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	apiErr := &APIError{
		Method:  method,
		Path:    path,
		Status:  resp.StatusCode,
		Message: dto.DecodeMessage(raw),
	}
	if isAuthFailure(resp.StatusCode) && !isCredentialEndpoint(path) {
		c.broadcastAuthFailure(resp.StatusCode)
	}
	return nil, apiErr
}

// Get, Post, Put y Delete atajos sobre Do.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) broadcastAuthFailure(status int) {
	c.mu.RLock()
	targets := make([]ports.AuthFailureListener, 0, len(c.listeners))
	for _, l := range c.listeners {
		targets = append(targets, l)
	}
	c.mu.RUnlock()

	authFailures.WithLabelValues(fmt.Sprint(status)).Inc()
	c.log.Warn().Int("status", status).Int("listeners", len(targets)).Msg("sesión invalidada por el backend")
	for _, l := range targets {
		l.OnAuthFailure(status)
	}
}

func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// isCredentialEndpoint login y registro responden 401/403 por credenciales malas, no por sesión perdida.
func isCredentialEndpoint(path string) bool {
	return strings.Contains(path, "/login") || strings.Contains(path, "/register")
}
