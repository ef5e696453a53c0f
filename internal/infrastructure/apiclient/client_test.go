package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/infrastructure/apiclient"
)

type recordingListener struct {
	mu       sync.Mutex
	statuses []int
}

func (l *recordingListener) OnAuthFailure(status int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statuses = append(l.statuses, status)
}

func (l *recordingListener) got() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.statuses...)
}

func newClient(t *testing.T, srv *httptest.Server) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(apiclient.Options{BaseURL: srv.URL + "/api/v1/"})
	require.NoError(t, err)
	return c
}

func TestDo_EnviaJSONYDevuelveCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/client", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "VIP", in["notas_cliente"])
		_, _ = w.Write([]byte(`{"data":[{"id":1}]}`))
	}))
	defer srv.Close()

	raw, err := newClient(t, srv).Post(context.Background(), "/client", map[string]any{"notas_cliente": "VIP"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":1}]}`, string(raw))
}

func TestDo_CookieDeSesionViajaAutomaticamente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "opaco", Path: "/", HttpOnly: true})
			_, _ = w.Write([]byte(`{"user":{"id":1}}`))
		case "/api/v1/auth/profile":
			ck, err := r.Cookie("token")
			if err != nil || ck.Value != "opaco" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"user":{"id":1}}`))
		}
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "/auth/profile")
	assert.NoError(t, err)
}

func TestDo_ErrorConMensajeDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"El contacto ya es cliente"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Post(context.Background(), "/client", map[string]int{"contacto_id": 1})
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode())
	assert.Equal(t, "El contacto ya es cliente", apiErr.ServerMessage())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDo_ErrorSinMensajeUsaFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Get(context.Background(), "/vehicle")
	require.Error(t, err)
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode())
	assert.Empty(t, apiErr.ServerMessage())
}

func TestDo_401y403NotificanAListeners(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := newClient(t, srv)
	a, b := &recordingListener{}, &recordingListener{}
	c.Subscribe(a)
	unsubscribeB := c.Subscribe(b)

	_, err := c.Get(context.Background(), "/employee")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	unsubscribeB()
	status = http.StatusForbidden
	_, err = c.Delete(context.Background(), "/client/3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Equal(t, []int{401, 403}, a.got())
	assert.Equal(t, []int{401}, b.got())
}

func TestDo_LoginYRegistroNoNotifican(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Credenciales inválidas"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv)
	l := &recordingListener{}
	c.Subscribe(l)

	_, err := c.Post(context.Background(), "/auth/login", nil)
	require.Error(t, err)
	_, err = c.Post(context.Background(), "/auth/register", nil)
	require.Error(t, err)

	assert.Empty(t, l.got())
}

func TestDo_OtrosErroresNoNotifican(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newClient(t, srv)
	l := &recordingListener{}
	c.Subscribe(l)

	_, err := c.Get(context.Background(), "/client/99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, l.got())
}

func TestDo_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newClient(t, srv)
	srv.Close()

	_, err := c.Get(context.Background(), "/client")
	assert.ErrorIs(t, err, domain.ErrUnreachable)
	var apiErr *apiclient.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestNew_SinBaseURL(t *testing.T) {
	_, err := apiclient.New(apiclient.Options{})
	assert.Error(t, err)
}
