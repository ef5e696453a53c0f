package notify

import (
	"sync"

	"github.com/jhoicas/autogestion/internal/application/ports"
)

// Level severidad del mensaje.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message mensaje transitorio para la próxima página renderizada.
type Message struct {
	Level   Level
	Message string
}

// maxPending evita que un espacio de trabajo abandonado acumule mensajes sin fin.
const maxPending = 20

// Flash cola de notificaciones de un espacio de trabajo.
type Flash struct {
	mu      sync.Mutex
	pending []Message
}

var _ ports.Notifier = (*Flash)(nil)

// NewFlash crea una cola vacía.
func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Success(msg string) { f.push(LevelSuccess, msg) }
func (f *Flash) Error(msg string)   { f.push(LevelError, msg) }

func (f *Flash) push(level Level, msg string) {
	if msg == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, Message{Level: level, Message: msg})
	if len(f.pending) > maxPending {
		f.pending = f.pending[len(f.pending)-maxPending:]
	}
}

// Drain devuelve los mensajes pendientes en orden de llegada y vacía la cola.
func (f *Flash) Drain() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}

// Len mensajes pendientes.
func (f *Flash) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
