package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome del intento de login.
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeInvalidCredentials Outcome = "invalid_credentials"
	OutcomeInactiveAccount    Outcome = "inactive_account"
	OutcomeError              Outcome = "error"
)

// Entry es una línea del log de acceso.
type Entry struct {
	At      time.Time
	Correo  string
	Outcome Outcome
	IP      string
	Detail  string
}

type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// WriterRecorder escribe una línea JSON por intento (append-only).
type WriterRecorder struct {
	mu sync.Mutex
	zl zerolog.Logger
}

func NewWriterRecorder(w io.Writer) *WriterRecorder {
	if w == nil {
		w = os.Stdout
	}
	return &WriterRecorder{
		zl: zerolog.New(w).With().Str("stream", "access").Logger(),
	}
}

// OpenFile abre (o crea) path en modo append. El caller cierra el archivo.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("audit: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	return f, nil
}

func (r *WriterRecorder) Record(_ context.Context, e Entry) {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev := r.zl.Log().
		Str("id", uuid.NewString()).
		Time("ts", at.UTC()).
		Str("correo", e.Correo).
		Str("outcome", string(e.Outcome))
	if e.IP != "" {
		ev = ev.Str("ip", e.IP)
	}
	if e.Detail != "" {
		ev = ev.Str("detail", e.Detail)
	}
	ev.Send()
}

// Nop descarta entradas.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}

type ipKey struct{}

// WithIP guarda la IP de origen del request para que el servicio la audite.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

func IPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(ipKey{}).(string)
	return ip
}
