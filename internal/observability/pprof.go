package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/config"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
)

// DebugServer exposes net/http/pprof on a listener separate from the API.
// A nil *DebugServer is valid and does nothing.
type DebugServer struct {
	srv    *http.Server
	logger *logging.Logger
	addr   string
}

func NewDebugServer(cfg config.Config, logger *logging.Logger) *DebugServer {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	for name, h := range map[string]http.HandlerFunc{
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
	} {
		mux.HandleFunc("GET /debug/pprof/"+name, h)
	}

	return &DebugServer{
		srv:    &http.Server{Addr: cfg.PprofAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		logger: logger,
	}
}

// Start binds the listener synchronously so a busy port fails startup,
// then serves in the background.
func (d *DebugServer) Start() error {
	if d == nil {
		return nil
	}
	ln, err := net.Listen("tcp", d.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen pprof %s: %w", d.srv.Addr, err)
	}
	d.addr = ln.Addr().String()
	d.logger.Info("pprof server starting", "addr", d.addr)
	go func() {
		if err := d.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.logger.Error("pprof server failed", "error", err)
		}
	}()
	return nil
}

// Addr is the bound address once Start has returned.
func (d *DebugServer) Addr() string {
	if d == nil {
		return ""
	}
	return d.addr
}

func (d *DebugServer) Shutdown(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if err := d.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown pprof server: %w", err)
	}
	d.logger.Info("pprof server stopped")
	return nil
}
