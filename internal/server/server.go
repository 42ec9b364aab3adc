package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"jot/internal/logging"
	"jot/internal/store"
)

type Server struct {
	addr    string
	version string
	notes   store.NoteStore
	logger  logging.Logger
	server  *http.Server
}

func New(addr, version string, notes store.NoteStore, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{
		addr:    addr,
		version: version,
		notes:   notes,
		logger:  logger,
	}
}

// Run serves the notes API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	api := &API{
		Version: s.version,
		Notes:   s.notes,
		Logger:  s.logger,
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", logging.F("addr", "http://"+s.addr))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
