package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solve/internal/adapters/http"
	"svw.info/sudoku-solve/internal/infrastructure/history"
	"svw.info/sudoku-solve/internal/ports"
	"svw.info/sudoku-solve/internal/usecase"
	"svw.info/sudoku-solve/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCmd() *cobra.Command {
	var (
		addr        string
		solverKind  string
		historyPath string
		levelStr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the solver as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(levelStr)

			var hist ports.History
			if historyPath != "" {
				h, err := history.Open(historyPath)
				if err != nil {
					return err
				}
				defer h.Close()
				hist = h
			}
			uc := usecase.NewService(pickSolver(solverKind), validator.New(), hist)
			h := httpadapter.New(uc, logger)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", addr, "solver", solverKind)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&solverKind, "solver", "backtrack", "solver to use: backtrack|dlx")
	cmd.Flags().StringVar(&historyPath, "history", "", "SQLite database for solve history")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	return cmd
}
