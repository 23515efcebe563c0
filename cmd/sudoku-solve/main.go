package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/infrastructure/history"
	"svw.info/sudoku-solve/internal/parse"
	"svw.info/sudoku-solve/internal/ports"
	"svw.info/sudoku-solve/internal/render"
	"svw.info/sudoku-solve/internal/solver"
	"svw.info/sudoku-solve/internal/usecase"
	"svw.info/sudoku-solve/internal/validator"
)

// errNoSolution drives the "no solution" exit code; it is not printed as an
// error (an unsolvable puzzle is a normal outcome).
var errNoSolution = errors.New("no solution")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	switch {
	case err == nil:
	case errors.Is(err, errNoSolution):
		os.Exit(1)
	case errors.Is(err, domain.ErrMalformedInput), errors.Is(err, domain.ErrContradictoryGivens):
		fmt.Fprintln(os.Stderr, "invalid input:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(3)
	}
}

func newRootCmd() *cobra.Command {
	var (
		all         bool
		max         int
		solverKind  string
		historyPath string
		levelStr    string
	)
	cmd := &cobra.Command{
		Use:   "sudoku-solve [puzzle-file]",
		Short: "Solve 9x9 sudoku puzzles from text input",
		Long: "Reads an 81-digit puzzle (0 for blanks, whitespace ignored) from a file\n" +
			"or standard input and prints each solution found.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(levelStr)
			text, err := readPuzzle(cmd, args)
			if err != nil {
				return err
			}
			b, err := parse.Grid(text)
			if err != nil {
				return err
			}

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

			limit := max
			if all {
				limit = 0
			}
			out := cmd.OutOrStdout()
			n := 0
			st, err := uc.Enumerate(cmd.Context(), b, func(sol *domain.Board) bool {
				n++
				fmt.Fprintf(out, "solution %d:\n%s\n", n, render.Board(sol))
				return limit <= 0 || n < limit
			})
			if err != nil {
				return err
			}
			logger.Debug("search finished",
				"solutions", n,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Microsecond),
			)

			if hist != nil {
				rec := &domain.SolveRecord{
					ID:        uuid.NewString(),
					Puzzle:    render.Line(b),
					Solver:    solverKind,
					Solutions: n,
					Nodes:     st.Nodes,
					DurMillis: st.Duration.Milliseconds(),
					CreatedAt: time.Now().Unix(),
				}
				if err := uc.RecordSolve(cmd.Context(), rec); err != nil {
					logger.Warn("record solve history", "err", err)
				}
			}

			if n == 0 {
				// distinguish an interrupted search from a proven empty one
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				fmt.Fprintln(out, "no solution")
				return errNoSolution
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every solution")
	cmd.Flags().IntVar(&max, "max", 1, "stop after this many solutions (ignored with --all)")
	cmd.Flags().StringVar(&solverKind, "solver", "backtrack", "solver to use: backtrack|dlx")
	cmd.Flags().StringVar(&historyPath, "history", "", "append a solve record to this SQLite database")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.AddCommand(newServeCmd())
	return cmd
}

func readPuzzle(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		return solver.NewDLXSolver()
	default:
		return solver.NewBacktrackingSolver()
	}
}

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
