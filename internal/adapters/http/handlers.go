package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/render"
	"svw.info/sudoku-solve/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, Log: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/history", h.handleHistory)
}

// ---- Solve ----

type solveReq struct {
	Puzzle string `json:"puzzle"`        // 81 digits, 0 for blanks; whitespace ignored
	Max    int    `json:"max,omitempty"` // 0 = all solutions
}

type solveResp struct {
	Solutions  [][9][9]uint8 `json:"solutions,omitempty"`
	Count      int           `json:"count"`
	Nodes      int           `json:"nodes,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	max := req.Max
	if max == 0 {
		max = 1
	}
	if max < 0 {
		max = 0 // enumerate all
	}
	puzzle, sols, st, err := h.UC.SolveText(r.Context(), req.Puzzle, max)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrMalformedInput) || errors.Is(err, domain.ErrContradictoryGivens) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
		return
	}
	if h.UC.History != nil {
		rec := &domain.SolveRecord{
			ID:        uuid.NewString(),
			Puzzle:    render.Line(puzzle),
			Solver:    "api",
			Solutions: len(sols),
			Nodes:     st.Nodes,
			DurMillis: st.Duration.Milliseconds(),
			CreatedAt: time.Now().Unix(),
		}
		if err := h.UC.RecordSolve(r.Context(), rec); err != nil {
			h.Log.Warn("record solve history", "err", err)
		}
	}
	resp := solveResp{
		Count:      len(sols),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	}
	for _, sol := range sols {
		resp.Solutions = append(resp.Solutions, sol.Values)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- History ----

type historyResp struct {
	Solves []domain.SolveRecord `json:"solves"`
	Error  string               `json:"error,omitempty"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := h.UC.ListSolves(r.Context(), limit)
	if err != nil {
		w.WriteHeader(http.StatusNotImplemented)
		_ = json.NewEncoder(w).Encode(historyResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(historyResp{Solves: recs})
}
