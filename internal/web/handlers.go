package web

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/twophase"
)

type solveRequest struct {
	Scramble string `json:"scramble"`
	MaxMoves uint8  `json:"max_moves"`
	TimeoutMs int64 `json:"timeout_ms"`
}

type solveResponse struct {
	Solution  string `json:"solution"`
	MoveCount int    `json:"move_count"`
	Phase1    int    `json:"phase1_moves"`
	Phase2    int    `json:"phase2_moves"`
	DurationMs int64 `json:"duration_ms"`
}

type scrambleRequest struct {
	Category string `json:"category"`
	Seed     int64  `json:"seed"`
}

type scrambleResponse struct {
	Scramble string `json:"scramble"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(indexHTML))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state := cube.Solved.ApplyMoves(moves)

	maxLength := req.MaxMoves
	if maxLength == 0 {
		maxLength = 23
	}
	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	solver := twophase.NewSolver(s.table, maxLength, timeout)
	start := time.Now()
	solution := solver.Solve(state)
	elapsed := time.Since(start)

	if solution == nil {
		writeError(w, http.StatusUnprocessableEntity, errNoSolutionWithinBound)
		return
	}

	moveStr := solution.String()
	if _, err := s.history.Record(req.Scramble, moveStr, solution.Len(), elapsed); err != nil {
		s.log.WithError(err).Warn("web: failed to record solve history")
	}

	writeJSON(w, http.StatusOK, solveResponse{
		Solution:   moveStr,
		MoveCount:  solution.Len(),
		Phase1:     len(solution.Phase1),
		Phase2:     len(solution.Phase2),
		DurationMs: elapsed.Milliseconds(),
	})
}

var scrambleCategoriesByName = map[string]twophase.ScrambleCategory{
	"":          twophase.CategoryRandom,
	"random":    twophase.CategoryRandom,
	"cross":     twophase.CategoryCrossSolved,
	"f2l":       twophase.CategoryF2LSolved,
	"oll":       twophase.CategoryOLLSolved,
	"oll-cross": twophase.CategoryOLLCrossSolved,
	"corners":   twophase.CategoryCornersSolved,
	"edges":     twophase.CategoryEdgesSolved,
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req scrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	category, ok := scrambleCategoriesByName[req.Category]
	if !ok {
		writeError(w, http.StatusBadRequest, errUnknownCategory)
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves, err := twophase.GenerateScramble(s.table, category, rng, 25)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, scrambleResponse{Scramble: cube.MovesString(moves)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.Recent(50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
