package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/engine"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/repository"
)

type advisor interface {
	Recommend(b board.Board, me board.Mark) (engine.Recommendation, bool)
}

type statsReader interface {
	GetByMatchup(ctx context.Context, subject, opponent string) (*entity.Statistics, error)
}

type moveResponse struct {
	Position board.Position `json:"position"`
	Name     string         `json:"name"`
	Score    float64        `json:"score"`
}

type statsResponse struct {
	Subject   string  `json:"subject"`
	Opponent  string  `json:"opponent"`
	Victories int     `json:"victories"`
	Defeats   int     `json:"defeats"`
	Draws     int     `json:"draws"`
	WinRate   float64 `json:"win_rate"`
	LossRate  float64 `json:"loss_rate"`
	DrawRate  float64 `json:"draw_rate"`
}

type handlers struct {
	logger *slog.Logger

	engine advisor
	stats  statsReader
}

// bestMove - GET /best-move?board=X.O......&mark=O
func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	b, err := board.Parse(r.URL.Query().Get("board"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	me, err := board.ParseMark(r.URL.Query().Get("mark"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	recommendation, ok := that.engine.Recommend(b, me)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{
		Position: recommendation.Position,
		Name:     recommendation.Position.String(),
		Score:    recommendation.Score,
	})
}

// statistics - GET /stats/{subject}/{opponent}
func (that *handlers) statistics(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "statistics")

	subject, opponent := chi.URLParam(r, "subject"), chi.URLParam(r, "opponent")

	stats, err := that.stats.GetByMatchup(r.Context(), subject, opponent)
	if errors.Is(err, repository.ErrStatsNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to read statistics", "subject", subject, "opponent", opponent, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Subject:   stats.Subject,
		Opponent:  stats.Opponent,
		Victories: stats.Victories,
		Defeats:   stats.Defeats,
		Draws:     stats.Draws,
		WinRate:   stats.WinRate(),
		LossRate:  stats.LossRate(),
		DrawRate:  stats.DrawRate(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
