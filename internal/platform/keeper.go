// Package platform holds pieces shared by the terminal and window frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Recorder persists finished rounds. *storage.Store implements it.
type Recorder interface {
	SaveRound(r storage.Round) (int64, error)
}

// ScoreKeeper watches step results and records each finished round once.
// A nil Recorder disables persistence; the best score is still tracked.
type ScoreKeeper struct {
	rec    Recorder
	logger *log.Logger
	gameID string
	best   int
	rounds int
}

// NewScoreKeeper creates a keeper. best seeds the best-score display,
// usually from the store's high score.
func NewScoreKeeper(rec Recorder, logger *log.Logger, gameID string, best int) *ScoreKeeper {
	return &ScoreKeeper{
		rec:    rec,
		logger: logger.With("game", gameID),
		gameID: gameID,
		best:   best,
	}
}

// Observe inspects one step result.
func (k *ScoreKeeper) Observe(res core.StepResult) {
	if res.Restarted {
		k.logger.Debug("round started", "round", k.rounds+1)
		return
	}
	if !res.Ended {
		return
	}

	k.rounds++
	score := res.State.Score
	k.logger.Info("round over", "round", k.rounds, "score", score, "ticks", res.State.Tick, "reason", res.Reason)

	if score > k.best {
		k.best = score
	}
	if k.rec == nil || score == 0 {
		return
	}

	round := storage.Round{
		GameID: k.gameID,
		Score:  score,
		Ticks:  res.State.Tick,
		Reason: res.Reason,
	}
	if _, err := k.rec.SaveRound(round); err != nil {
		// Best-effort save, game continues regardless
		k.logger.Warn("could not save score", "error", err)
	}
}

// Best returns the best score seen, including the seed value.
func (k *ScoreKeeper) Best() int {
	return k.best
}

// Rounds returns how many rounds have finished.
func (k *ScoreKeeper) Rounds() int {
	return k.rounds
}
