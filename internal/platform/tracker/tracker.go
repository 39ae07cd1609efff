// Package tracker records finished matches for the frame drivers. It owns
// match ids and timing so that every host saves history the same way.
package tracker

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Saver persists match records. *storage.Store satisfies it.
type Saver interface {
	SaveMatch(rec storage.MatchRecord) (int64, error)
}

// Tracker follows one match at a time for a host.
type Tracker struct {
	saver   Saver
	logger  *log.Logger
	host    string
	now     func() time.Time
	matchID string
	started time.Time
	saved   bool
}

// New creates a tracker. A nil saver only logs; a nil logger discards.
func New(saver Saver, logger *log.Logger, host string) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		saver:  saver,
		logger: logger,
		host:   host,
		now:    time.Now,
	}
}

// Start begins tracking a new match.
func (t *Tracker) Start(seed int64) {
	t.matchID = uuid.NewString()
	t.started = t.now()
	t.saved = false
	t.logger.Info("match started", "match", t.matchID, "host", t.host, "seed", seed)
}

// MatchID returns the id of the current match.
func (t *Tracker) MatchID() string {
	return t.matchID
}

// Observe logs what happened during the last tick at debug level.
func (t *Tracker) Observe(ev pong.StepEvents, res pong.MatchResult) {
	if ev.Hit != pong.SideNone {
		t.logger.Debug("paddle hit", "match", t.matchID, "side", ev.Hit, "hits", res.Hits)
	}
	if ev.Scored != pong.SideNone {
		t.logger.Debug("point", "match", t.matchID, "side", ev.Scored,
			"score", fmt.Sprintf("%d-%d", res.PlayerScore, res.AIScore))
	}
}

// Finish records the current match once. Scoreless matches are dropped.
// Reports whether a record was written.
func (t *Tracker) Finish(res pong.MatchResult, reason string) bool {
	if t.saved || t.matchID == "" {
		return false
	}
	t.saved = true

	if res.PlayerScore == 0 && res.AIScore == 0 {
		t.logger.Debug("scoreless match not saved", "match", t.matchID)
		return false
	}

	rec := Record(res, t.matchID, t.host, reason, t.now().Sub(t.started))
	if t.saver == nil {
		t.logger.Info("match finished", "match", t.matchID, "winner", rec.Winner,
			"score", fmt.Sprintf("%d-%d", rec.PlayerScore, rec.AIScore), "reason", reason)
		return false
	}
	if _, err := t.saver.SaveMatch(rec); err != nil {
		t.logger.Error("could not save match", "match", t.matchID, "error", err)
		return false
	}
	t.logger.Info("match saved", "match", t.matchID, "winner", rec.Winner,
		"score", fmt.Sprintf("%d-%d", rec.PlayerScore, rec.AIScore), "reason", reason)
	return true
}

// Record converts a game result to a history row.
func Record(res pong.MatchResult, matchID, host, reason string, d time.Duration) storage.MatchRecord {
	return storage.MatchRecord{
		MatchID:      matchID,
		Host:         host,
		PlayerScore:  res.PlayerScore,
		AIScore:      res.AIScore,
		Winner:       res.Winner.String(),
		EndReason:    reason,
		Ticks:        int64(res.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		Hits:         res.Hits,
		LongestRally: res.LongestRally,
		Duration:     d,
	}
}
