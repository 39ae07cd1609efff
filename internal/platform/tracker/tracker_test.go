package tracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

type memSaver struct {
	records []storage.MatchRecord
	err     error
}

func (m *memSaver) SaveMatch(rec storage.MatchRecord) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, rec)
	return int64(len(m.records)), nil
}

func TestFinishSavesOnce(t *testing.T) {
	saver := &memSaver{}
	tr := New(saver, nil, "window")

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tr.now = func() time.Time { return clock }
	tr.Start(7)
	clock = clock.Add(90 * time.Second)

	res := pong.MatchResult{PlayerScore: 5, AIScore: 3, Winner: pong.SidePlayer, Ticks: 5400, Hits: 30, LongestRally: 8}
	if !tr.Finish(res, storage.EndCompleted) {
		t.Fatal("expected the match to be saved")
	}
	if tr.Finish(res, storage.EndQuit) {
		t.Error("a match must only be saved once")
	}

	if len(saver.records) != 1 {
		t.Fatalf("got %d records", len(saver.records))
	}
	rec := saver.records[0]
	expected := storage.MatchRecord{
		MatchID:      tr.MatchID(),
		Host:         "window",
		PlayerScore:  5,
		AIScore:      3,
		Winner:       "player",
		EndReason:    storage.EndCompleted,
		Ticks:        5400,
		Hits:         30,
		LongestRally: 8,
		Duration:     90 * time.Second,
	}
	if rec != expected {
		t.Errorf("record = %+v, expected %+v", rec, expected)
	}
}

func TestFinishSkipsScoreless(t *testing.T) {
	saver := &memSaver{}
	tr := New(saver, nil, "terminal")
	tr.Start(1)

	if tr.Finish(pong.MatchResult{Ticks: 100}, storage.EndQuit) {
		t.Error("scoreless match should not be saved")
	}
	if len(saver.records) != 0 {
		t.Errorf("got %d records", len(saver.records))
	}
}

func TestFinishBeforeStart(t *testing.T) {
	saver := &memSaver{}
	tr := New(saver, nil, "terminal")

	if tr.Finish(pong.MatchResult{PlayerScore: 1}, storage.EndQuit) {
		t.Error("nothing to save before Start")
	}
}

func TestStartResets(t *testing.T) {
	saver := &memSaver{}
	tr := New(saver, nil, "ssh")

	tr.Start(1)
	first := tr.MatchID()
	tr.Finish(pong.MatchResult{AIScore: 1}, storage.EndQuit)

	tr.Start(2)
	if tr.MatchID() == first {
		t.Error("Start should assign a new match id")
	}
	if !tr.Finish(pong.MatchResult{AIScore: 2}, storage.EndQuit) {
		t.Error("second match should be saved")
	}
	if len(saver.records) != 2 {
		t.Errorf("got %d records, expected 2", len(saver.records))
	}
}

func TestFinishSaveError(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	tr := New(saver, nil, "terminal")
	tr.Start(1)

	if tr.Finish(pong.MatchResult{PlayerScore: 1}, storage.EndQuit) {
		t.Error("failed save must report false")
	}
}

func TestObserveLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	tr := New(nil, logger, "terminal")
	tr.Start(1)
	buf.Reset()

	tests := []struct {
		name string
		ev   pong.StepEvents
		want []string
	}{
		{"quiet tick", pong.StepEvents{}, nil},
		{"wall bounce only", pong.StepEvents{WallBounce: true}, nil},
		{"player hit", pong.StepEvents{Hit: pong.SidePlayer}, []string{"paddle hit", "side=player", "hits=4"}},
		{"cpu point", pong.StepEvents{Scored: pong.SideAI}, []string{"point", "side=cpu", "score=1-2"}},
	}

	res := pong.MatchResult{PlayerScore: 1, AIScore: 2, Hits: 4}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tr.Observe(tc.ev, res)
			out := buf.String()
			if tc.want == nil && out != "" {
				t.Errorf("expected no log output, got %q", out)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("log %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestObserveSilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	tr := New(nil, log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}), "terminal")
	tr.Start(1)
	buf.Reset()

	tr.Observe(pong.StepEvents{Hit: pong.SideAI, Scored: pong.SidePlayer}, pong.MatchResult{PlayerScore: 1})
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
