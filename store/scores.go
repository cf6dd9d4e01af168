package store

import (
	"encoding/json"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// Scores persists best score and leaderboard over a KV backend.
// Reads fall back to defaults and write failures are logged and dropped
type Scores struct {
	kv        KV
	statFails *atomic.Int64
}

var _ engine.ScoreStore = (*Scores)(nil)

// NewScores wraps kv; reg may be nil
func NewScores(kv KV, reg *status.Registry) *Scores {
	s := &Scores{kv: kv}
	if reg != nil {
		s.statFails = reg.Ints.Get(status.KeyStoreFails)
	}
	return s
}

// LoadBest returns the stored best score, 0 when missing or corrupt
func (s *Scores) LoadBest() int {
	raw, ok := s.read(constants.BestScoreKey)
	if !ok {
		return 0
	}
	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		s.fail(errors.Errorf("corrupt %s value %q", constants.BestScoreKey, raw))
		return 0
	}
	return best
}

func (s *Scores) SaveBest(best int) {
	s.write(constants.BestScoreKey, strconv.Itoa(best))
}

// LoadLeaderboard returns the stored scores, empty when missing or corrupt.
// Negative entries are dropped
func (s *Scores) LoadLeaderboard() []int {
	raw, ok := s.read(constants.LeaderboardKey)
	if !ok {
		return []int{}
	}

	var scores []int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		s.fail(errors.Wrapf(err, "corrupt %s", constants.LeaderboardKey))
		return []int{}
	}

	valid := scores[:0]
	for _, v := range scores {
		if v >= 0 {
			valid = append(valid, v)
		}
	}
	return valid
}

func (s *Scores) SaveLeaderboard(scores []int) {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		s.fail(errors.Wrap(err, "encode leaderboard"))
		return
	}
	s.write(constants.LeaderboardKey, string(data))
}

func (s *Scores) read(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.fail(errors.Wrapf(err, "load %s", key))
		return "", false
	}
	return raw, ok
}

func (s *Scores) write(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.fail(errors.Wrapf(err, "save %s", key))
	}
}

func (s *Scores) fail(err error) {
	if s.statFails != nil {
		s.statFails.Add(1)
	}
	log.Printf("store: %v", err)
}
