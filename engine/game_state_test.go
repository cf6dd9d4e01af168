package engine

import (
	"reflect"
	"testing"
)

func TestInsertScoreKeepsTopFiveDescending(t *testing.T) {
	board := []int{40, 30, 20, 10, 5}

	got := InsertScore(board, 25, 5)
	want := []int{40, 30, 25, 20, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Input untouched
	if !reflect.DeepEqual(board, []int{40, 30, 20, 10, 5}) {
		t.Errorf("InsertScore modified its input: %v", board)
	}

	got = InsertScore(board, 1, 5)
	if !reflect.DeepEqual(got, board) {
		t.Errorf("Score below the board should be dropped, got %v", got)
	}
}

func TestInsertScoreShortBoard(t *testing.T) {
	got := InsertScore(nil, 7, 5)
	if !reflect.DeepEqual(got, []int{7}) {
		t.Errorf("Expected [7], got %v", got)
	}

	got = InsertScore([]int{3}, 9, 5)
	if !reflect.DeepEqual(got, []int{9, 3}) {
		t.Errorf("Expected [9 3], got %v", got)
	}
}

func TestInsertScoresNormalizesLoadedBoard(t *testing.T) {
	got := InsertScores(nil, []int{3, -1, 9, 3, 12, 1, 8}, 5)
	want := []int{12, 9, 8, 3, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecordResultBestIsMax(t *testing.T) {
	tests := []struct {
		prevBest, score, wantBest int
		improved                  bool
	}{
		{0, 0, 0, false},
		{10, 4, 10, false},
		{10, 10, 10, false},
		{10, 11, 11, true},
	}

	for _, tt := range tests {
		s := NewGameState(tt.prevBest, nil)
		improved, _ := s.RecordResult(tt.score)
		if s.Best != tt.wantBest || improved != tt.improved {
			t.Errorf("best=%d score=%d: got best=%d improved=%v, want best=%d improved=%v",
				tt.prevBest, tt.score, s.Best, improved, tt.wantBest, tt.improved)
		}
	}
}

func TestRecordResultRank(t *testing.T) {
	s := NewGameState(0, []int{50, 40, 30, 20, 10})

	if _, rank := s.RecordResult(35); rank != 3 {
		t.Errorf("Expected rank 3, got %d", rank)
	}
	if !reflect.DeepEqual(s.Leaderboard, []int{50, 40, 35, 30, 20}) {
		t.Errorf("Unexpected leaderboard %v", s.Leaderboard)
	}

	// Ties keep the older score ahead; a tie with the last entry does not rank
	if _, rank := s.RecordResult(20); rank != 0 {
		t.Errorf("Expected tie at the cut-off to be unranked, got %d", rank)
	}
	if _, rank := s.RecordResult(50); rank != 2 {
		t.Errorf("Expected tie at the top to rank 2, got %d", rank)
	}
	if len(s.Leaderboard) != 5 {
		t.Errorf("Expected 5 entries, got %d", len(s.Leaderboard))
	}
}

func TestResetRunKeepsRecords(t *testing.T) {
	s := NewGameState(12, []int{12, 4})
	s.Score = 9
	s.Paused = true
	s.SoundOn = false

	s.ResetRun()

	if s.Score != 0 || !s.Running || s.Paused {
		t.Errorf("Expected fresh run flags, got score=%d running=%v paused=%v", s.Score, s.Running, s.Paused)
	}
	if s.Best != 12 || len(s.Leaderboard) != 2 || s.SoundOn {
		t.Error("ResetRun must not touch records or preferences")
	}
}

func TestAddPointsNeverDecreases(t *testing.T) {
	s := NewGameState(0, nil)
	s.AddPoints(3)
	s.AddPoints(-2)
	s.AddPoints(0)
	if s.Score != 3 {
		t.Errorf("Expected score 3, got %d", s.Score)
	}
}
