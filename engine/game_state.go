package engine

import (
	"time"

	"github.com/google/uuid"
)

// GameState holds the round data mutated by clicks and clock ticks
// Not synchronized: the Controller serializes every access
type GameState struct {
	score          float64 // Raw gauge accumulator, may overshoot the win score by one click
	clickCount     int
	active         bool
	startTime      time.Time
	endTime        time.Time
	displayedScore float64 // Smoothed projection of the eased score, in [0, winScore]
	roundID        uuid.UUID
	rating         int
}

// StateSnapshot is a value copy of GameState for readers outside the controller
type StateSnapshot struct {
	Score          float64
	ClickCount     int
	Active         bool
	StartTime      time.Time
	EndTime        time.Time
	DisplayedScore float64
	RoundID        uuid.UUID
	Rating         int
}

// NewGameState creates an active round at score zero
func NewGameState(now time.Time) *GameState {
	gs := &GameState{}
	gs.ResetRound(now)
	return gs
}

// ResetRound returns the state to a fresh active round
func (gs *GameState) ResetRound(now time.Time) {
	gs.score = 0
	gs.clickCount = 0
	gs.active = true
	gs.startTime = now
	gs.displayedScore = 0
	gs.rating = 0
	gs.roundID = uuid.New()
}

// ===== ACCESSORS =====

func (gs *GameState) Score() float64          { return gs.score }
func (gs *GameState) ClickCount() int         { return gs.clickCount }
func (gs *GameState) Active() bool            { return gs.active }
func (gs *GameState) StartTime() time.Time    { return gs.startTime }
func (gs *GameState) EndTime() time.Time      { return gs.endTime }
func (gs *GameState) DisplayedScore() float64 { return gs.displayedScore }
func (gs *GameState) RoundID() uuid.UUID      { return gs.roundID }
func (gs *GameState) Rating() int             { return gs.rating }

// Snapshot copies the state
func (gs *GameState) Snapshot() StateSnapshot {
	return StateSnapshot{
		Score:          gs.score,
		ClickCount:     gs.clickCount,
		Active:         gs.active,
		StartTime:      gs.startTime,
		EndTime:        gs.endTime,
		DisplayedScore: gs.displayedScore,
		RoundID:        gs.roundID,
		Rating:         gs.rating,
	}
}

// ===== MUTATORS =====

// RegisterClick adds points and counts the click
func (gs *GameState) RegisterClick(points float64) {
	gs.score += points
	gs.clickCount++
}

// Decay drains the gauge, never below zero
func (gs *GameState) Decay(amount float64) {
	gs.score -= amount
	if gs.score < 0 {
		gs.score = 0
	}
}

// HoldAtFloor pins the score to zero and restarts the round clock
func (gs *GameState) HoldAtFloor(now time.Time) {
	gs.score = 0
	gs.startTime = now
}

// MarkWon freezes the round
func (gs *GameState) MarkWon(now time.Time, rating int) {
	gs.active = false
	gs.endTime = now
	gs.rating = rating
}

// SetDisplayedScore stores the smoothed value
func (gs *GameState) SetDisplayedScore(v float64) {
	gs.displayedScore = v
}

// Elapsed returns the duration of the last completed round, or of the current one so far
func (gs *GameState) Elapsed(now time.Time) time.Duration {
	if !gs.active {
		return gs.endTime.Sub(gs.startTime)
	}
	return now.Sub(gs.startTime)
}
