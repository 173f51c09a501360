// Package object holds the gameplay entities: the session record, the
// obstacle and its cycle, the two avatars and the scale controller.
package object

import "github.com/tomz197/bridgefit/internal/loop/config"

// Session is the score and difficulty record of one play session.
type Session struct {
	Velocity      float32 // Obstacle speed, within [BaseVelocity, MaxVelocity]
	Score         uint32
	Best          uint32 // Never below Score
	FailedPending bool   // A mismatch was judged; consequences wait for the next reset
}

// NewSession returns a session at base difficulty with no score.
func NewSession() *Session {
	return &Session{Velocity: config.BaseVelocity}
}

// Clear records one successful obstacle clear.
func (s *Session) Clear() {
	s.Velocity = min(s.Velocity+config.VelocityStep, config.MaxVelocity)
	s.Score++
	s.Best = max(s.Best, s.Score)
}

// Fail drops the run back to base difficulty. Best is kept.
func (s *Session) Fail() {
	s.Velocity = config.BaseVelocity
	s.Score = 0
}
