package recorder

import "time"

// State is the recording lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRecording
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// session is the capture-backend-independent state machine:
// idle -> recording -> (paused <-> recording) -> stopped.
// It owns elapsed-time bookkeeping; paused time accumulates across
// multiple pause/resume cycles and is excluded from elapsed.
type session struct {
	state       State
	startedAt   time.Time
	pausedAt    time.Time
	stoppedAt   time.Time
	pausedTotal time.Duration
	now         func() time.Time
}

func newSession(now func() time.Time) *session {
	if now == nil {
		now = time.Now
	}
	return &session{state: StateIdle, now: now}
}

// start transitions idle -> recording. Any other state is rejected.
func (s *session) start() bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateRecording
	s.startedAt = s.now()
	return true
}

// pause transitions recording -> paused; a no-op from any other state.
func (s *session) pause() bool {
	if s.state != StateRecording {
		return false
	}
	s.state = StatePaused
	s.pausedAt = s.now()
	return true
}

// resume transitions paused -> recording; a no-op from any other state.
func (s *session) resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.pausedTotal += s.now().Sub(s.pausedAt)
	s.state = StateRecording
	return true
}

// stop finalizes from recording or paused.
func (s *session) stop() bool {
	switch s.state {
	case StateRecording:
		s.state = StateStopped
		s.stoppedAt = s.now()
		return true
	case StatePaused:
		s.pausedTotal += s.now().Sub(s.pausedAt)
		s.state = StateStopped
		s.stoppedAt = s.now()
		return true
	default:
		return false
	}
}

// elapsed is the recorded time so far, excluding paused intervals.
func (s *session) elapsed() time.Duration {
	switch s.state {
	case StateIdle:
		return 0
	case StatePaused:
		return s.pausedAt.Sub(s.startedAt) - s.pausedTotal
	case StateStopped:
		return s.stoppedAt.Sub(s.startedAt) - s.pausedTotal
	default:
		return s.now().Sub(s.startedAt) - s.pausedTotal
	}
}
