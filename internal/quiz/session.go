package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusActive means the session is in progress (or saved for resume).
	StatusActive Status = "active"

	// StatusReview is declared for forward compatibility. No transition
	// currently produces it.
	StatusReview Status = "review"

	// StatusFinished means the session was finalized and scored.
	StatusFinished Status = "finished"
)

var (
	// ErrAlreadyAnswered is returned when confirming an answer for a
	// question that already has one. Answers are locked once recorded.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrUnknownQuestion is returned when the question ID is not part of
	// this session's snapshot.
	ErrUnknownQuestion = errors.New("question not in session")

	// ErrNotActive is returned when mutating a finished session.
	ErrNotActive = errors.New("session is not active")
)

// Config holds per-session quiz settings.
type Config struct {
	// TimerEnabled turns the 1-second tick bookkeeping on.
	TimerEnabled bool `json:"timer_enabled"`

	// TimeLimitSecs is the countdown limit. 0 means unlimited: the session
	// tracks elapsed time but never expires.
	TimeLimitSecs int `json:"time_limit_secs"`

	// InstantFeedback shows correctness and explanation right after each
	// answer is confirmed.
	InstantFeedback bool `json:"instant_feedback"`

	// AutoSubmit finalizes the session when the countdown reaches zero.
	// Off by default: the timer then simply halts at zero.
	AutoSubmit bool `json:"auto_submit"`
}

// Session is one exam attempt over a snapshot of questions. The snapshot is
// decoupled from the originating bank, so later bank edits never affect a
// saved session. All mutation happens on the single foreground control flow.
type Session struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Questions []Question     `json:"questions"`
	Cursor    int            `json:"cursor"`
	Answers   map[string][]int `json:"answers"`
	Status    Status         `json:"status"`
	StartedAt time.Time      `json:"started_at"`

	// RemainingSecs is the countdown value when a time limit is configured.
	RemainingSecs int `json:"remaining_secs"`

	// ElapsedSecs counts ticks since the session started.
	ElapsedSecs int `json:"elapsed_secs"`

	UpdatedAt time.Time `json:"updated_at"`
	Config    Config    `json:"config"`
}

// NewSession starts a session over the given question snapshot.
func NewSession(name string, questions []Question, cfg Config) *Session {
	now := time.Now()
	return &Session{
		ID:            uuid.NewString(),
		Name:          name,
		Questions:     questions,
		Answers:       make(map[string][]int),
		Status:        StatusActive,
		StartedAt:     now,
		RemainingSecs: cfg.TimeLimitSecs,
		UpdatedAt:     now,
		Config:        cfg,
	}
}

// Current returns the question under the cursor, or nil for an empty session.
func (s *Session) Current() *Question {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Cursor]
}

// Question returns the session's question with the given ID, or nil.
func (s *Session) Question(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// Answered reports whether the question already has a confirmed answer.
func (s *Session) Answered(id string) bool {
	_, ok := s.Answers[id]
	return ok
}

// Confirm records the selected option indices for a question. Confirmation
// is one-way: a second Confirm for the same question fails and the original
// answer stands. The answer map never gains entries for questions outside
// the session snapshot.
func (s *Session) Confirm(id string, selected []int) error {
	if s.Status != StatusActive {
		return ErrNotActive
	}
	q := s.Question(id)
	if q == nil {
		return ErrUnknownQuestion
	}
	if s.Answered(id) {
		return ErrAlreadyAnswered
	}
	set := make([]any, len(selected))
	for i, v := range selected {
		set[i] = v
	}
	s.Answers[id] = NormalizeIndices(set)
	s.UpdatedAt = time.Now()
	return nil
}

// Next moves the cursor forward. Returns false at the last question.
func (s *Session) Next() bool {
	if s.Cursor >= len(s.Questions)-1 {
		return false
	}
	s.Cursor++
	return true
}

// Prev moves the cursor backward. Returns false at the first question.
func (s *Session) Prev() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	return true
}

// Jump moves the cursor to index i. Returns false when out of range.
func (s *Session) Jump(i int) bool {
	if i < 0 || i >= len(s.Questions) {
		return false
	}
	s.Cursor = i
	return true
}

// Tick advances the timer bookkeeping by one second. Under a time limit the
// countdown decrements and halts at zero; it never runs past the limit.
// Reaching zero finalizes the session only when AutoSubmit is configured.
func (s *Session) Tick() {
	if s.Status != StatusActive || !s.Config.TimerEnabled {
		return
	}
	s.ElapsedSecs++
	if s.Config.TimeLimitSecs <= 0 {
		return
	}
	if s.RemainingSecs > 0 {
		s.RemainingSecs--
		if s.RemainingSecs == 0 && s.Config.AutoSubmit {
			s.Finish()
		}
	}
}

// Expired reports whether a configured countdown has reached zero.
func (s *Session) Expired() bool {
	return s.Config.TimerEnabled && s.Config.TimeLimitSecs > 0 && s.RemainingSecs == 0
}

// AllAnswered reports whether every question has a confirmed answer.
func (s *Session) AllAnswered() bool {
	return len(s.Answers) == len(s.Questions)
}

// Finish finalizes the session.
func (s *Session) Finish() {
	s.Status = StatusFinished
	s.UpdatedAt = time.Now()
}

// IsCorrect reports whether the confirmed answer for the question matches
// its correct set. Unanswered questions are never correct.
func (s *Session) IsCorrect(id string) bool {
	selected, ok := s.Answers[id]
	if !ok {
		return false
	}
	q := s.Question(id)
	if q == nil {
		return false
	}
	return SameIndexSet(selected, q.CorrectIndices)
}

// Score returns the number of correct and answered questions.
func (s *Session) Score() (correct, answered int) {
	for id := range s.Answers {
		answered++
		if s.IsCorrect(id) {
			correct++
		}
	}
	return correct, answered
}
