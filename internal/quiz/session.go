package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"quizmaker/internal/models"

	"github.com/google/uuid"
)

// State is a test-taking session state
type State string

const (
	StateInProgress       State = "in_progress"
	StateConfirmingSubmit State = "confirming_submit"
	StateTimeExpired      State = "time_expired"
	StateShowingResults   State = "showing_results"
)

// Completion records how a session reached its results
type Completion string

const (
	CompletionNone    Completion = ""
	CompletionManual  Completion = "manual"
	CompletionTimeout Completion = "timeout"
)

var (
	ErrInvalidTransition  = errors.New("action not allowed in current state")
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrOptionOutOfRange   = errors.New("option index out of range")
)

// Snapshot is a consistent copy of a session's state for presentation
type Snapshot struct {
	ID              string
	TestID          string
	Test            models.TestDefinition
	State           State
	CurrentIndex    int
	Answers         models.AnswerState
	Timer           models.TimerState
	UnansweredCount int
	Result          *models.ResultSummary
	Completion      Completion
	StartedAt       time.Time
	FinishedAt      time.Time
}

// Session is one student's attempt at one test. All mutations go through
// its methods, which are safe to call from request handlers and the clock
// goroutine at the same time.
type Session struct {
	mu sync.Mutex

	id     string
	testID string
	test   models.TestDefinition

	state   State
	current int
	answers models.AnswerState
	timer   Countdown

	// set when time ran out while the submit confirmation was open
	pendingConfirm bool

	result     *models.ResultSummary
	completion Completion
	onResult   func(Snapshot)

	startedAt  time.Time
	finishedAt time.Time

	stopped  chan struct{}
	stopOnce sync.Once
}

// NewSession starts a session for test: every slot unanswered, the first
// question current and the countdown running.
func NewSession(testID string, test models.TestDefinition) *Session {
	s := &Session{
		id:        uuid.New().String(),
		testID:    testID,
		test:      test,
		state:     StateInProgress,
		answers:   models.NewAnswerState(len(test.Questions)),
		startedAt: time.Now(),
		stopped:   make(chan struct{}),
	}
	s.timer.Start(test.DurationSeconds)
	if !s.timer.Running() {
		s.stopClock()
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// TestID returns the opaque identifier the session was started for
func (s *Session) TestID() string {
	return s.testID
}

// OnResult registers a callback invoked once, outside the session lock,
// when results are first computed.
func (s *Session) OnResult(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResult = fn
}

// SelectAnswer records option as the answer to question index
func (s *Session) SelectAnswer(index, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(s.answers) {
		return ErrQuestionOutOfRange
	}
	if option < 0 || option >= len(s.test.Questions[index].Options) {
		return ErrOptionOutOfRange
	}
	s.answers[index] = models.Chose(option)
	return nil
}

// Navigate moves to question index, clamped to the valid range. It never
// checks whether the current question was answered.
func (s *Session) Navigate(index int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigateLocked(index)
}

// Next moves to the following question
func (s *Session) Next() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigateLocked(s.current + 1)
}

// Previous moves to the preceding question
func (s *Session) Previous() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigateLocked(s.current - 1)
}

func (s *Session) navigateLocked(index int) (int, error) {
	if s.state != StateInProgress {
		return s.current, ErrInvalidTransition
	}
	s.current = clamp(index, len(s.test.Questions))
	return s.current, nil
}

// RequestSubmit opens the submit confirmation. The clock keeps running.
func (s *Session) RequestSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrInvalidTransition
	}
	s.state = StateConfirmingSubmit
	return nil
}

// CancelSubmit closes the confirmation and returns to the questions
func (s *Session) CancelSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConfirmingSubmit {
		return ErrInvalidTransition
	}
	s.state = StateInProgress
	return nil
}

// ConfirmSubmit stops the clock and scores the session. A confirmation
// that races the final tick still wins: if time ran out while the
// confirmation was open, the manual submit is honoured.
func (s *Session) ConfirmSubmit() (models.ResultSummary, error) {
	s.mu.Lock()
	switch {
	case s.state == StateConfirmingSubmit:
	case s.state == StateTimeExpired && s.pendingConfirm:
	default:
		s.mu.Unlock()
		return models.ResultSummary{}, ErrInvalidTransition
	}
	return s.finishLocked(CompletionManual)
}

// Acknowledge dismisses the time-up dialog and scores the session
func (s *Session) Acknowledge() (models.ResultSummary, error) {
	s.mu.Lock()
	if s.state != StateTimeExpired {
		s.mu.Unlock()
		return models.ResultSummary{}, ErrInvalidTransition
	}
	return s.finishLocked(CompletionTimeout)
}

// Tick advances the countdown by one second and reports whether this tick
// ran the time out. Ticks that arrive after the clock stopped are dropped.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress && s.state != StateConfirmingSubmit {
		return false
	}
	if !s.timer.Tick() {
		return false
	}
	s.pendingConfirm = s.state == StateConfirmingSubmit
	s.state = StateTimeExpired
	s.stopClock()
	return true
}

// Run drives the countdown in real time until the clock stops or ctx ends
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopped:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Done is closed once the clock has stopped for good
func (s *Session) Done() <-chan struct{} {
	return s.stopped
}

// Finished reports whether results have been computed
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateShowingResults
}

// Snapshot returns a consistent copy of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:              s.id,
		TestID:          s.testID,
		Test:            s.test,
		State:           s.state,
		CurrentIndex:    s.current,
		Answers:         s.answers.Clone(),
		Timer:           s.timer.State(),
		UnansweredCount: s.answers.UnansweredCount(),
		Completion:      s.completion,
		StartedAt:       s.startedAt,
		FinishedAt:      s.finishedAt,
	}
	if s.result != nil {
		result := s.result.Clone()
		snap.Result = &result
	}
	return snap
}

// finishLocked must be called with s.mu held; it releases the lock before
// running the result callback.
func (s *Session) finishLocked(how Completion) (models.ResultSummary, error) {
	s.timer.Stop()
	s.stopClock()

	if s.result == nil {
		summary := Evaluate(s.test, s.answers)
		s.result = &summary
		s.completion = how
		s.finishedAt = time.Now()
	}
	s.state = StateShowingResults
	s.pendingConfirm = false

	result := s.result.Clone()
	hook := s.onResult
	s.onResult = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
	return result, nil
}

func (s *Session) stopClock() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

func clamp(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
