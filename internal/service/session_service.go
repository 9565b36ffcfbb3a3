package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quizmaker/internal/models"
	"quizmaker/internal/quiz"
)

// maxSessionAge bounds how long an abandoned attempt is kept in memory
const maxSessionAge = 24 * time.Hour

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrServiceClosed   = errors.New("session service is shut down")
)

type attemptKey struct {
	userID int64
	testID string
}

type liveSession struct {
	session *quiz.Session
	owner   models.User
	cancel  context.CancelFunc
}

// SessionService keeps the in-memory registry of test-taking sessions and
// drives their clocks
type SessionService struct {
	provider     TestProvider
	notifier     ResultNotifier
	tickInterval time.Duration
	retention    time.Duration

	mu        sync.Mutex
	sessions  map[string]*liveSession
	byAttempt map[attemptKey]string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionService creates a session registry. Finished sessions stay
// readable for retention before the cleanup loop drops them. notifier may
// be nil.
func NewSessionService(provider TestProvider, notifier ResultNotifier, tickInterval, retention time.Duration) *SessionService {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionService{
		provider:     provider,
		notifier:     notifier,
		tickInterval: tickInterval,
		retention:    retention,
		sessions:     make(map[string]*liveSession),
		byAttempt:    make(map[attemptKey]string),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins an attempt at testID for user, or resumes the user's
// unfinished attempt at the same test
func (s *SessionService) Start(ctx context.Context, user models.User, testID string) (*quiz.Session, error) {
	key := attemptKey{userID: user.ID, testID: testID}

	s.mu.Lock()
	if id, ok := s.byAttempt[key]; ok {
		if live, ok := s.sessions[id]; ok && !live.session.Finished() {
			s.mu.Unlock()
			return live.session, nil
		}
	}
	s.mu.Unlock()

	test, err := s.provider.GetTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to load test %s: %w", testID, err)
	}

	session := quiz.NewSession(testID, *test)
	session.OnResult(func(snap quiz.Snapshot) {
		s.notify(user, snap)
	})

	runCtx, cancel := context.WithCancel(s.ctx)
	live := &liveSession{session: session, owner: user, cancel: cancel}

	s.mu.Lock()
	// Lost a race with a concurrent start for the same attempt
	if id, ok := s.byAttempt[key]; ok {
		if existing, ok := s.sessions[id]; ok && !existing.session.Finished() {
			s.mu.Unlock()
			cancel()
			return existing.session, nil
		}
	}
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		cancel()
		return nil, ErrServiceClosed
	}
	s.sessions[session.ID()] = live
	s.byAttempt[key] = session.ID()
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		session.Run(runCtx, s.tickInterval)
	}()

	log.Printf("Session %s started: user=%d test=%s", session.ID(), user.ID, testID)
	return session, nil
}

// Get returns a session owned by user
func (s *SessionService) Get(user models.User, sessionID string) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, ok := s.sessions[sessionID]
	if !ok || live.owner.ID != user.ID {
		return nil, ErrSessionNotFound
	}
	return live.session, nil
}

// Close drops a session owned by user and stops its clock
func (s *SessionService) Close(user models.User, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, ok := s.sessions[sessionID]
	if !ok || live.owner.ID != user.ID {
		return ErrSessionNotFound
	}
	s.removeLocked(sessionID, live)
	return nil
}

// Count returns the number of sessions held in memory
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// CleanupExpiredSessions drops finished sessions older than the retention
// period and abandoned sessions older than a day. It returns how many were
// dropped.
func (s *SessionService) CleanupExpiredSessions(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, live := range s.sessions {
		snap := live.session.Snapshot()
		finishedLongAgo := !snap.FinishedAt.IsZero() && now.Sub(snap.FinishedAt) > s.retention
		abandoned := now.Sub(snap.StartedAt) > maxSessionAge
		if finishedLongAgo || abandoned {
			s.removeLocked(id, live)
			removed++
		}
	}
	return removed
}

// StartCleanup runs CleanupExpiredSessions every interval until Shutdown
func (s *SessionService) StartCleanup(interval time.Duration) {
	if !s.track() {
		return
	}
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.CleanupExpiredSessions(now); n > 0 {
					log.Printf("Cleaned up %d expired test sessions", n)
				}
			}
		}
	}()
}

// Shutdown stops every clock and waits for pending notifications. Every
// wg.Add happens under mu after checking ctx, so none can race the Wait.
func (s *SessionService) Shutdown() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

// track registers one background goroutine, or reports false once the
// service is shut down
func (s *SessionService) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *SessionService) removeLocked(id string, live *liveSession) {
	live.cancel()
	delete(s.sessions, id)
	key := attemptKey{userID: live.owner.ID, testID: live.session.TestID()}
	if s.byAttempt[key] == id {
		delete(s.byAttempt, key)
	}
}

func (s *SessionService) notify(user models.User, snap quiz.Snapshot) {
	if snap.Result == nil {
		return
	}
	log.Printf("Session %s finished (%s): user=%d test=%s score=%d%% passed=%v",
		snap.ID, snap.Completion, user.ID, snap.TestID, snap.Result.Percentage, snap.Result.Passed)

	if s.notifier == nil {
		return
	}

	notice := ResultNotice{
		Student:    user,
		TestName:   snap.Test.Name,
		Result:     *snap.Result,
		TimedOut:   snap.Completion == quiz.CompletionTimeout,
		FinishedAt: snap.FinishedAt,
	}

	if !s.track() {
		log.Printf("Not sending result for session %s: shutting down", snap.ID)
		return
	}
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.NotifyResult(ctx, notice); err != nil {
			log.Printf("Error sending result for session %s: %v", snap.ID, err)
		}
	}()
}
