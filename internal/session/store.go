// Package session owns the client-side state of one assessment run:
// the session identity, the current question, the transcript, and the
// diagnosis. A Store is constructed at app start and injected into
// whichever component needs it; there is no package-level instance.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/transcript"
)

var (
	// ErrBusy is returned when an operation is rejected because another
	// one is still in flight. The rejected call is a no-op.
	ErrBusy = errors.New("another session operation is in flight")

	// ErrNoSession is returned by operations that require an active
	// session when none exists.
	ErrNoSession = errors.New("no active session")

	// ErrNoQuestion is returned by Answer when no question is pending.
	ErrNoQuestion = errors.New("no current question")

	// ErrStaleQuestion is returned by Answer when the submitted answer
	// targets a question that is no longer current.
	ErrStaleQuestion = errors.New("answer targets a stale question")
)

// Service is the remote session protocol the store drives. *api.Client
// satisfies it.
type Service interface {
	CreateSession(ctx context.Context) (string, error)
	FetchStatus(ctx context.Context, sessionID string) (*api.Status, error)
	SubmitAnswer(ctx context.Context, sessionID string, answer api.AnswerPayload) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// Store holds the session state and serializes state-transition
// operations: the busy flag admits at most one outstanding remote call,
// and every other Start/Answer/Refresh/Reset is rejected with ErrBusy
// while one is pending.
type Store struct {
	svc Service

	mu        sync.Mutex
	busy      bool
	sessionID string
	question  *api.Question
	diagnosis *api.Diagnosis
	progress  float64
	log       transcript.Transcript
	pending   *transcript.Entry
	err       error
}

// NewStore creates a Store driving the given service.
func NewStore(svc Service) *Store {
	return &Store{svc: svc}
}

// Snapshot returns a copy of the current state. Read-only; any number
// of readers may call it concurrently with one in-flight operation.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		SessionID:     s.sessionID,
		Question:      s.question,
		Diagnosis:     s.diagnosis,
		Progress:      s.progress,
		Transcript:    s.log.Entries(),
		Busy:          s.busy,
		Err:           s.err,
		AnswerPending: s.pending != nil,
	}
}

// Start creates a new session and fetches its first status. On failure
// the store keeps its pre-call empty state plus the error; retrying
// Start is always safe.
func (s *Store) Start(ctx context.Context) error {
	if err := s.acquire(nil); err != nil {
		return err
	}
	defer s.release()

	id, err := s.svc.CreateSession(ctx)
	if err != nil {
		s.setError(err)
		return err
	}

	status, err := s.svc.FetchStatus(ctx, id)
	if err != nil {
		// The session was created but never installed; discard it so the
		// service doesn't accumulate orphans. Failure here is irrelevant.
		_ = s.svc.DeleteSession(ctx, id)
		s.setError(err)
		return err
	}

	s.mu.Lock()
	s.sessionID = id
	s.question = nil
	s.diagnosis = nil
	s.log = transcript.Transcript{}
	s.pending = nil
	s.err = nil
	s.applyStatusLocked(status)
	s.mu.Unlock()
	return nil
}

// Answer submits a validated answer for the current question, then
// fetches the next status. The transcript entry is committed only
// after the follow-up fetch succeeds; a fetch failure leaves the entry
// pending for Refresh to commit.
func (s *Store) Answer(ctx context.Context, payload api.AnswerPayload) error {
	var id string
	var q api.Question
	if err := s.acquire(func() error {
		if s.sessionID == "" {
			return ErrNoSession
		}
		if s.question == nil {
			return ErrNoQuestion
		}
		if s.question.ID != payload.QuestionID {
			return ErrStaleQuestion
		}
		id = s.sessionID
		q = *s.question
		return nil
	}); err != nil {
		return err
	}
	defer s.release()

	if err := s.svc.SubmitAnswer(ctx, id, payload); err != nil {
		s.setError(err)
		return err
	}

	// The service has accepted the answer; stage the transcript entry.
	entry := transcript.Entry{Question: q, Answer: payload}
	s.mu.Lock()
	s.pending = &entry
	s.mu.Unlock()

	status, err := s.svc.FetchStatus(ctx, id)
	if err != nil {
		s.setError(err)
		return err
	}

	s.commit(id, status)
	return nil
}

// Refresh re-fetches the session status. It is a pure read on the
// service and therefore safe to retry after a failed Answer follow-up;
// a pending transcript entry is committed on success.
func (s *Store) Refresh(ctx context.Context) error {
	var id string
	if err := s.acquire(func() error {
		if s.sessionID == "" {
			return ErrNoSession
		}
		id = s.sessionID
		return nil
	}); err != nil {
		return err
	}
	defer s.release()

	status, err := s.svc.FetchStatus(ctx, id)
	if err != nil {
		s.setError(err)
		return err
	}

	s.commit(id, status)
	return nil
}

// Reset discards the session server-side (best effort) and clears
// every field atomically. Calling Reset on an empty store is a no-op
// with the same outcome.
func (s *Store) Reset(ctx context.Context) error {
	var id string
	if err := s.acquire(func() error {
		id = s.sessionID
		return nil
	}); err != nil {
		return err
	}

	if id != "" {
		// The session is being discarded regardless of the outcome.
		_ = s.svc.DeleteSession(ctx, id)
	}

	s.mu.Lock()
	s.sessionID = ""
	s.question = nil
	s.diagnosis = nil
	s.progress = 0
	s.log = transcript.Transcript{}
	s.pending = nil
	s.err = nil
	s.busy = false
	s.mu.Unlock()
	return nil
}

// acquire atomically checks preconditions and sets the busy flag.
// check runs under the lock and must not block.
func (s *Store) acquire(check func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}
	s.busy = true
	return nil
}

func (s *Store) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// commit applies a status response that was issued for session id. A
// response arriving after the session changed is discarded.
func (s *Store) commit(id string, status *api.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID != id {
		return
	}
	if s.pending != nil {
		s.log.Append(s.pending.Question, s.pending.Answer)
		s.pending = nil
	}
	s.err = nil
	s.applyStatusLocked(status)
}

// applyStatusLocked installs a status payload. Diagnosis presence wins
// over question presence, so a late response can never resurrect a
// question after the session finished.
func (s *Store) applyStatusLocked(status *api.Status) {
	s.progress = status.Progress
	if status.Diagnosis != nil {
		s.diagnosis = status.Diagnosis
		s.question = nil
		return
	}
	if s.diagnosis != nil {
		return
	}
	s.question = status.Question
}
