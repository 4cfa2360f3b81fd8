package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
)

type session struct {
	answers   []model.Answer
	updatedAt time.Time
}

// MemoryStore keeps answer sets in a map guarded by a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	opts     options

	wg       sync.WaitGroup
	stopChan chan struct{}
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-process store. With a TTL configured a
// background sweeper drops expired sessions until ctx ends or Close is called.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]session),
		opts:     newOptions(opts),
		stopChan: make(chan struct{}),
	}
	if s.opts.ttl > 0 {
		s.startSweeper(ctx)
	}
	return s
}

func (s *MemoryStore) startSweeper(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.opts.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// sweep removes expired sessions and returns how many were dropped.
func (s *MemoryStore) sweep() int {
	now := s.opts.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (s *MemoryStore) expired(sess session, now time.Time) bool {
	return s.opts.ttl > 0 && now.Sub(sess.updatedAt) >= s.opts.ttl
}

// Close stops the sweeper.
func (s *MemoryStore) Close() error {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
	s.wg.Wait()
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	now := s.opts.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if !s.expired(sess, now) {
			n++
		}
	}
	return n
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, sessionID string) (answers []model.Answer, err error) {
	defer func(start time.Time) { observe(BackendMemory, "load", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || s.expired(sess, s.opts.now()) {
		return nil, ErrNotFound
	}
	return slices.Clone(sess.answers), nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, sessionID string, answers []model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendMemory, "save", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	stored := slices.Clone(answers)
	if stored == nil {
		stored = []model.Answer{}
	}
	s.mu.Lock()
	s.sessions[sessionID] = session{answers: stored, updatedAt: s.opts.now()}
	s.mu.Unlock()
	return nil
}

// Append implements Store.
func (s *MemoryStore) Append(_ context.Context, sessionID string, answers ...model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendMemory, "append", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	now := s.opts.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || s.expired(sess, now) {
		return ErrNotFound
	}
	s.sessions[sessionID] = session{answers: model.Merge(sess.answers, answers...), updatedAt: now}
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) (err error) {
	defer func(start time.Time) { observe(BackendMemory, "delete", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || s.expired(sess, s.opts.now()) {
		return ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
