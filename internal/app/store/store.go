// Package store holds the single authoritative snapshot of the dashboard data.
//
// Every mutation builds a new snapshot from the current one, persists it and
// only then publishes it. Readers get the published snapshot without locking
// and must treat it as read-only.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/idgen"
	"github.com/yigit/studentforce/internal/seed"
)

// Persister loads and saves whole snapshots
type Persister interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// Action describes what a mutation did
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionReset    Action = "reset"
	ActionCleared  Action = "cleared"
	ActionReplaced Action = "replaced"
)

// Change is delivered to observers after a snapshot has been published.
// Cascaded lists the ids of dependent records removed by a delete.
type Change struct {
	Entity   models.EntityKind
	Action   Action
	ID       string
	Cascaded map[models.EntityKind][]string
	Previous *models.Snapshot
	Current  *models.Snapshot
}

// Observer receives changes in publication order. Observers run while the
// store's write lock is held; they must not mutate the store.
type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

// Store is the single source of truth for all records
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[models.Snapshot]

	persister Persister
	ids       idgen.Generator
	seed      func() *models.Snapshot
	log       zerolog.Logger

	obsMu     sync.RWMutex
	observers []subscription
	nextObsID int
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the generator used for new record ids
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Store) { s.ids = gen }
}

// WithLogger sets the store logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithSeed replaces the dataset used when nothing valid is persisted
func WithSeed(build func() *models.Snapshot) Option {
	return func(s *Store) { s.seed = build }
}

// Open creates a store and hydrates it from the persister.
//
// A missing, malformed, structurally invalid or unsupported-version document
// is replaced by the seed, which is persisted immediately. Transport errors are
// returned so that an unreachable backend never gets overwritten.
func Open(ctx context.Context, persister Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: persister,
		ids:       idgen.UUIDGenerator{},
		seed:      seed.Build,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) error {
	snapshot, err := s.persister.Load(ctx)
	switch {
	case err == nil:
		s.current.Store(snapshot)
		s.log.Info().
			Int("students", len(snapshot.Students)).
			Int("courses", len(snapshot.Courses)).
			Int("professors", len(snapshot.Professors)).
			Msg("Snapshot loaded")
		return nil
	case errors.Is(err, apperrors.ErrSnapshotNotFound):
		s.log.Info().Msg("No persisted snapshot, seeding default data")
	case apperrors.Is(err, apperrors.ErrSnapshotInvalid, apperrors.ErrSnapshotVersion):
		s.log.Warn().Err(err).Msg("Persisted snapshot rejected, replacing with default data")
	default:
		return fmt.Errorf("load snapshot: %w", err)
	}

	fresh := s.seed()
	fresh.Version = models.SchemaVersion
	fresh.Normalize()
	if err := s.save(ctx, fresh); err != nil {
		return err
	}
	s.current.Store(fresh)
	return nil
}

// Snapshot returns the current snapshot. The value must not be modified.
func (s *Store) Snapshot() *models.Snapshot {
	return s.current.Load()
}

// Subscribe registers an observer and returns a function that removes it
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			defer s.obsMu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify(change Change) {
	s.obsMu.RLock()
	subs := s.observers
	s.obsMu.RUnlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}

func (s *Store) save(ctx context.Context, next *models.Snapshot) error {
	if err := s.persister.Save(ctx, next); err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// mutation describes one copy-on-write step. build receives a shallow clone
// of the current snapshot and reports whether anything changed; it may fill in
// the id and cascaded fields. An error from build aborts the step before
// anything is persisted.
type mutation struct {
	entity   models.EntityKind
	action   Action
	id       string
	cascaded map[models.EntityKind][]string
	build    func(next *models.Snapshot, m *mutation) (changed bool, err error)
}

// apply runs m under the write lock: build, persist, publish, notify.
// A failed build or persist leaves the published snapshot untouched.
func (s *Store) apply(ctx context.Context, m *mutation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	next := prev.Clone()
	changed, err := m.build(next, m)
	if err != nil || !changed {
		return false, err
	}

	if err := s.save(ctx, next); err != nil {
		s.log.Error().Err(err).
			Str("entity", string(m.entity)).
			Str("action", string(m.action)).
			Str("id", m.id).
			Msg("Mutation rejected, snapshot not persisted")
		return false, err
	}
	s.current.Store(next)

	event := s.log.Debug().
		Str("entity", string(m.entity)).
		Str("action", string(m.action)).
		Str("id", m.id)
	for kind, ids := range m.cascaded {
		event = event.Int(string(kind)+"_removed", len(ids))
	}
	event.Msg("Snapshot updated")

	s.notify(Change{
		Entity:   m.entity,
		Action:   m.action,
		ID:       m.id,
		Cascaded: m.cascaded,
		Previous: prev,
		Current:  next,
	})
	return true, nil
}

// newID draws ids until one is unused in the target collection
func (s *Store) newID(taken func(id string) bool) string {
	for {
		id := s.ids.NewID()
		if id != "" && !taken(id) {
			return id
		}
	}
}

// UpdateCurrentUser merges patch into the current user
func (s *Store) UpdateCurrentUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var updated models.User
	_, err := s.apply(ctx, &mutation{
		entity: models.EntityCurrentUser,
		action: ActionUpdated,
		build: func(next *models.Snapshot, _ *mutation) (bool, error) {
			next.CurrentUser = patch.Apply(next.CurrentUser)
			updated = next.CurrentUser
			return true, nil
		},
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// Reset replaces all data with the seed dataset
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.apply(ctx, &mutation{
		entity: models.EntitySnapshot,
		action: ActionReset,
		build: func(next *models.Snapshot, _ *mutation) (bool, error) {
			fresh := s.seed()
			fresh.Version = models.SchemaVersion
			fresh.Normalize()
			*next = *fresh
			return true, nil
		},
	})
	return err
}

// Clear empties every collection and keeps the current user
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.apply(ctx, &mutation{
		entity: models.EntitySnapshot,
		action: ActionCleared,
		build: func(next *models.Snapshot, _ *mutation) (bool, error) {
			*next = models.Snapshot{Version: models.SchemaVersion, CurrentUser: next.CurrentUser}
			next.Normalize()
			return true, nil
		},
	})
	return err
}

// Replace publishes an externally supplied snapshot, e.g. an import.
// The snapshot is validated first and copied so the caller keeps ownership.
func (s *Store) Replace(ctx context.Context, snapshot *models.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is nil", apperrors.ErrSnapshotInvalid)
	}
	incoming := snapshot.Clone()
	incoming.Version = models.SchemaVersion
	incoming.Normalize()
	if err := incoming.Validate(); err != nil {
		return err
	}
	incoming.Students = cloneSlice(incoming.Students)
	incoming.Courses = cloneSlice(incoming.Courses)
	incoming.Professors = cloneSlice(incoming.Professors)
	incoming.Marks = cloneSlice(incoming.Marks)
	incoming.Enrollments = cloneSlice(incoming.Enrollments)
	incoming.Assignments = cloneSlice(incoming.Assignments)

	_, err := s.apply(ctx, &mutation{
		entity: models.EntitySnapshot,
		action: ActionReplaced,
		build: func(next *models.Snapshot, _ *mutation) (bool, error) {
			*next = *incoming
			return true, nil
		},
	})
	return err
}
