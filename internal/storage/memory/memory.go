// Package memory provides in-memory repository implementations used by
// unit tests. Partition semantics match the postgres store: PutAll
// replaces the owner's record set wholesale.
package memory

import (
	"context"
	"sync"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"

	"github.com/google/uuid"
)

// ApplicationStore keeps per-owner record partitions in a map.
type ApplicationStore struct {
	mu         sync.Mutex
	partitions map[uuid.UUID][]models.Application
}

// NewApplicationStore creates an empty ApplicationStore.
func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{partitions: make(map[uuid.UUID][]models.Application)}
}

var _ storage.ApplicationRepository = (*ApplicationStore)(nil)

func (s *ApplicationStore) GetAll(ctx context.Context, ownerID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy so callers cannot mutate the stored partition in place.
	out := make([]models.Application, len(s.partitions[ownerID]))
	copy(out, s.partitions[ownerID])
	return out, nil
}

func (s *ApplicationStore) PutAll(ctx context.Context, ownerID uuid.UUID, apps []models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.Application, len(apps))
	copy(stored, apps)
	s.partitions[ownerID] = stored
	return nil
}

// UserStore keeps accounts in maps keyed by id and email.
type UserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ storage.UserRepository = (*UserStore)(nil)

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return nil, storage.ErrDuplicateEmail
	}
	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return user, nil
}
