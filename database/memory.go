package database

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is a map-backed Store. It keeps per-entity counters so identifiers
// are strictly increasing and never reused within a process lifetime. All
// methods are safe for concurrent use.
type Memory struct {
	mu sync.RWMutex

	users      map[uint]*User
	nextUserID uint

	communities     map[uint]*Community
	nextCommunityID uint
}

var _ Store = (*Memory)(nil)

// NewMemory creates a new in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		users:           make(map[uint]*User),
		nextUserID:      1,
		communities:     make(map[uint]*Community),
		nextCommunityID: 1,
	}
}

func (m *Memory) CreateUser(_ context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, ErrDuplicateUsername
		}
	}

	stored := *user
	stored.ID = m.nextUserID
	stored.CreatedAt = time.Now()
	m.nextUserID++
	m.users[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (m *Memory) GetUser(_ context.Context, id uint) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	result := *user
	return &result, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			result := *user
			return &result, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateCommunity(_ context.Context, community *Community) (*Community, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *community
	stored.ID = m.nextCommunityID
	stored.CreatedAt = time.Now()
	m.nextCommunityID++
	m.communities[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (m *Memory) GetCommunity(_ context.Context, id uint) (*Community, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	community, ok := m.communities[id]
	if !ok {
		return nil, ErrNotFound
	}
	result := *community
	return &result, nil
}

func (m *Memory) ListCommunities(_ context.Context) ([]Community, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	communities := make([]Community, 0, len(m.communities))
	for _, community := range m.communities {
		communities = append(communities, *community)
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i].ID < communities[j].ID
	})
	return communities, nil
}

func (m *Memory) Close() error {
	return nil
}
