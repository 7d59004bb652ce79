package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// memProfileStore mirrors the repository's upsert semantics in memory:
// keyed by username, last write wins.
type memProfileStore struct {
	mu      sync.Mutex
	records map[string]model.ProfileRecord
	failErr error
	writes  int
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{records: make(map[string]model.ProfileRecord)}
}

func (m *memProfileStore) Upsert(_ context.Context, rec *model.ProfileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failErr != nil {
		return m.failErr
	}
	m.records[rec.Username] = *rec
	return nil
}

type memChannelStore struct {
	mu      sync.Mutex
	records map[string]model.ChannelRecord
	failErr error
	writes  int
}

func newMemChannelStore() *memChannelStore {
	return &memChannelStore{records: make(map[string]model.ChannelRecord)}
}

func (m *memChannelStore) Upsert(_ context.Context, rec *model.ChannelRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failErr != nil {
		return m.failErr
	}
	m.records[rec.ChannelName] = *rec
	return nil
}

func (m *memChannelStore) FindByName(_ context.Context, channelName string) (*model.ChannelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[channelName]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rec, nil
}

type memUserStore struct {
	mu     sync.Mutex
	users  map[string]model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]model.User)}
}

func (m *memUserStore) Create(_ context.Context, username, passwordHash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.users[username] = model.User{ID: m.nextID, Username: username, PasswordHash: passwordHash}
	return m.nextID, nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

// fakeScraper returns a canned record or error.
type fakeScraper struct {
	record *model.ProfileRecord
	err    error
	calls  int
}

func (f *fakeScraper) ScrapeProfile(_ context.Context, username string) (*model.ProfileRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rec := *f.record
	rec.Username = username
	return &rec, nil
}

// fakeAggregator returns a canned record or error.
type fakeAggregator struct {
	record *model.ChannelRecord
	err    error
	calls  int
}

func (f *fakeAggregator) Aggregate(_ context.Context, _ string) (*model.ChannelRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rec := *f.record
	return &rec, nil
}
