package member

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is a mutex-guarded Store used by tests and the server's
// no-database mode. Uniqueness checks and writes happen under one lock.
type MemoryRepo struct {
	mu       sync.Mutex
	members  map[string]*Member
	profiles map[string]*Profile
	phones   map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		members:  make(map[string]*Member),
		profiles: make(map[string]*Profile),
		phones:   make(map[string]string),
	}
}

func (r *MemoryRepo) CreateMember(_ context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *MemoryRepo) GetMember(_ context.Context, id string) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return *m, nil
}

func (r *MemoryRepo) CreateProfile(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[p.MemberID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.profiles[p.MemberID]; ok {
		return ErrProfileExists
	}
	if owner, ok := r.phones[p.Phone]; ok && owner != p.MemberID {
		return ErrPhoneTaken
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	r.profiles[p.MemberID] = &cp
	r.phones[p.Phone] = p.MemberID
	return nil
}

func (r *MemoryRepo) GetProfile(_ context.Context, memberID string) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[memberID]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return *p, nil
}

func (r *MemoryRepo) UpdateProfile(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[p.MemberID]
	if !ok {
		return ErrProfileNotFound
	}
	if owner, ok := r.phones[p.Phone]; ok && owner != p.MemberID {
		return ErrPhoneTaken
	}

	delete(r.phones, existing.Phone)
	existing.Address = p.Address
	existing.Phone = p.Phone
	existing.UpdatedAt = time.Now().UTC()
	r.phones[p.Phone] = p.MemberID
	*p = *existing
	return nil
}
