package member

import (
	"context"
)

// Store defines the contract for membership storage. The store owns the
// one-profile-per-member and unique-phone constraints and reports
// violations as ErrProfileExists / ErrPhoneTaken.
type Store interface {
	CreateMember(ctx context.Context, m *Member) error
	GetMember(ctx context.Context, id string) (Member, error)
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, memberID string) (Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
}
