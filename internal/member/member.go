package member

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a member is not found.
var ErrNotFound = errors.New("member not found")

// ErrProfileNotFound is returned when a member has no profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists is returned when creating a second profile for the
// same member.
var ErrProfileExists = errors.New("member already has a profile")

// ErrPhoneTaken is returned when a profile phone number is already in
// use by another profile.
var ErrPhoneTaken = errors.New("phone number already in use")

// Member represents a library member.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile holds contact details for a member. A member has at most one
// profile and phone numbers are unique across all profiles.
type Profile struct {
	MemberID  string    `json:"member_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
