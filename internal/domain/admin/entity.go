package admin

import (
	"errors"
	"strings"
	"time"

	"carconnect/internal/domain/account"
)

var ErrEmptyRole = errors.New("admin role cannot be empty")

// Admin roles are free text ("Super Admin", "Fleet Manager", ...). Every admin
// gets the same API permissions regardless of this label.
type Admin struct {
	id           int64
	profile      account.Profile
	username     account.Username
	passwordHash string
	role         string
	joinDate     time.Time
}

func NewAdmin(profile account.Profile, username account.Username, passwordHash, role string, joinedAt time.Time) (*Admin, error) {
	if passwordHash == "" {
		return nil, account.ErrEmptyPasswordHash
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, ErrEmptyRole
	}
	return &Admin{
		profile:      profile,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		joinDate:     joinedAt,
	}, nil
}

func ReconstructAdmin(
	id int64,
	profile account.Profile,
	username account.Username,
	passwordHash, role string,
	joinDate time.Time,
) *Admin {
	return &Admin{
		id:           id,
		profile:      profile,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		joinDate:     joinDate,
	}
}

func (a *Admin) ChangeDetails(firstName, lastName, phoneNumber, role string) error {
	profile, err := account.NewProfile(firstName, lastName, a.profile.Email, phoneNumber)
	if err != nil {
		return err
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrEmptyRole
	}
	a.profile = profile
	a.role = role
	return nil
}

func (a *Admin) ID() int64                  { return a.id }
func (a *Admin) Profile() account.Profile   { return a.profile }
func (a *Admin) Username() account.Username { return a.username }
func (a *Admin) PasswordHash() string       { return a.passwordHash }
func (a *Admin) Role() string               { return a.role }
func (a *Admin) JoinDate() time.Time        { return a.joinDate }
