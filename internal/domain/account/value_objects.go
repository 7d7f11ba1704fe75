package account

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrUsernameTooLong   = errors.New("username is too long (max 50 characters)")
	ErrEmptyFirstName    = errors.New("first name cannot be empty")
	ErrEmptyLastName     = errors.New("last name cannot be empty")
	ErrEmptyEmail        = errors.New("email cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

const MaxUsernameLength = 50

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrEmptyUsername
	}
	if len(s) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) String() string {
	return u.value
}

// Profile holds the contact details shared by customers and admins.
type Profile struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

func NewProfile(firstName, lastName, email, phoneNumber string) (Profile, error) {
	p := Profile{
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		Email:       strings.TrimSpace(email),
		PhoneNumber: strings.TrimSpace(phoneNumber),
	}
	switch {
	case p.FirstName == "":
		return Profile{}, ErrEmptyFirstName
	case p.LastName == "":
		return Profile{}, ErrEmptyLastName
	case p.Email == "":
		return Profile{}, ErrEmptyEmail
	}
	return p, nil
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
