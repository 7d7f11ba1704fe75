package customer

import (
	"strings"
	"time"

	"carconnect/internal/domain/account"
)

type Customer struct {
	id               int64
	profile          account.Profile
	address          string
	username         account.Username
	passwordHash     string
	registrationDate time.Time
}

func NewCustomer(profile account.Profile, address string, username account.Username, passwordHash string, registeredAt time.Time) (*Customer, error) {
	if passwordHash == "" {
		return nil, account.ErrEmptyPasswordHash
	}
	return &Customer{
		profile:          profile,
		address:          strings.TrimSpace(address),
		username:         username,
		passwordHash:     passwordHash,
		registrationDate: registeredAt,
	}, nil
}

func ReconstructCustomer(
	id int64,
	profile account.Profile,
	address string,
	username account.Username,
	passwordHash string,
	registrationDate time.Time,
) *Customer {
	return &Customer{
		id:               id,
		profile:          profile,
		address:          address,
		username:         username,
		passwordHash:     passwordHash,
		registrationDate: registrationDate,
	}
}

// ChangeDetails replaces the editable contact fields. Email and username stay.
func (c *Customer) ChangeDetails(firstName, lastName, phoneNumber, address string) error {
	profile, err := account.NewProfile(firstName, lastName, c.profile.Email, phoneNumber)
	if err != nil {
		return err
	}
	c.profile = profile
	c.address = strings.TrimSpace(address)
	return nil
}

func (c *Customer) ID() int64                   { return c.id }
func (c *Customer) Profile() account.Profile    { return c.profile }
func (c *Customer) Address() string             { return c.address }
func (c *Customer) Username() account.Username  { return c.username }
func (c *Customer) PasswordHash() string        { return c.passwordHash }
func (c *Customer) RegistrationDate() time.Time { return c.registrationDate }
