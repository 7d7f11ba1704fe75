//go:build unit || e2e

package builder

import (
	"time"

	"carconnect/internal/domain/account"
	"carconnect/internal/domain/admin"
	"carconnect/internal/domain/customer"
	reqdto "carconnect/internal/handler/dto/request"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Address          string
	Username         string
	Password         string
	PasswordHash     string
	RegistrationDate time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:               1,
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john@example.com",
		PhoneNumber:      "555-0100",
		Address:          "1 Main St",
		Username:         "jdoe",
		Password:         "password123",
		PasswordHash:     "$2a$04$hash",
		RegistrationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) WithUsername(username string) *CustomerBuilder {
	c.Username = username
	return c
}

func (c *CustomerBuilder) profile() account.Profile {
	return account.Profile{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

// BuildStored returns the customer as the repository would load it.
func (c *CustomerBuilder) BuildStored() *customer.Customer {
	username, _ := account.NewUsername(c.Username)
	return customer.ReconstructCustomer(c.ID, c.profile(), c.Address, username, c.PasswordHash, c.RegistrationDate)
}

func (c *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		PhoneNumber:      pgtype.Text{String: c.PhoneNumber, Valid: c.PhoneNumber != ""},
		Address:          pgtype.Text{String: c.Address, Valid: c.Address != ""},
		Username:         c.Username,
		PasswordHash:     c.PasswordHash,
		RegistrationDate: pgtype.Timestamptz{Time: c.RegistrationDate, Valid: true},
	}
}

func (c *CustomerBuilder) BuildRegisterRequestDTO() reqdto.RegisterCustomerRequest {
	return reqdto.RegisterCustomerRequest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Username:    c.Username,
		Password:    c.Password,
	}
}

func (c *CustomerBuilder) BuildUpdateRequestDTO() reqdto.UpdateCustomerRequest {
	firstName, lastName, phone, address := c.FirstName, c.LastName, c.PhoneNumber, c.Address
	return reqdto.UpdateCustomerRequest{
		FirstName:   &firstName,
		LastName:    &lastName,
		PhoneNumber: &phone,
		Address:     &address,
	}
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		Address:          c.Address,
		Username:         c.Username,
		RegistrationDate: c.RegistrationDate,
	}
}

type AdminBuilder struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Username     string
	Password     string
	PasswordHash string
	Role         string
	JoinDate     time.Time
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		ID:           1,
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PhoneNumber:  "555-0200",
		Username:     "asmith",
		Password:     "password123",
		PasswordHash: "$2a$04$hash",
		Role:         "Fleet Manager",
		JoinDate:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (a *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(a)
	return a
}

func (a *AdminBuilder) BuildStored() *admin.Admin {
	username, _ := account.NewUsername(a.Username)
	profile := account.Profile{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}
	return admin.ReconstructAdmin(a.ID, profile, username, a.PasswordHash, a.Role, a.JoinDate)
}

func (a *AdminBuilder) BuildInfra() sqlc.Admins {
	return sqlc.Admins{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		PhoneNumber:  pgtype.Text{String: a.PhoneNumber, Valid: a.PhoneNumber != ""},
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		JoinDate:     pgtype.Timestamptz{Time: a.JoinDate, Valid: true},
	}
}

func (a *AdminBuilder) BuildRegisterRequestDTO() reqdto.RegisterAdminRequest {
	return reqdto.RegisterAdminRequest{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Username:    a.Username,
		Password:    a.Password,
		Role:        a.Role,
	}
}

func (a *AdminBuilder) BuildUpdateRequestDTO() reqdto.UpdateAdminRequest {
	firstName, lastName, phone, role := a.FirstName, a.LastName, a.PhoneNumber, a.Role
	return reqdto.UpdateAdminRequest{
		FirstName:   &firstName,
		LastName:    &lastName,
		PhoneNumber: &phone,
		Role:        &role,
	}
}

func (a *AdminBuilder) BuildView() *queries.AdminView {
	return &queries.AdminView{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Username:    a.Username,
		Role:        a.Role,
		JoinDate:    a.JoinDate,
	}
}
