package request

import (
	"carconnect/internal/domain/account"
)

type RegisterCustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	Address     string `json:"address"`
	Username    string `json:"username" binding:"required,max=50"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

func (r *RegisterCustomerRequest) ToDomain() (account.Profile, account.Username, error) {
	return toAccount(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.Username)
}

// Nil or blank fields keep their stored values.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=50"`
	LastName    *string `json:"last_name" binding:"omitempty,max=50"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Address     *string `json:"address"`
}

type RegisterAdminRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	Username    string `json:"username" binding:"required,max=50"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Role        string `json:"role" binding:"required,max=50"`
}

func (r *RegisterAdminRequest) ToDomain() (account.Profile, account.Username, error) {
	return toAccount(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.Username)
}

type UpdateAdminRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=50"`
	LastName    *string `json:"last_name" binding:"omitempty,max=50"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Role        *string `json:"role" binding:"omitempty,max=50"`
}

func toAccount(firstName, lastName, email, phoneNumber, username string) (account.Profile, account.Username, error) {
	profile, err := account.NewProfile(firstName, lastName, email, phoneNumber)
	if err != nil {
		return account.Profile{}, account.Username{}, err
	}
	name, err := account.NewUsername(username)
	if err != nil {
		return account.Profile{}, account.Username{}, err
	}
	return profile, name, nil
}
