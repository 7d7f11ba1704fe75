package response

import (
	"time"

	"carconnect/internal/usecase/queries"
)

type CustomerResponse struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	Address          string    `json:"address"`
	Username         string    `json:"username"`
	RegistrationDate time.Time `json:"registration_date"`
}

func FromCustomerView(v *queries.CustomerView) (*CustomerResponse, error) {
	return mapOne[queries.CustomerView, CustomerResponse](v)
}

func FromCustomerViews(vs []*queries.CustomerView) ([]CustomerResponse, error) {
	return mapAll[queries.CustomerView, CustomerResponse](vs)
}

type AdminResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	JoinDate    time.Time `json:"join_date"`
}

func FromAdminView(v *queries.AdminView) (*AdminResponse, error) {
	return mapOne[queries.AdminView, AdminResponse](v)
}

func FromAdminViews(vs []*queries.AdminView) ([]AdminResponse, error) {
	return mapAll[queries.AdminView, AdminResponse](vs)
}
