package queries

import (
	"time"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	VehicleID      int64     `json:"vehicle_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalCostCents int64     `json:"total_cost_cents"`
	// Raw stored text; may fall outside the known statuses
	Status string `json:"status"`
}

type VehicleView struct {
	ID                 int64  `json:"id"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int32  `json:"year"`
	Color              string `json:"color"`
	RegistrationNumber string `json:"registration_number"`
	Availability       bool   `json:"availability"`
	DailyRateCents     int64  `json:"daily_rate_cents"`
}

type CustomerView struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	Address          string    `json:"address"`
	Username         string    `json:"username"`
	RegistrationDate time.Time `json:"registration_date"`
}

type AdminView struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	JoinDate    time.Time `json:"join_date"`
}
