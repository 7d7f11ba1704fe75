package vehicle

import (
	"errors"
	"strings"

	"carconnect/internal/domain/reservation"
)

var (
	ErrEmptyMake               = errors.New("vehicle make cannot be empty")
	ErrEmptyModel              = errors.New("vehicle model cannot be empty")
	ErrEmptyRegistrationNumber = errors.New("registration number cannot be empty")
	ErrInvalidYear             = errors.New("vehicle year must be positive")
	ErrNegativeDailyRate       = errors.New("daily rate cannot be negative")
	ErrFieldTooLong            = errors.New("vehicle field is too long (max 100 characters)")
	ErrMissingUpdateField      = errors.New("availability and daily rate are both required")
)

const MaxFieldLength = 100

type Vehicle struct {
	id                 int64
	make               string
	model              string
	year               int32
	color              string
	registrationNumber string
	availability       bool
	dailyRate          reservation.Money
}

type Params struct {
	Make               string
	Model              string
	Year               int32
	Color              string
	RegistrationNumber string
	Availability       bool
	DailyRateCents     int64
}

func NewVehicle(p Params) (*Vehicle, error) {
	mk := strings.TrimSpace(p.Make)
	model := strings.TrimSpace(p.Model)
	reg := strings.TrimSpace(p.RegistrationNumber)

	switch {
	case mk == "":
		return nil, ErrEmptyMake
	case model == "":
		return nil, ErrEmptyModel
	case reg == "":
		return nil, ErrEmptyRegistrationNumber
	case p.Year <= 0:
		return nil, ErrInvalidYear
	}
	for _, f := range []string{mk, model, reg, p.Color} {
		if len(f) > MaxFieldLength {
			return nil, ErrFieldTooLong
		}
	}

	rate, err := NewDailyRate(p.DailyRateCents)
	if err != nil {
		return nil, err
	}

	return &Vehicle{
		make:               mk,
		model:              model,
		year:               p.Year,
		color:              strings.TrimSpace(p.Color),
		registrationNumber: reg,
		availability:       p.Availability,
		dailyRate:          rate,
	}, nil
}

func ReconstructVehicle(id int64, p Params) *Vehicle {
	return &Vehicle{
		id:                 id,
		make:               p.Make,
		model:              p.Model,
		year:               p.Year,
		color:              p.Color,
		registrationNumber: p.RegistrationNumber,
		availability:       p.Availability,
		dailyRate:          reservation.MustMoney(p.DailyRateCents),
	}
}

func NewDailyRate(cents int64) (reservation.Money, error) {
	rate, err := reservation.NewMoney(cents)
	if err != nil {
		return reservation.Money{}, ErrNegativeDailyRate
	}
	return rate, nil
}

func (v *Vehicle) ID() int64                    { return v.id }
func (v *Vehicle) Make() string                 { return v.make }
func (v *Vehicle) Model() string                { return v.model }
func (v *Vehicle) Year() int32                  { return v.year }
func (v *Vehicle) Color() string                { return v.color }
func (v *Vehicle) RegistrationNumber() string   { return v.registrationNumber }
func (v *Vehicle) IsAvailable() bool            { return v.availability }
func (v *Vehicle) DailyRate() reservation.Money { return v.dailyRate }
