package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidCustomerID = errors.New("customer id must be positive")
	ErrInvalidVehicleID  = errors.New("vehicle id must be positive")
	ErrNotCancellable    = errors.New("reservation cannot be cancelled")
	ErrCorruptedStatus   = errors.New("corrupted reservation status")
)

type Reservation struct {
	id         int64
	customerID int64
	vehicleID  int64
	period     Period
	totalCost  Money
	status     Status
}

func NewReservation(customerID, vehicleID int64, period Period, totalCost Money, status Status) (*Reservation, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		customerID: customerID,
		vehicleID:  vehicleID,
		period:     period,
		totalCost:  totalCost,
		status:     status,
	}, nil
}

func ReconstructReservation(
	id, customerID, vehicleID int64,
	period Period,
	totalCost Money,
	status Status,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		vehicleID:  vehicleID,
		period:     period,
		totalCost:  totalCost,
		status:     status,
	}
}

// Cancel moves a Pending or Confirmed reservation to Cancelled.
func (r *Reservation) Cancel() error {
	if !r.status.CanCancel() {
		return notCancellable(r.status.String())
	}
	r.status = StatusCancelled
	return nil
}

// CheckCancellable decides a cancellation from the status text as stored.
// Unknown values yield ErrCorruptedStatus; terminal ones ErrNotCancellable.
func CheckCancellable(stored string) (Status, error) {
	status, err := parseStoredStatus(stored)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrCorruptedStatus, stored)
	}
	if !status.CanCancel() {
		return status, notCancellable(status.String())
	}
	return status, nil
}

func notCancellable(status string) error {
	return fmt.Errorf("cannot cancel a reservation where status is %s: %w", status, ErrNotCancellable)
}

func (r *Reservation) ID() int64         { return r.id }
func (r *Reservation) CustomerID() int64 { return r.customerID }
func (r *Reservation) VehicleID() int64  { return r.vehicleID }
func (r *Reservation) Period() Period    { return r.period }
func (r *Reservation) TotalCost() Money  { return r.totalCost }
func (r *Reservation) Status() Status    { return r.status }
