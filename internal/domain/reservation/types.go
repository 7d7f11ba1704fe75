package reservation

import "strings"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanCancel reports whether a reservation in this status may move to Cancelled.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ParseStatus accepts any letter case and surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	return parseLowered(strings.ToLower(strings.TrimSpace(raw)))
}

// parseStoredStatus matches a persisted value ignoring case only; padded
// values are not a known status.
func parseStoredStatus(stored string) (Status, error) {
	return parseLowered(strings.ToLower(stored))
}

func parseLowered(s string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ParseStatusOrDefault treats an empty value as Pending.
func ParseStatusOrDefault(raw string) (Status, error) {
	if strings.TrimSpace(raw) == "" {
		return StatusPending, nil
	}
	return ParseStatus(raw)
}
