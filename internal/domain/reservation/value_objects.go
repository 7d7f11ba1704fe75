package reservation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var (
	ErrInvalidPeriod = errors.New("end date must be after start date")
	ErrNegativeMoney = errors.New("money cannot be negative")
	ErrMoneyOverflow = errors.New("amount is too large")
)

// Period is the rental window of a reservation. End is strictly after start.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Days is the number of whole days in the period; partial days are dropped.
func (p Period) Days() int64 {
	return WholeDays(p.start, p.end)
}

func (p Period) HasEnded(now time.Time) bool {
	return p.end.Before(now)
}

// WholeDays counts complete 24h spans between start and end, truncating
// toward zero. It is negative when end precedes start. Counting in seconds
// keeps spans longer than time.Duration can hold exact.
func WholeDays(start, end time.Time) int64 {
	secs := end.Unix() - start.Unix()
	nanos := end.Nanosecond() - start.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs / secondsPerDay
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MustMoney is for values already known to be non-negative, such as stored rows.
func MustMoney(cents int64) Money {
	if cents < 0 {
		return Money{}
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Times multiplies by n, flooring at zero.
func (m Money) Times(n int64) (Money, error) {
	if n <= 0 {
		return Money{}, nil
	}
	if m.cents > math.MaxInt64/n {
		return Money{}, fmt.Errorf("%w: %s x %d", ErrMoneyOverflow, m, n)
	}
	return Money{cents: m.cents * n}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
