//go:build unit

package reservation_test

import (
	"math"
	"testing"
	"time"

	"carconnect/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyRateCostCalculator(t *testing.T) {
	calc := reservation.NewDailyRateCostCalculator()
	rate := reservation.MustMoney(5000)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		end      time.Time
		expected int64
	}{
		{name: "three whole days", end: start.Add(72 * time.Hour), expected: 15000},
		{name: "partial day is free", end: start.Add(30 * time.Hour), expected: 5000},
		{name: "under a day costs nothing", end: start.Add(5 * time.Hour), expected: 0},
		{name: "reversed dates cost nothing", end: start.Add(-72 * time.Hour), expected: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total, err := calc.TotalCost(rate, start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.expected, total.Cents())
		})
	}

	t.Run("huge daily rate overflows", func(t *testing.T) {
		huge := reservation.MustMoney(math.MaxInt64 / 2)
		_, err := calc.TotalCost(huge, start, start.Add(72*time.Hour))
		require.ErrorIs(t, err, reservation.ErrMoneyOverflow)
	})

	t.Run("long rental at a modest rate overflows", func(t *testing.T) {
		_, err := calc.TotalCost(reservation.MustMoney(math.MaxInt64/1000), start, start.AddDate(10, 0, 0))
		require.ErrorIs(t, err, reservation.ErrMoneyOverflow)
	})
}

func TestFactory_Create(t *testing.T) {
	factory := reservation.NewFactory(reservation.NewDailyRateCostCalculator())
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	base := reservation.Draft{
		CustomerID: 7,
		VehicleID:  3,
		StartDate:  start,
		EndDate:    start.Add(48 * time.Hour),
	}

	t.Run("prices from the daily rate when no total is given", func(t *testing.T) {
		require.True(t, base.NeedsPricing())

		res, err := factory.Create(base, reservation.MustMoney(4000))
		require.NoError(t, err)
		assert.Equal(t, int64(8000), res.TotalCost().Cents())
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("keeps a caller supplied total", func(t *testing.T) {
		d := base
		total := int64(1234)
		d.TotalCostCents = &total
		d.Status = "confirmed"
		require.False(t, d.NeedsPricing())

		res, err := factory.Create(d, reservation.MustMoney(4000))
		require.NoError(t, err)
		assert.Equal(t, int64(1234), res.TotalCost().Cents())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("unknown vehicle rate prices at zero", func(t *testing.T) {
		res, err := factory.Create(base, reservation.Money{})
		require.NoError(t, err)
		assert.True(t, res.TotalCost().IsZero())
	})

	t.Run("unrepresentable total is rejected", func(t *testing.T) {
		res, err := factory.Create(base, reservation.MustMoney(math.MaxInt64/2+1))
		require.Nil(t, res)
		require.ErrorIs(t, err, reservation.ErrMoneyOverflow)
	})

	t.Run("validation errors", func(t *testing.T) {
		negative := int64(-5)
		cases := []struct {
			name   string
			mutate func(*reservation.Draft)
			errIs  error
		}{
			{name: "reversed period", mutate: func(d *reservation.Draft) { d.EndDate = d.StartDate.Add(-time.Hour) }, errIs: reservation.ErrInvalidPeriod},
			{name: "unknown status", mutate: func(d *reservation.Draft) { d.Status = "Archived" }, errIs: reservation.ErrInvalidStatus},
			{name: "negative total", mutate: func(d *reservation.Draft) { d.TotalCostCents = &negative }, errIs: reservation.ErrNegativeMoney},
			{name: "missing customer", mutate: func(d *reservation.Draft) { d.CustomerID = 0 }, errIs: reservation.ErrInvalidCustomerID},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d := base
				c.mutate(&d)
				res, err := factory.Create(d, reservation.MustMoney(4000))
				require.Nil(t, res)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
