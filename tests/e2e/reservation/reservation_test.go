//go:build e2e

package reservation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"carconnect/internal/handler/dto/request"
	"carconnect/internal/handler/dto/response"
	"carconnect/tests/common/authtest"
	"carconnect/tests/common/dbtest"
	"carconnect/tests/common/httptest"
	"carconnect/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
	customerID    int64
	customerToken string
	adminToken    string
	vehicleID     int64
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.customerID, s.customerToken = authtest.CreateAndLoginCustomer(s.T(), s.DB, s.Router, "jdoe")
	s.adminToken = authtest.LoginAdmin(s.T(), s.Router, "root", dbtest.DefaultPassword)
	s.vehicleID = dbtest.CreateTestVehicle(s.T(), s.DB, "ABC-1234", 5000, true)
}

func (s *reservationSuite) TestCreate() {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	s.Run("prices from the daily rate when no total is given", func() {
		t := s.T()

		req := request.CreateReservationRequest{
			CustomerID: s.customerID,
			VehicleID:  s.vehicleID,
			StartDate:  start,
			EndDate:    start.Add(3 * 24 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, int64(15000), res.TotalCostCents)
		require.Equal(t, "Pending", res.Status)
		require.Equal(t, fmt.Sprintf("/api/reservations/%d", res.ID), w.Header().Get("Location"))
	})

	s.Run("keeps a supplied total and status", func() {
		t := s.T()

		total := int64(9900)
		req := request.CreateReservationRequest{
			CustomerID:     s.customerID,
			VehicleID:      s.vehicleID,
			StartDate:      start,
			EndDate:        start.Add(30 * time.Hour),
			TotalCostCents: &total,
			Status:         "confirmed",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, total, res.TotalCostCents)
		require.Equal(t, "Confirmed", res.Status)
	})

	s.Run("unknown vehicle is rejected by the foreign key", func() {
		req := request.CreateReservationRequest{
			CustomerID: s.customerID,
			VehicleID:  s.vehicleID + 100,
			StartDate:  start,
			EndDate:    start.Add(24 * time.Hour),
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "does not exist")
	})

	s.Run("end before start is a validation error", func() {
		req := request.CreateReservationRequest{
			CustomerID: s.customerID,
			VehicleID:  s.vehicleID,
			StartDate:  start,
			EndDate:    start.Add(-time.Hour),
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "end date must be after start date")
	})

	s.Run("customers cannot book for someone else", func() {
		otherID := dbtest.CreateTestCustomer(s.T(), s.DB, "mallory")
		req := request.CreateReservationRequest{
			CustomerID: otherID,
			VehicleID:  s.vehicleID,
			StartDate:  start,
			EndDate:    start.Add(24 * time.Hour),
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, s.customerToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestCalculateCost() {
	tests := []struct {
		name      string
		vehicleID func() int64
		start     string
		end       string
		expected  int64
	}{
		{"three whole days", func() int64 { return s.vehicleID }, "2030-01-01T00:00:00Z", "2030-01-04T00:00:00Z", 15000},
		{"partial day is dropped", func() int64 { return s.vehicleID }, "2030-01-01T00:00:00Z", "2030-01-02T23:00:00Z", 5000},
		{"unknown vehicle costs nothing", func() int64 { return s.vehicleID + 100 }, "2030-01-01T00:00:00Z", "2030-01-04T00:00:00Z", 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			url := fmt.Sprintf("%s/cost?vehicleId=%d&startDate=%s&endDate=%s", reservationsURL, tt.vehicleID(), tt.start, tt.end)
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.customerToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res response.CostResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.Equal(t, tt.expected, res.TotalCostCents)
		})
	}
}

func (s *reservationSuite) TestCancel() {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	s.Run("cancels and releases the vehicle", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(), "UPDATE vehicles SET availability = false WHERE id = $1", s.vehicleID)
		require.NoError(t, err)
		id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, end, 10000, "Confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%d/cancel", reservationsURL, id), nil, s.customerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, "Cancelled", dbtest.ReservationStatus(t, s.DB, id))
		require.True(t, dbtest.VehicleAvailability(t, s.DB, s.vehicleID))
	})

	s.Run("terminal statuses cannot be cancelled", func() {
		t := s.T()
		for _, status := range []string{"Completed", "Cancelled"} {
			id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, end, 10000, status)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%d/cancel", reservationsURL, id), nil, s.customerToken)
			require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
			require.Equal(t, status, dbtest.ReservationStatus(t, s.DB, id))
		}
	})

	s.Run("unrecognized stored status is reported and left alone", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(), "UPDATE vehicles SET availability = false WHERE id = $1", s.vehicleID)
		require.NoError(t, err)
		id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, end, 10000, "Lost")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%d/cancel", reservationsURL, id), nil, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "unrecognized status")

		require.Equal(t, "Lost", dbtest.ReservationStatus(t, s.DB, id))
		require.False(t, dbtest.VehicleAvailability(t, s.DB, s.vehicleID))
	})

	s.Run("unknown reservation", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/999999/cancel", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "reservation not found")
	})
}

func (s *reservationSuite) TestReadAccess() {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	s.Run("owner and admin can read, others cannot", func() {
		t := s.T()
		id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, start.Add(24*time.Hour), 5000, "Pending")
		_, otherToken := authtest.CreateAndLoginCustomer(t, s.DB, s.Router, "mallory")
		url := fmt.Sprintf("%s/%d", reservationsURL, id)

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.customerToken).Code)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.adminToken).Code)
		require.Equal(t, http.StatusForbidden, httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, otherToken).Code)
	})

	s.Run("an empty list answers 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "no reservations found")
	})

	s.Run("listing every reservation is admin only", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, s.customerToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("unknown stored status is returned as text", func() {
		t := s.T()
		dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, start.Add(24*time.Hour), 5000, "Lost")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/customers/%d/reservations", s.customerID), nil, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res []response.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		require.Equal(t, "Lost", res[0].Status)
	})
}

func (s *reservationSuite) TestUpdateStatus() {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	s.Run("admin may set any status", func() {
		t := s.T()
		id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, start.Add(24*time.Hour), 5000, "Completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%d/status", reservationsURL, id),
			request.UpdateReservationStatusRequest{Status: "pending"}, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "Pending", dbtest.ReservationStatus(t, s.DB, id))
	})

	s.Run("customers are refused", func() {
		t := s.T()
		id := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, start, start.Add(24*time.Hour), 5000, "Pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%d/status", reservationsURL, id),
			request.UpdateReservationStatusRequest{Status: "Confirmed"}, s.customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestCompletionSweep() {
	s.Run("completes confirmed reservations that have ended", func() {
		t := s.T()
		past := time.Now().Add(-72 * time.Hour)
		future := time.Now().Add(72 * time.Hour)

		elapsed := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, past, past.Add(24*time.Hour), 5000, "Confirmed")
		pending := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, past, past.Add(24*time.Hour), 5000, "Pending")
		running := dbtest.CreateTestReservation(t, s.DB, s.customerID, s.vehicleID, past, future, 5000, "Confirmed")

		n, err := s.Scheduler.Run(t.Context())
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		require.Equal(t, "Completed", dbtest.ReservationStatus(t, s.DB, elapsed))
		require.Equal(t, "Pending", dbtest.ReservationStatus(t, s.DB, pending))
		require.Equal(t, "Confirmed", dbtest.ReservationStatus(t, s.DB, running))
	})
}
