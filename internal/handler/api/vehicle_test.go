//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carconnect/internal/handler/api"
	resdto "carconnect/internal/handler/dto/response"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/queries"
	"carconnect/tests/common/builder"
	"carconnect/tests/common/httptest"
	"carconnect/tests/common/testutil"
	commandsmock "carconnect/tests/mock/commands"
	queriesmock "carconnect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVehicleCommands
	mockQueries  *queriesmock.MockVehicleQueries
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVehicleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVehicleQueries(s.mockCtrl)

	h := api.NewVehicleHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/vehicles")
	g.GET("", h.List)
	g.GET("/available", h.ListAvailable)
	g.GET("/:id", h.Get)
	g.POST("", h.Add)
	g.PUT("/:registrationNumber", h.Update)
	g.DELETE("/:id", h.Remove)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) TestList() {
	s.Run("success: all vehicles", func() {
		views := []*queries.VehicleView{
			builder.NewVehicleBuilder().BuildView(),
			builder.NewVehicleBuilder().With(func(b *builder.VehicleBuilder) {
				b.ID = 2
				b.RegistrationNumber = "XYZ-9876"
				b.Availability = false
			}).BuildView(),
		}
		s.mockQueries.EXPECT().GetAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles", nil, "")

		var response []resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		expected := []resdto.VehicleResponse{
			{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2022, Color: "White", RegistrationNumber: "ABC-1234", Availability: true, DailyRateCents: 5000},
			{ID: 2, Make: "Toyota", Model: "Corolla", Year: 2022, Color: "White", RegistrationNumber: "XYZ-9876", Availability: false, DailyRateCents: 5000},
		}
		if diff := cmp.Diff(expected, response); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: none available answers 404", func() {
		s.mockQueries.EXPECT().GetAvailable(gomock.Any()).
			Return(nil, errs.MarkNew(errs.ErrNotFound, "no available vehicles found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/available", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no available vehicles found")
	})

	s.Run("error: database unreachable", func() {
		s.mockQueries.EXPECT().GetAll(gomock.Any()).
			Return(nil, errs.MarkNew(errs.ErrDatabaseConnectivity, "database is unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *VehicleHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewVehicleBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/1", nil, "")

		var response resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ABC-1234", response.RegistrationNumber)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(nil, errs.MarkNew(errs.ErrNotFound, "vehicle not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "vehicle not found")
	})
}

func (s *VehicleHandlerTestSuite) TestAdd() {
	reqBody := builder.NewVehicleBuilder().BuildAddRequestDTO()

	s.Run("success: 201 with id and location", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), reqBody).Return(int64(5), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vehicles", reqBody, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(5), response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/vehicles/5"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing make", mutate: testutil.Field("make", "")},
			{name: "missing registration", mutate: testutil.Field("registration_number", "")},
			{name: "zero year", mutate: testutil.Field("year", 0)},
			{name: "negative rate", mutate: testutil.Field("daily_rate_cents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vehicles", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: duplicate registration", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), reqBody).
			Return(int64(0), errs.MarkNew(errs.ErrConflict, "a vehicle with this registration number already exists")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vehicles", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *VehicleHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewVehicleBuilder().WithAvailability(false).WithDailyRateCents(6500).BuildUpdateRequestDTO()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdateByRegistration(gomock.Any(), "ABC-1234", reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/vehicles/ABC-1234", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: both fields are required", func() {
		for _, field := range []string{"availability", "daily_rate_cents"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/vehicles/ABC-1234",
				testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: unknown registration", func() {
		s.mockCommands.EXPECT().UpdateByRegistration(gomock.Any(), "NOPE-1", reqBody).
			Return(errs.MarkNew(errs.ErrNotFound, "vehicle not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/vehicles/NOPE-1", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "vehicle not found")
	})
}

func (s *VehicleHandlerTestSuite) TestRemove() {
	testCases := []struct {
		name           string
		commandsError  error
		expectedStatus int
		expectedMsg    string
	}{
		{"success", nil, http.StatusNoContent, ""},
		{"not found", errs.MarkNew(errs.ErrNotFound, "vehicle not found"), http.StatusNotFound, "vehicle not found"},
		{"referenced", errs.MarkNew(errs.ErrReferentialIntegrity, "vehicle is referenced by reservations"), http.StatusUnprocessableEntity, "referenced by reservations"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Remove(gomock.Any(), int64(3)).Return(tc.commandsError).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vehicles/3", nil, "")
			if tc.commandsError == nil {
				s.Equal(http.StatusNoContent, rec.Code)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
		})
	}
}
