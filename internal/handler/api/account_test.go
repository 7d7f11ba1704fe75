//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carconnect/internal/domain/auth"
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

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	actor        auth.Principal
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.actor = testCustomer

	h := api.NewCustomerHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/customers", h.Register)
	s.router.GET("/anonymous/customers/:id", h.Get)

	g := s.router.Group("/customers", withPrincipal(&s.actor))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/by-username/:username", h.GetByUsername)
	g.PUT("/:username", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestRegister() {
	reqBody := builder.NewCustomerBuilder().BuildRegisterRequestDTO()

	s.Run("success: 201 with id", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(int64(12), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/customers", reqBody, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(12), response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/customers/12"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing first name", mutate: testutil.Field("first_name", "")},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
			{name: "long phone", mutate: testutil.Field("phone_number", "012345678901234567890")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/customers", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: username taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(int64(0), errs.MarkNew(errs.ErrConflict, "username already taken")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/customers", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "username already taken")
	})
}

func (s *CustomerHandlerTestSuite) TestGet() {
	s.Run("success: own profile", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1), testCustomer).Return(builder.NewCustomerBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/1", nil, "")

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		expected := resdto.CustomerResponse{
			ID:               1,
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john@example.com",
			PhoneNumber:      "555-0100",
			Address:          "1 Main St",
			Username:         "jdoe",
			RegistrationDate: builder.NewCustomerBuilder().RegistrationDate,
		}
		if diff := cmp.Diff(expected, response); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: another customer's profile", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(2), testCustomer).
			Return(nil, errs.MarkNew(errs.ErrForbidden, "access to another customer's data is not allowed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})

	s.Run("error: 401 without principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/customers/1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("success: by username", func() {
		s.mockQueries.EXPECT().GetByUsername(gomock.Any(), "jdoe", testCustomer).Return(builder.NewCustomerBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/by-username/jdoe", nil, "")

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("jdoe", response.Username)
	})
}

func (s *CustomerHandlerTestSuite) TestList() {
	s.actor = testAdmin
	views := []*queries.CustomerView{
		builder.NewCustomerBuilder().BuildView(),
		builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.ID = 2
			b.Username = "mallory"
		}).BuildView(),
	}
	s.mockQueries.EXPECT().GetAll(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil, "")

	var response []resdto.CustomerResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
	s.Equal("mallory", response[1].Username)
}

func (s *CustomerHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.Address = "2 Side St"
	}).BuildUpdateRequestDTO()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "jdoe", reqBody, testCustomer).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/jdoe", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on long first name", func() {
		long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/jdoe",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("first_name", long)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: forbidden for another customer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "mallory", reqBody, testCustomer).
			Return(errs.MarkNew(errs.ErrForbidden, "access to another customer's data is not allowed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/mallory", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})
}

func (s *CustomerHandlerTestSuite) TestDelete() {
	s.actor = testAdmin
	testCases := []struct {
		name           string
		commandsError  error
		expectedStatus int
		expectedMsg    string
	}{
		{"success", nil, http.StatusNoContent, ""},
		{"not found", errs.MarkNew(errs.ErrNotFound, "customer not found"), http.StatusNotFound, "customer not found"},
		{"has reservations", errs.MarkNew(errs.ErrReferentialIntegrity, "customer still has reservations"), http.StatusUnprocessableEntity, "still has reservations"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Delete(gomock.Any(), int64(4)).Return(tc.commandsError).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/4", nil, "")
			if tc.commandsError == nil {
				s.Equal(http.StatusNoContent, rec.Code)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
		})
	}
}

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)

	h := api.NewAdminHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/admins", withPrincipal(&testAdmin))
	g.GET("", h.List)
	g.POST("", h.Register)
	g.GET("/:id", h.Get)
	g.GET("/by-username/:username", h.GetByUsername)
	g.PUT("/:username", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestRegister() {
	reqBody := builder.NewAdminBuilder().BuildRegisterRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admins", reqBody, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(3), response.ID)
	})

	s.Run("error: role is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admins",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("role", "")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AdminHandlerTestSuite) TestGet() {
	s.Run("success: by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewAdminBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admins/1", nil, "")

		var response resdto.AdminResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Fleet Manager", response.Role)
		s.Equal("asmith", response.Username)
	})

	s.Run("error: unknown username", func() {
		s.mockQueries.EXPECT().GetByUsername(gomock.Any(), "ghost").
			Return(nil, errs.MarkNew(errs.ErrNotFound, "admin not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admins/by-username/ghost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "admin not found")
	})

	s.Run("error: empty list", func() {
		s.mockQueries.EXPECT().GetAll(gomock.Any()).
			Return(nil, errs.MarkNew(errs.ErrNotFound, "no admins found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admins", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no admins found")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateAndDelete() {
	reqBody := builder.NewAdminBuilder().BuildUpdateRequestDTO()

	s.Run("update: 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "asmith", reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admins/asmith", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admins/2", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admins/x", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
