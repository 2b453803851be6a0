//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"tabletop-reserve/internal/handler/api"
	"tabletop-reserve/internal/handler/middleware"
	resdto "tabletop-reserve/internal/handler/dto/response"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/usecase/commands"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/tests/common/builder"
	"tabletop-reserve/tests/common/httptest"
	"tabletop-reserve/tests/common/testutil"
	commandsmock "tabletop-reserve/tests/mock/commands"
	queriesmock "tabletop-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	loc          *time.Location
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	var err error
	s.loc, err = time.LoadLocation("Europe/Madrid")
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.loc)

	s.router.POST("/shops/:shopId/reservations", s.handler.Create)
	s.router.GET("/shops/:shopId/events", s.handler.ListShopEvents)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PUT("/reservations/:id", s.handler.Update)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
	s.router.GET("/tables/:tableId/reservations", s.handler.ListByTableAndDate)
	s.router.GET("/users/:userId/players", s.handler.ListLastPlayers)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/shops/1/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().WithGame(3).WithTable(2).BuildReadModel()

	s.Run("created reservation is returned", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(commands.CreateReservationInput{}), int64(1)).
			DoAndReturn(func(_ any, in commands.CreateReservationInput, _ int64) (*readmodel.ReservationRM, error) {
				s.True(reqBody.HourStart.Equal(in.HourStart))
				s.Equal(4, in.TotalPlaces)
				return returnView, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var actual resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &actual)
		expected := resdto.FromReservationRM(returnView)
		if diff := cmp.Diff(expected, &actual, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	bound := []testCaseReservation{
		{name: "missing hour_start", mutate: testutil.Field("hour_start", nil), expectCode: http.StatusBadRequest},
		{name: "malformed hour_end", mutate: testutil.Field("hour_end", "tomorrow"), expectCode: http.StatusBadRequest},
		{name: "unknown field", mutate: testutil.Field("owner", "me"), expectCode: http.StatusBadRequest},
		{name: "description too long", mutate: testutil.Field("description", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		{name: "description at limit", mutate: testutil.Field("description", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
	}
	for _, tc := range bound {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(returnView, nil)
			}
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
			s.Equal(tc.expectCode, w.Code, w.Body.String())
		})
	}

	s.Run("non numeric shop id never reaches the use case", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/shops/abc/reservations", reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid shopId")
	})

	s.Run("use case categories map to statuses", func() {
		cases := []struct {
			err  error
			code int
			msg  string
		}{
			{err: errs.NotFound("Shop not found"), code: http.StatusNotFound, msg: "Shop not found"},
			{err: errs.BadRequest("hour_end must be after hour_start"), code: http.StatusBadRequest, msg: "hour_end"},
			{err: errs.Mark(errors.New("pool exhausted"), errs.ErrInternal), code: http.StatusInternalServerError, msg: "Internal server error"},
			{err: errors.New("uncategorized"), code: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), w, tc.code, tc.msg)
			s.NotContains(w.Body.String(), "pool exhausted")
		}
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	s.Run("partial body only sets given fields", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), gomock.Any(), int64(7)).
			DoAndReturn(func(_ any, in commands.UpdateReservationInput, _ int64) (*readmodel.ReservationRM, error) {
				s.Require().NotNil(in.Description)
				s.Equal("Bring snacks", *in.Description)
				s.Nil(in.HourStart)
				s.Nil(in.TotalPlaces)
				return builder.NewReservationBuilder().BuildReadModel(), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/7", map[string]any{"description": "Bring snacks"})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(8)).Return(nil, errs.NotFound("reserve 8 not found"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/8", map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "reserve 8 not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.mockCommands.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/5", nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/0", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

// ================================================================================
// Queries
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("no content has an empty body", func() {
		s.mockQueries.EXPECT().GetAll(gomock.Any()).Return(nil, errs.NoContent("no reservations"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})

	s.Run("list is returned", func() {
		list := []*readmodel.ReservationRM{builder.NewReservationBuilder().BuildReadModel()}
		s.mockQueries.EXPECT().GetAll(gomock.Any()).Return(list, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)
		var actual []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &actual)
		s.Len(actual, 1)
	})
}

func (s *ReservationHandlerTestSuite) TestListByTableAndDate() {
	s.Run("date is read as a local calendar day", func() {
		s.mockQueries.EXPECT().
			GetAllByDate(gomock.Any(), gomock.Any(), int64(2)).
			DoAndReturn(func(_ any, date time.Time, _ int64) ([]*readmodel.ReservationRM, error) {
				s.True(date.Equal(time.Date(2030, time.March, 14, 0, 0, 0, 0, s.loc)), "got %s", date)
				return []*readmodel.ReservationRM{builder.NewReservationBuilder().BuildReadModel()}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/2/reservations?date=2030-03-14", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	cases := []testCaseReservation{
		{name: "missing date", expectCode: http.StatusBadRequest, expectInBody: "missing date"},
		{name: "bad date", expectCode: http.StatusBadRequest, expectInBody: "YYYY-MM-DD"},
	}
	paths := map[string]string{
		"missing date": "/tables/2/reservations",
		"bad date":     "/tables/2/reservations?date=14-03-2030",
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, paths[tc.name], nil)
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestListShopEvents() {
	s.mockQueries.EXPECT().FindAllUniqueShopEvents(gomock.Any(), int64(4)).Return(nil, errs.NotFound("Shop not found"))
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops/4/events", nil)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Shop not found")
}

func (s *ReservationHandlerTestSuite) TestListLastPlayers() {
	token := "secret-device-token"
	s.mockQueries.EXPECT().GetLastTenPlayers(gomock.Any(), "ana").
		Return([]readmodel.UserRM{{ID: "bob", Name: "Bob", NotificationToken: &token}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/ana/players", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"Bob"`)
	s.NotContains(w.Body.String(), token)
}
