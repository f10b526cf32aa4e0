package handlers_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"ministry-portal-backend/internal/api/handlers"
	"ministry-portal-backend/internal/catalog"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"
	"ministry-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEventServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CalendarHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEventServiceInterface(suite.ctrl)
	handler := handlers.NewCalendarHandler(suite.mockService, catalog.Default())

	suite.httpSuite = testutils.SetupHTTPTest()
	calendar := suite.httpSuite.Router.Group("/api/v1/calendar")
	{
		calendar.GET("/catalog", handler.GetCatalog)
		calendar.GET("/events", handler.ListEvents)
		calendar.GET("/month", handler.GetMonthGrid)
		calendar.GET("/export.ics", handler.ExportICS)
		calendar.POST("/events", handler.CreateEvent)
		calendar.POST("/events/recurring", handler.CreateRecurringEvents)
		calendar.GET("/events/:id", handler.GetEvent)
		calendar.PUT("/events/:id", handler.UpdateEvent)
		calendar.DELETE("/events/:id", handler.DeleteEvent)
	}
}

func (suite *CalendarHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarHandlerTestSuite) TestGetCatalog() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/catalog", nil)

	var response handlers.CatalogResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(catalog.DefaultEventType, response.DefaultEventType)
	suite.Contains(response.Supervisors, "RMenjivar")
	suite.Contains(response.StaffMembers, "NZavala")
	suite.Len(response.EventTypes, len(catalog.Default().EventTypes()))
}

func (suite *CalendarHandlerTestSuite) TestListEvents() {
	suite.T().Run("Success", func(t *testing.T) {
		events := []service.EventResponse{{ID: uuid.New(), Title: "Grupos", Date: "2024-03-10", Type: "GROUPS"}}
		suite.mockService.EXPECT().ListMonth(gomock.Any(), "2024-03").Return(events, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events?month=2024-03", nil)

		var response []service.EventResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "Grupos", response[0].Title)
	})

	suite.T().Run("Invalid month", func(t *testing.T) {
		suite.mockService.EXPECT().ListMonth(gomock.Any(), "March").Return(nil, apperrors.ErrInvalidMonth)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events?month=March", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid month")
	})

	suite.T().Run("Defaults to current month", func(t *testing.T) {
		suite.mockService.EXPECT().ListMonth(gomock.Any(), gomock.Len(7)).Return([]service.EventResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Store failure", func(t *testing.T) {
		suite.mockService.EXPECT().ListMonth(gomock.Any(), "2024-03").Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events?month=2024-03", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
	})
}

func (suite *CalendarHandlerTestSuite) TestGetMonthGrid() {
	grid := &service.MonthGridResponse{
		Month: "2024-03",
		Weeks: [][]service.CalendarDay{{{Date: "2024-02-25", InMonth: false}}},
	}
	suite.mockService.EXPECT().MonthGrid(gomock.Any(), "2024-03").Return(grid, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/month?month=2024-03", nil)

	var response service.MonthGridResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("2024-03", response.Month)
	suite.Require().Len(response.Weeks, 1)
	suite.False(response.Weeks[0][0].InMonth)
}

func (suite *CalendarHandlerTestSuite) TestExportICS() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ExportMonth(gomock.Any(), "2024-03", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
				_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
				return err
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/export.ics?month=2024-03", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "calendario-2024-03.ics")
		assert.Contains(t, recorder.Body.String(), "BEGIN:VCALENDAR")
	})

	suite.T().Run("Invalid month", func(t *testing.T) {
		suite.mockService.EXPECT().ExportMonth(gomock.Any(), "2024-13", gomock.Any()).Return(apperrors.ErrInvalidMonth)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/export.ics?month=2024-13", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid month")
	})
}

func (suite *CalendarHandlerTestSuite) TestGetEvent() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid event ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetEvent(gomock.Any(), id).Return(nil, apperrors.ErrEventNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/events/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "event not found")
	})
}

func (suite *CalendarHandlerTestSuite) TestCreateEvent() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()
		body := map[string]interface{}{
			"date":            "2024-03-10",
			"event_type":      "GROUPS",
			"supervisor_name": "RMenjivar",
			"member_ids":      []string{memberID.String()},
		}
		suite.mockService.EXPECT().
			CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.EventRequest) (*service.EventResponse, error) {
				assert.Equal(t, "2024-03-10", req.Date)
				assert.Equal(t, []uuid.UUID{memberID}, req.MemberIDs)
				return &service.EventResponse{ID: uuid.New(), Date: req.Date, Type: req.EventType}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/events", body)

		var response service.EventResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "GROUPS", response.Type)
	})

	suite.T().Run("Unknown members", func(t *testing.T) {
		suite.mockService.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUnknownMembers)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/events", map[string]interface{}{"date": "2024-03-10"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "members do not exist")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateEvent(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("supervisor_name", "unknown supervisor"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/events", map[string]interface{}{"date": "2024-03-10", "supervisor_name": "Nobody"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown supervisor")
	})
}

func (suite *CalendarHandlerTestSuite) TestCreateRecurringEvents() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateRecurring(gomock.Any(), gomock.Any()).
			Return([]service.EventResponse{{Date: "2024-03-10"}, {Date: "2024-03-17"}}, nil)

		body := map[string]interface{}{"date": "2024-03-10", "rrule": "FREQ=WEEKLY;COUNT=2"}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/events/recurring", body)

		var response []service.EventResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Invalid rule", func(t *testing.T) {
		suite.mockService.EXPECT().CreateRecurring(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidRecurrence)

		body := map[string]interface{}{"date": "2024-03-10", "rrule": "FREQ=SOMETIMES"}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/events/recurring", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid recurrence rule")
	})
}

func (suite *CalendarHandlerTestSuite) TestUpdateEvent() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ReplaceEvent(gomock.Any(), id, gomock.Any()).
			Return(&service.EventResponse{ID: id, Date: "2024-03-17"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/calendar/events/"+id.String(), map[string]interface{}{"date": "2024-03-17"})

		var response service.EventResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, id, response.ID)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().ReplaceEvent(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrEventNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/calendar/events/"+id.String(), map[string]interface{}{"date": "2024-03-17"})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *CalendarHandlerTestSuite) TestDeleteEvent() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteEvent(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/calendar/events/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
