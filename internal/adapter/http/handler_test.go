package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/core/port/mocks"
)

type fixture struct {
	analytics *mocks.MockAnalyticsUseCase
	tracking  *mocks.MockTrackingUseCase
	directory *mocks.MockDirectoryUseCase
	handler   *Handler
}

func newFixture(t *testing.T, opts ...Option) fixture {
	f := fixture{
		analytics: mocks.NewMockAnalyticsUseCase(t),
		tracking:  mocks.NewMockTrackingUseCase(t),
		directory: mocks.NewMockDirectoryUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(f.analytics, f.tracking, f.directory, logger, opts...)
	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestDepartmentReport(t *testing.T) {
	f := newFixture(t)

	f.analytics.EXPECT().
		DepartmentReport(mock.Anything, mock.MatchedBy(func(req port.ReportReq) bool {
			return req.AdminID == "a1" &&
				req.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				req.To.Equal(time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC))
		})).
		Return(&domain.Report{Departments: []domain.DepartmentMetrics{
			{Department: "IT", SentPairs: 10, ClickedPairs: 3, ClickRate: 30.0, SubmissionRate: 10.0},
		}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/analytics/departments?from=2025-01-01&to=2025-01-31&admin_id=a1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	report := decode[domain.Report](t, rec)
	require.Len(t, report.Departments, 1)
	assert.Equal(t, 30.0, report.Departments[0].ClickRate)
	assert.Equal(t, 10, report.Departments[0].SentPairs)
}

func TestDepartmentReport_BadDates(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/analytics/departments?from=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDepartmentReport_InvertedRange(t *testing.T) {
	f := newFixture(t)

	f.analytics.EXPECT().DepartmentReport(mock.Anything, mock.Anything).Return(nil, port.ErrInvalidRange)

	rec := f.do(http.MethodGet, "/api/v1/analytics/departments?from=2025-02-01&to=2025-01-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDepartmentReport_StoreFailureIsGeneric(t *testing.T) {
	f := newFixture(t)

	f.analytics.EXPECT().DepartmentReport(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec := f.do(http.MethodGet, "/api/v1/analytics/departments", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decode[errorBody](t, rec).Error)
}

func TestEmployeeTimeline_NotFound(t *testing.T) {
	f := newFixture(t)

	f.analytics.EXPECT().
		EmployeeTimeline(mock.Anything, port.TimelineReq{EmployeeID: "e9"}).
		Return(nil, port.ErrEmployeeNotFound)

	rec := f.do(http.MethodGet, "/api/v1/analytics/employees/e9/timeline", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogEvent(t *testing.T) {
	f := newFixture(t)

	f.tracking.EXPECT().
		LogEvent(mock.Anything, mock.MatchedBy(func(req port.LogEventReq) bool {
			return req.Action == domain.ActionSubmitted && req.Platform == domain.PlatformCitibank && req.Timestamp == nil
		})).
		Return(&domain.Event{ID: 1, CampaignID: "c1", EmployeeID: "e1", Action: domain.ActionSubmitted}, nil)

	rec := f.do(http.MethodPost, "/api/v1/events",
		`{"campaignId":"c1","employeeId":"e1","platform":"citibank","action":"submitted","data":{"field":"password"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[domain.Event](t, rec).ID)
}

func TestLogEvent_Rejected(t *testing.T) {
	f := newFixture(t)

	cases := map[string]string{
		"opened":         `{"campaignId":"c1","employeeId":"e1","platform":"google","action":"opened"}`,
		"unknown brand":  `{"campaignId":"c1","employeeId":"e1","platform":"yahoo","action":"sent"}`,
		"missing fields": `{"platform":"google","action":"sent"}`,
		"unknown field":  `{"campaignId":"c1","employeeId":"e1","platform":"google","action":"sent","x":1}`,
		"malformed json": `{"campaignId":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/v1/events", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListEvents(t *testing.T) {
	f := newFixture(t)

	f.tracking.EXPECT().
		ListEvents(mock.Anything, port.ListEventsReq{IncludeEmployee: true, Limit: 20}).
		Return([]port.EnrichedEvent{{
			Event:        domain.Event{ID: 3, EmployeeDepartment: domain.UnknownDepartment},
			EmployeeName: "Ada Lovelace",
		}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/events?include_employee=1&limit=20", "")
	require.Equal(t, http.StatusOK, rec.Code)

	events := decode[[]port.EnrichedEvent](t, rec)
	require.Len(t, events, 1)
	assert.Equal(t, "Ada Lovelace", events[0].EmployeeName)
	assert.Equal(t, domain.UnknownDepartment, events[0].EmployeeDepartment)
}

func TestListEvents_EmptyIsArray(t *testing.T) {
	f := newFixture(t)

	f.tracking.EXPECT().ListEvents(mock.Anything, port.ListEventsReq{}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/v1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCampaigns(t *testing.T) {
	f := newFixture(t)

	f.tracking.EXPECT().
		CreateCampaign(mock.Anything, domain.Campaign{AdminID: "a1", Name: "Q1", Platform: domain.PlatformMicrosoft}).
		Return(&domain.Campaign{ID: "c1", Name: "Q1", Platform: domain.PlatformMicrosoft}, nil)
	f.tracking.EXPECT().
		SendCampaign(mock.Anything, port.SendCampaignReq{CampaignID: "c1", EmployeeIDs: []string{"e1", "e2"}}).
		Return(2, nil)
	f.tracking.EXPECT().
		SendCampaign(mock.Anything, port.SendCampaignReq{CampaignID: "nope", EmployeeIDs: []string{"e1"}}).
		Return(0, port.ErrCampaignNotFound)

	rec := f.do(http.MethodPost, "/api/v1/campaigns", `{"adminId":"a1","name":"Q1","platform":"microsoft"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/campaigns/c1/send", `{"employeeIds":["e1","e2"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 2, decode[sendCampaignResponse](t, rec).Sent)

	rec = f.do(http.MethodPost, "/api/v1/campaigns/nope/send", `{"employeeIds":["e1"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/campaigns/c1/send", `{"employeeIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployees(t *testing.T) {
	f := newFixture(t)

	f.directory.EXPECT().
		ImportEmployees(mock.Anything, "a1", []domain.Employee{{FirstName: "Ada", Email: "ada@example.com", Department: "IT"}}).
		Return(1, nil)
	f.directory.EXPECT().ListEmployees(mock.Anything, "a1").Return(nil, nil)
	f.directory.EXPECT().DeleteEmployee(mock.Anything, "e1").Return(nil)
	f.directory.EXPECT().DeleteEmployee(mock.Anything, "e2").Return(port.ErrEmployeeNotFound)

	rec := f.do(http.MethodPost, "/api/v1/employees/bulk",
		`{"adminId":"a1","employees":[{"firstName":"Ada","email":"ada@example.com","department":"IT"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[importEmployeesResponse](t, rec).Created)

	rec = f.do(http.MethodPost, "/api/v1/employees/bulk", `{"adminId":"a1","employees":[{"email":"not-an-email"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/employees?admin_id=a1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/v1/employees/e1", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/v1/employees/e2", "").Code)
}

type pingerFunc func(ctx context.Context) error

func (p pingerFunc) Ping(ctx context.Context) error { return p(ctx) }

func TestHealth(t *testing.T) {
	f := newFixture(t,
		WithReadiness("postgres", pingerFunc(func(context.Context) error { return nil })),
		WithReadiness("redis", pingerFunc(func(context.Context) error { return errors.New("down") })),
	)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)

	rec := f.do(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, map[string]string{"postgres": "up", "redis": "down"}, decode[map[string]string](t, rec))

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := mocks.NewMockRateLimiter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(port.RateDecision{Allowed: true, Limit: 1, Remaining: 0}, nil).Once()
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(port.RateDecision{Allowed: false, Limit: 1, RetryAfter: 1500 * time.Millisecond}, nil).Once()
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(port.RateDecision{}, errors.New("redis down")).Once()

	f := newFixture(t, WithRateLimit(RateLimit(limiter, logger)))
	f.tracking.EXPECT().ListCampaigns(mock.Anything, "").Return([]domain.Campaign{}, nil).Twice()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/campaigns", "").Code)

	rec := f.do(http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/campaigns", "").Code)

	// probes bypass the limiter
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
}

func TestRecoverer(t *testing.T) {
	f := newFixture(t)

	f.tracking.EXPECT().ListCampaigns(mock.Anything, "").RunAndReturn(func(context.Context, string) ([]domain.Campaign, error) {
		panic("boom")
	})

	rec := f.do(http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
