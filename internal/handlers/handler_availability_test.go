package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/dto"
	"github.com/shiftbooks/backoffice/internal/middleware"
)

// stubAvailabilitySvc records the arguments of the last ListOverlapping call.
type stubAvailabilitySvc struct {
	gotStart        time.Time
	gotEnd          time.Time
	gotApprovedOnly bool
}

func (s *stubAvailabilitySvc) Submit(ctx context.Context, actor domain.User, req dto.CreateAvailabilityRequest) (*domain.AvailabilityRequest, error) {
	return nil, nil
}

func (s *stubAvailabilitySvc) ListForUser(ctx context.Context, actor domain.User, targetUID string) ([]domain.AvailabilityRequest, error) {
	return nil, nil
}

func (s *stubAvailabilitySvc) ListPending(ctx context.Context, admin domain.User) ([]domain.AvailabilityRequest, error) {
	return nil, nil
}

func (s *stubAvailabilitySvc) ListOverlapping(ctx context.Context, admin domain.User, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error) {
	s.gotStart = start
	s.gotEnd = end
	s.gotApprovedOnly = approvedOnly
	return []domain.AvailabilityRequest{}, nil
}

func (s *stubAvailabilitySvc) Approve(ctx context.Context, admin domain.User, id int64) (*domain.AvailabilityRequest, error) {
	return nil, nil
}

func (s *stubAvailabilitySvc) Reject(ctx context.Context, admin domain.User, id int64) error {
	return nil
}

func (s *stubAvailabilitySvc) Delete(ctx context.Context, actor domain.User, id int64) error {
	return nil
}

func overlapRequest(t *testing.T, stub *stubAvailabilitySvc, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/rota?"+query, nil)
	admin := domain.User{UID: "admin-1", Email: "admin-1@example.com", Role: domain.RolePrimaryAdmin, Status: domain.UserActive}
	c.Request = req.WithContext(middleware.ContextWithUser(req.Context(), admin))

	h := &availabilityHandler{availabilityService: stub}
	h.listOverlapping(c)
	return w
}

func TestListOverlapping_DefaultsToApprovedOnlyWithRawWindow(t *testing.T) {
	stub := &stubAvailabilitySvc{}

	w := overlapRequest(t, stub, "start_date=2024-06-03&end_date=2024-06-09")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.gotApprovedOnly)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), stub.gotStart)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), stub.gotEnd)
}

func TestListOverlapping_ExplicitFalseIncludesPending(t *testing.T) {
	stub := &stubAvailabilitySvc{}

	w := overlapRequest(t, stub, "start_date=2024-06-03&end_date=2024-06-09&approved_only=false")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, stub.gotApprovedOnly)
}
