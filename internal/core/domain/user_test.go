package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shiftbooks/backoffice/internal/core/domain"
)

func TestRole_IsAdmin(t *testing.T) {
	assert.False(t, domain.RoleStaff.IsAdmin())
	assert.True(t, domain.RoleSecondaryAdmin.IsAdmin())
	assert.True(t, domain.RolePrimaryAdmin.IsAdmin())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleStaff.IsValid())
	assert.False(t, domain.Role("owner").IsValid())
}

func TestUser_EffectivePayRate(t *testing.T) {
	rate := decimal.RequireFromString("11.50")

	assert.True(t, domain.User{PayRate: &rate}.EffectivePayRate().Equal(rate))
	assert.True(t, domain.User{}.EffectivePayRate().IsZero())
}

func TestAvailabilityRequest_Overlaps(t *testing.T) {
	req := domain.AvailabilityRequest{
		Start: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 12, 17, 0, 0, 0, time.UTC),
	}

	assert.True(t, req.Overlaps(
		time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, req.Overlaps(
		time.Date(2024, 6, 12, 17, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, req.Overlaps(
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)))
}
