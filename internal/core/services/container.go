package services

import (
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/platform/config"
	"github.com/shiftbooks/backoffice/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every application service against the repository
// container. The activity service is constructed first so the others can
// record audit entries through it.
func NewServiceContainer(repos *pgsql.RepositoryContainer, cfg *config.Config) *ports.ServiceContainer {
	activity := NewActivityService(repos.Activity)

	return &ports.ServiceContainer{
		User:         NewUserService(repos.User, activity),
		Token:        NewTokenService(cfg),
		Activity:     activity,
		Transaction:  NewTransactionService(repos.Transaction, activity),
		Availability: NewAvailabilityService(repos.Availability, activity),
		Rota:         NewRotaService(repos.Shift, activity),
		TimeClock:    NewTimeClockService(repos.TimeEntry, repos.Transaction, repos.Reporting, activity),
	}
}
