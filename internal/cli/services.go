package cli

import (
	"location-production-backend/internal/config"
	"location-production-backend/internal/repository"
	"location-production-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type services struct {
	repos    *repository.Repositories
	stages   *service.StageService
	calendar *service.CalendarSyncService
	rentals  *service.RentalService
}

func newServices(db *gorm.DB) *services {
	v := validator.New()
	repos := repository.NewRepositories(db)
	tx := repository.NewTransactor(db)

	strict := false
	if cfg, err := config.Load(); err == nil {
		strict = cfg.StrictStageTransitions
	}

	stages := service.NewStageService(repos, tx, v).
		WithTransitionPolicy(service.NewTransitionPolicy(strict))
	calendar := service.NewCalendarSyncService(repos, tx, v)

	return &services{
		repos:    repos,
		stages:   stages,
		calendar: calendar,
		rentals:  service.NewRentalService(repos, tx, stages, calendar, v),
	}
}
