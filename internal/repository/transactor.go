package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the stores that take part in one unit of work
type Repositories struct {
	Projects  ProjectRepositoryInterface
	Locations LocationRepositoryInterface
	Rentals   RentalRepositoryInterface
	Stages    StageRepositoryInterface
	History   StageHistoryRepositoryInterface
	Events    CalendarEventRepositoryInterface
}

// NewRepositories binds every repository to the given handle, which may be a transaction
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:  NewProjectRepository(db),
		Locations: NewLocationRepository(db),
		Rentals:   NewRentalRepository(db),
		Stages:    NewStageRepository(db),
		History:   NewStageHistoryRepository(db),
		Events:    NewCalendarEventRepository(db),
	}
}

// Transactor commits or rolls back a set of repository writes as one unit
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn inside a database transaction. Returning an error
// from fn (or panicking) rolls the transaction back; the error is returned unchanged.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
