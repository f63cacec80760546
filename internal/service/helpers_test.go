package service_test

import (
	"context"

	"location-production-backend/internal/mocks"
	"location-production-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// mockStore bundles repository mocks behind a transactor that runs the unit
// of work directly against them.
type mockStore struct {
	projects  *mocks.MockProjectRepositoryInterface
	locations *mocks.MockLocationRepositoryInterface
	rentals   *mocks.MockRentalRepositoryInterface
	stages    *mocks.MockStageRepositoryInterface
	history   *mocks.MockStageHistoryRepositoryInterface
	events    *mocks.MockCalendarEventRepositoryInterface
	tx        *mocks.MockTransactorInterface
	repos     *repository.Repositories
}

func newMockStore(ctrl *gomock.Controller) *mockStore {
	m := &mockStore{
		projects:  mocks.NewMockProjectRepositoryInterface(ctrl),
		locations: mocks.NewMockLocationRepositoryInterface(ctrl),
		rentals:   mocks.NewMockRentalRepositoryInterface(ctrl),
		stages:    mocks.NewMockStageRepositoryInterface(ctrl),
		history:   mocks.NewMockStageHistoryRepositoryInterface(ctrl),
		events:    mocks.NewMockCalendarEventRepositoryInterface(ctrl),
		tx:        mocks.NewMockTransactorInterface(ctrl),
	}
	m.repos = &repository.Repositories{
		Projects:  m.projects,
		Locations: m.locations,
		Rentals:   m.rentals,
		Stages:    m.stages,
		History:   m.history,
		Events:    m.events,
	}
	m.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repos *repository.Repositories) error) error {
			return fn(m.repos)
		}).
		AnyTimes()
	return m
}
