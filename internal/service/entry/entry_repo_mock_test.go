package entry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/weeklycontents/backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	UpsertFunc       func(ctx context.Context, e domain.Entry) error
	DeleteFunc       func(ctx context.Context, ids []uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetDraftByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetDTOByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.EntryDTO, error)
	SearchFunc       func(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			E   domain.Entry
		}
		Delete []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetDraftByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetDTOByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			Filter domain.EntryFilter
		}
	}
	lockUpsert       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetDraftByID sync.RWMutex
	lockGetDTOByID   sync.RWMutex
	lockSearch       sync.RWMutex
}

func (mock *entryRepoMock) Upsert(ctx context.Context, e domain.Entry) error {
	if mock.UpsertFunc == nil {
		panic("entryRepoMock.UpsertFunc: method is nil but entryRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Entry
	}{Ctx: ctx, E: e}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *entryRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	E   domain.Entry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, ids []uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ids)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetDraftByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetDraftByIDFunc == nil {
		panic("entryRepoMock.GetDraftByIDFunc: method is nil but entryRepo.GetDraftByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDraftByID.Lock()
	mock.calls.GetDraftByID = append(mock.calls.GetDraftByID, callInfo)
	mock.lockGetDraftByID.Unlock()
	return mock.GetDraftByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetDraftByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDraftByID.RLock()
	calls := mock.calls.GetDraftByID
	mock.lockGetDraftByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.EntryDTO, error) {
	if mock.GetDTOByIDFunc == nil {
		panic("entryRepoMock.GetDTOByIDFunc: method is nil but entryRepo.GetDTOByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDTOByID.Lock()
	mock.calls.GetDTOByID = append(mock.calls.GetDTOByID, callInfo)
	mock.lockGetDTOByID.Unlock()
	return mock.GetDTOByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetDTOByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDTOByID.RLock()
	calls := mock.calls.GetDTOByID
	mock.lockGetDTOByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) Search(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error) {
	if mock.SearchFunc == nil {
		panic("entryRepoMock.SearchFunc: method is nil but entryRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EntryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *entryRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.EntryFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
