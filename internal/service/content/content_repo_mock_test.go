package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/weeklycontents/backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	UpsertFunc     func(ctx context.Context, c domain.Content) error
	DeleteFunc     func(ctx context.Context, ids []uuid.UUID) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	GetDTOByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ContentDTO, error)
	SearchFunc     func(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			C   domain.Content
		}
		Delete []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetDTOByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			Filter domain.ContentFilter
		}
	}
	lockUpsert     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetDTOByID sync.RWMutex
	lockSearch     sync.RWMutex
}

func (mock *contentRepoMock) Upsert(ctx context.Context, c domain.Content) error {
	if mock.UpsertFunc == nil {
		panic("contentRepoMock.UpsertFunc: method is nil but contentRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Content
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *contentRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	C   domain.Content
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *contentRepoMock) Delete(ctx context.Context, ids []uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contentRepoMock.DeleteFunc: method is nil but contentRepo.Delete was just called")
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

func (mock *contentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if mock.GetByIDFunc == nil {
		panic("contentRepoMock.GetByIDFunc: method is nil but contentRepo.GetByID was just called")
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

func (mock *contentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.ContentDTO, error) {
	if mock.GetDTOByIDFunc == nil {
		panic("contentRepoMock.GetDTOByIDFunc: method is nil but contentRepo.GetDTOByID was just called")
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

func (mock *contentRepoMock) GetDTOByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDTOByID.RLock()
	calls := mock.calls.GetDTOByID
	mock.lockGetDTOByID.RUnlock()
	return calls
}

func (mock *contentRepoMock) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error) {
	if mock.SearchFunc == nil {
		panic("contentRepoMock.SearchFunc: method is nil but contentRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ContentFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *contentRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.ContentFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
