package entry

import (
	"context"
	"sync"

	"github.com/weeklycontents/backend/internal/domain"
)

var _ broadcaster = &broadcasterMock{}

type broadcasterMock struct {
	BroadcastEntryFunc func(ctx context.Context, entry domain.EntryDTO) error

	calls struct {
		BroadcastEntry []struct {
			Ctx   context.Context
			Entry domain.EntryDTO
		}
	}
	lockBroadcastEntry sync.RWMutex
}

func (mock *broadcasterMock) BroadcastEntry(ctx context.Context, entry domain.EntryDTO) error {
	if mock.BroadcastEntryFunc == nil {
		panic("broadcasterMock.BroadcastEntryFunc: method is nil but broadcaster.BroadcastEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.EntryDTO
	}{Ctx: ctx, Entry: entry}
	mock.lockBroadcastEntry.Lock()
	mock.calls.BroadcastEntry = append(mock.calls.BroadcastEntry, callInfo)
	mock.lockBroadcastEntry.Unlock()
	return mock.BroadcastEntryFunc(ctx, entry)
}

func (mock *broadcasterMock) BroadcastEntryCalls() []struct {
	Ctx   context.Context
	Entry domain.EntryDTO
} {
	mock.lockBroadcastEntry.RLock()
	calls := mock.calls.BroadcastEntry
	mock.lockBroadcastEntry.RUnlock()
	return calls
}
