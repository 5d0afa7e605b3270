package content

import (
	"sync"
	"time"
)

var _ timeSource = &timeSourceMock{}

type timeSourceMock struct {
	NowFunc func() time.Time

	calls struct {
		Now []struct{}
	}
	lockNow sync.RWMutex
}

func (mock *timeSourceMock) Now() time.Time {
	if mock.NowFunc == nil {
		panic("timeSourceMock.NowFunc: method is nil but timeSource.Now was just called")
	}
	mock.lockNow.Lock()
	mock.calls.Now = append(mock.calls.Now, struct{}{})
	mock.lockNow.Unlock()
	return mock.NowFunc()
}

func (mock *timeSourceMock) NowCalls() []struct{} {
	mock.lockNow.RLock()
	calls := mock.calls.Now
	mock.lockNow.RUnlock()
	return calls
}
