package system

import (
	"context"
	"io"
	"sync"

	"github.com/weeklycontents/backend/internal/domain"
)

var _ uploader = &uploaderMock{}

type uploaderMock struct {
	UploadFunc func(ctx context.Context, contentType string, body io.Reader) (domain.URL, error)

	calls struct {
		Upload []struct {
			Ctx         context.Context
			ContentType string
			Body        io.Reader
		}
	}
	lockUpload sync.RWMutex
}

func (mock *uploaderMock) Upload(ctx context.Context, contentType string, body io.Reader) (domain.URL, error) {
	if mock.UploadFunc == nil {
		panic("uploaderMock.UploadFunc: method is nil but uploader.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ContentType string
		Body        io.Reader
	}{Ctx: ctx, ContentType: contentType, Body: body}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, contentType, body)
}

func (mock *uploaderMock) UploadCalls() []struct {
	Ctx         context.Context
	ContentType string
	Body        io.Reader
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
