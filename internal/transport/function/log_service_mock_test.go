package function

import (
	"context"
	"sync"

	"github.com/TGiulio/nightlog/internal/domain"
	"github.com/TGiulio/nightlog/internal/service/observationlog"
)

var _ logService = &logServiceMock{}

type logServiceMock struct {
	CreateLogFunc func(ctx context.Context, input observationlog.CreateLogInput) (*domain.Log, error)
	DeleteLogFunc func(ctx context.Context, input observationlog.DeleteLogInput) error
	GetLogFunc    func(ctx context.Context, input observationlog.GetLogInput) (*domain.Log, error)
	ListLogsFunc  func(ctx context.Context, input observationlog.ListLogsInput) ([]*domain.Log, error)
	UpdateLogFunc func(ctx context.Context, input observationlog.UpdateLogInput) (*domain.Log, error)

	calls struct {
		CreateLog []struct {
			Ctx   context.Context
			Input observationlog.CreateLogInput
		}
		DeleteLog []struct {
			Ctx   context.Context
			Input observationlog.DeleteLogInput
		}
		GetLog []struct {
			Ctx   context.Context
			Input observationlog.GetLogInput
		}
		ListLogs []struct {
			Ctx   context.Context
			Input observationlog.ListLogsInput
		}
		UpdateLog []struct {
			Ctx   context.Context
			Input observationlog.UpdateLogInput
		}
	}
	lockCreateLog sync.RWMutex
	lockDeleteLog sync.RWMutex
	lockGetLog    sync.RWMutex
	lockListLogs  sync.RWMutex
	lockUpdateLog sync.RWMutex
}

func (mock *logServiceMock) CreateLog(ctx context.Context, input observationlog.CreateLogInput) (*domain.Log, error) {
	if mock.CreateLogFunc == nil {
		panic("logServiceMock.CreateLogFunc: method is nil but logService.CreateLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observationlog.CreateLogInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateLog.Lock()
	mock.calls.CreateLog = append(mock.calls.CreateLog, callInfo)
	mock.lockCreateLog.Unlock()
	return mock.CreateLogFunc(ctx, input)
}

func (mock *logServiceMock) CreateLogCalls() []struct {
	Ctx   context.Context
	Input observationlog.CreateLogInput
} {
	mock.lockCreateLog.RLock()
	calls := mock.calls.CreateLog
	mock.lockCreateLog.RUnlock()
	return calls
}

func (mock *logServiceMock) DeleteLog(ctx context.Context, input observationlog.DeleteLogInput) error {
	if mock.DeleteLogFunc == nil {
		panic("logServiceMock.DeleteLogFunc: method is nil but logService.DeleteLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observationlog.DeleteLogInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteLog.Lock()
	mock.calls.DeleteLog = append(mock.calls.DeleteLog, callInfo)
	mock.lockDeleteLog.Unlock()
	return mock.DeleteLogFunc(ctx, input)
}

func (mock *logServiceMock) DeleteLogCalls() []struct {
	Ctx   context.Context
	Input observationlog.DeleteLogInput
} {
	mock.lockDeleteLog.RLock()
	calls := mock.calls.DeleteLog
	mock.lockDeleteLog.RUnlock()
	return calls
}

func (mock *logServiceMock) GetLog(ctx context.Context, input observationlog.GetLogInput) (*domain.Log, error) {
	if mock.GetLogFunc == nil {
		panic("logServiceMock.GetLogFunc: method is nil but logService.GetLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observationlog.GetLogInput
	}{Ctx: ctx, Input: input}
	mock.lockGetLog.Lock()
	mock.calls.GetLog = append(mock.calls.GetLog, callInfo)
	mock.lockGetLog.Unlock()
	return mock.GetLogFunc(ctx, input)
}

func (mock *logServiceMock) GetLogCalls() []struct {
	Ctx   context.Context
	Input observationlog.GetLogInput
} {
	mock.lockGetLog.RLock()
	calls := mock.calls.GetLog
	mock.lockGetLog.RUnlock()
	return calls
}

func (mock *logServiceMock) ListLogs(ctx context.Context, input observationlog.ListLogsInput) ([]*domain.Log, error) {
	if mock.ListLogsFunc == nil {
		panic("logServiceMock.ListLogsFunc: method is nil but logService.ListLogs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observationlog.ListLogsInput
	}{Ctx: ctx, Input: input}
	mock.lockListLogs.Lock()
	mock.calls.ListLogs = append(mock.calls.ListLogs, callInfo)
	mock.lockListLogs.Unlock()
	return mock.ListLogsFunc(ctx, input)
}

func (mock *logServiceMock) ListLogsCalls() []struct {
	Ctx   context.Context
	Input observationlog.ListLogsInput
} {
	mock.lockListLogs.RLock()
	calls := mock.calls.ListLogs
	mock.lockListLogs.RUnlock()
	return calls
}

func (mock *logServiceMock) UpdateLog(ctx context.Context, input observationlog.UpdateLogInput) (*domain.Log, error) {
	if mock.UpdateLogFunc == nil {
		panic("logServiceMock.UpdateLogFunc: method is nil but logService.UpdateLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observationlog.UpdateLogInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateLog.Lock()
	mock.calls.UpdateLog = append(mock.calls.UpdateLog, callInfo)
	mock.lockUpdateLog.Unlock()
	return mock.UpdateLogFunc(ctx, input)
}

func (mock *logServiceMock) UpdateLogCalls() []struct {
	Ctx   context.Context
	Input observationlog.UpdateLogInput
} {
	mock.lockUpdateLog.RLock()
	calls := mock.calls.UpdateLog
	mock.lockUpdateLog.RUnlock()
	return calls
}
