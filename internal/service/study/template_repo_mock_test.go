package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error)
	GetDefaultFunc func(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error)

	calls struct {
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			TemplateID uuid.UUID
		}
		GetDefault []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockGetDefault sync.RWMutex
}

func (mock *templateRepoMock) GetByID(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error) {
	if mock.GetByIDFunc == nil {
		panic("templateRepoMock.GetByIDFunc: method is nil but templateRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		TemplateID uuid.UUID
	}{Ctx: ctx, UserID: userID, TemplateID: templateID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, templateID)
}

func (mock *templateRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	TemplateID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *templateRepoMock) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error) {
	if mock.GetDefaultFunc == nil {
		panic("templateRepoMock.GetDefaultFunc: method is nil but templateRepo.GetDefault was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetDefault.Lock()
	mock.calls.GetDefault = append(mock.calls.GetDefault, callInfo)
	mock.lockGetDefault.Unlock()
	return mock.GetDefaultFunc(ctx, userID)
}

func (mock *templateRepoMock) GetDefaultCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetDefault.RLock()
	calls := mock.calls.GetDefault
	mock.lockGetDefault.RUnlock()
	return calls
}
