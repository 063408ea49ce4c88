package template

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	CreateFunc       func(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error)
	GetByIDFunc      func(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error)
	GetDefaultFunc   func(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewTemplate, error)
	UpdateFunc       func(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error)
	DeleteFunc       func(ctx context.Context, userID, templateID uuid.UUID) error
	ClearDefaultFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Tmpl *domain.ReviewTemplate
		}
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			TemplateID uuid.UUID
		}
		GetDefault []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx  context.Context
			Tmpl *domain.ReviewTemplate
		}
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			TemplateID uuid.UUID
		}
		ClearDefault []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetDefault   sync.RWMutex
	lockListByUser   sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockClearDefault sync.RWMutex
}

func (mock *templateRepoMock) Create(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error) {
	if mock.CreateFunc == nil {
		panic("templateRepoMock.CreateFunc: method is nil but templateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Tmpl *domain.ReviewTemplate
	}{Ctx: ctx, Tmpl: tmpl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tmpl)
}

func (mock *templateRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Tmpl *domain.ReviewTemplate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *templateRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewTemplate, error) {
	if mock.ListByUserFunc == nil {
		panic("templateRepoMock.ListByUserFunc: method is nil but templateRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *templateRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *templateRepoMock) Update(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error) {
	if mock.UpdateFunc == nil {
		panic("templateRepoMock.UpdateFunc: method is nil but templateRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Tmpl *domain.ReviewTemplate
	}{Ctx: ctx, Tmpl: tmpl}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, tmpl)
}

func (mock *templateRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Tmpl *domain.ReviewTemplate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *templateRepoMock) Delete(ctx context.Context, userID, templateID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("templateRepoMock.DeleteFunc: method is nil but templateRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		TemplateID uuid.UUID
	}{Ctx: ctx, UserID: userID, TemplateID: templateID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, templateID)
}

func (mock *templateRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	TemplateID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *templateRepoMock) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	if mock.ClearDefaultFunc == nil {
		panic("templateRepoMock.ClearDefaultFunc: method is nil but templateRepo.ClearDefault was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockClearDefault.Lock()
	mock.calls.ClearDefault = append(mock.calls.ClearDefault, callInfo)
	mock.lockClearDefault.Unlock()
	return mock.ClearDefaultFunc(ctx, userID)
}

func (mock *templateRepoMock) ClearDefaultCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockClearDefault.RLock()
	calls := mock.calls.ClearDefault
	mock.lockClearDefault.RUnlock()
	return calls
}
