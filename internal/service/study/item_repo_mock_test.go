package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc           func(ctx context.Context, item *domain.StudyItem) (*domain.StudyItem, error)
	GetByIDFunc          func(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error)
	UpdateScheduleFunc   func(ctx context.Context, userID, itemID, templateID uuid.UUID, reviews []domain.ReviewSlot) (*domain.StudyItem, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]*domain.StudyItem, error)
	DeleteFunc           func(ctx context.Context, userID, itemID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.StudyItem
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		UpdateSchedule []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ItemID     uuid.UUID
			TemplateID uuid.UUID
			Reviews    []domain.ReviewSlot
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateSchedule   sync.RWMutex
	lockListByUser       sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.StudyItem) (*domain.StudyItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.StudyItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.StudyItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByIDForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("itemRepoMock.GetByIDForUpdateFunc: method is nil but itemRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateSchedule(ctx context.Context, userID, itemID, templateID uuid.UUID, reviews []domain.ReviewSlot) (*domain.StudyItem, error) {
	if mock.UpdateScheduleFunc == nil {
		panic("itemRepoMock.UpdateScheduleFunc: method is nil but itemRepo.UpdateSchedule was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ItemID     uuid.UUID
		TemplateID uuid.UUID
		Reviews    []domain.ReviewSlot
	}{Ctx: ctx, UserID: userID, ItemID: itemID, TemplateID: templateID, Reviews: reviews}
	mock.lockUpdateSchedule.Lock()
	mock.calls.UpdateSchedule = append(mock.calls.UpdateSchedule, callInfo)
	mock.lockUpdateSchedule.Unlock()
	return mock.UpdateScheduleFunc(ctx, userID, itemID, templateID, reviews)
}

func (mock *itemRepoMock) UpdateScheduleCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ItemID     uuid.UUID
	TemplateID uuid.UUID
	Reviews    []domain.ReviewSlot
} {
	mock.lockUpdateSchedule.RLock()
	calls := mock.calls.UpdateSchedule
	mock.lockUpdateSchedule.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudyItem, error) {
	if mock.ListByUserFunc == nil {
		panic("itemRepoMock.ListByUserFunc: method is nil but itemRepo.ListByUser was just called")
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

func (mock *itemRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
