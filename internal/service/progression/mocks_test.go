package progression

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	GetByUserIDFunc          func(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	CreateFunc               func(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error)
	UpdateFunc               func(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByUserIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.UserProgress
		}
		Update []struct {
			Ctx context.Context
			P   *domain.UserProgress
		}
	}
	lockGetByUserID          sync.RWMutex
	lockGetByUserIDForUpdate sync.RWMutex
	lockCreate               sync.RWMutex
	lockUpdate               sync.RWMutex
}

func (mock *progressRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	if mock.GetByUserIDFunc == nil {
		panic("progressRepoMock.GetByUserIDFunc: method is nil but progressRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *progressRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	if mock.GetByUserIDForUpdateFunc == nil {
		panic("progressRepoMock.GetByUserIDForUpdateFunc: method is nil but progressRepo.GetByUserIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserIDForUpdate.Lock()
	mock.calls.GetByUserIDForUpdate = append(mock.calls.GetByUserIDForUpdate, callInfo)
	mock.lockGetByUserIDForUpdate.Unlock()
	return mock.GetByUserIDForUpdateFunc(ctx, userID)
}

func (mock *progressRepoMock) GetByUserIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserIDForUpdate.RLock()
	calls := mock.calls.GetByUserIDForUpdate
	mock.lockGetByUserIDForUpdate.RUnlock()
	return calls
}

func (mock *progressRepoMock) Create(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error) {
	if mock.CreateFunc == nil {
		panic("progressRepoMock.CreateFunc: method is nil but progressRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.UserProgress
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *progressRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.UserProgress
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *progressRepoMock) Update(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error) {
	if mock.UpdateFunc == nil {
		panic("progressRepoMock.UpdateFunc: method is nil but progressRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.UserProgress
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *progressRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.UserProgress
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ rankingRepo = &rankingRepoMock{}

type rankingRepoMock struct {
	UpsertFunc func(ctx context.Context, userID uuid.UUID, displayName string, level int, totalXP int64) error

	calls struct {
		Upsert []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			DisplayName string
			Level       int
			TotalXP     int64
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *rankingRepoMock) Upsert(ctx context.Context, userID uuid.UUID, displayName string, level int, totalXP int64) error {
	if mock.UpsertFunc == nil {
		panic("rankingRepoMock.UpsertFunc: method is nil but rankingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		DisplayName string
		Level       int
		TotalXP     int64
	}{Ctx: ctx, UserID: userID, DisplayName: displayName, Level: level, TotalXP: totalXP}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, displayName, level, totalXP)
}

func (mock *rankingRepoMock) UpsertCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	DisplayName string
	Level       int
	TotalXP     int64
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
