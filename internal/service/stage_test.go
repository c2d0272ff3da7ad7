package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
	"github.com/offertrack/track-ui-api/internal/testutil"
)

// stubStageRepo is a func-field test double for core.StageRepository.
type stubStageRepo struct {
	listByProcessFunc func(ctx context.Context, processID int64) ([]*model.Stage, error)
	createFunc        func(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error)
	updateFunc        func(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error)
	deleteFunc        func(ctx context.Context, id int64) error
}

var _ core.StageRepository = (*stubStageRepo)(nil)

func (s *stubStageRepo) ListByProcess(ctx context.Context, processID int64) ([]*model.Stage, error) {
	if s.listByProcessFunc != nil {
		return s.listByProcessFunc(ctx, processID)
	}
	return nil, nil
}

func (s *stubStageRepo) Create(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, req)
	}
	return nil, nil
}

func (s *stubStageRepo) Update(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, req)
	}
	return nil, nil
}

func (s *stubStageRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return nil
}

func TestStageService_ListByProcess_SortsByOrder(t *testing.T) {
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{
		listByProcessFunc: func(context.Context, int64) ([]*model.Stage, error) {
			return []*model.Stage{
				{ID: 3, Order: 2, Name: model.StageOffer},
				{ID: 1, Order: 1, Name: model.StageApplied},
				{ID: 2, Order: 2, Name: model.StageTechnical},
			}, nil
		},
	}})

	stages, err := svc.ListByProcess(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, model.StageApplied, stages[0].Name)
	// Equal order falls back to id, keeping output stable.
	assert.Equal(t, int64(2), stages[1].ID)
	assert.Equal(t, int64(3), stages[2].ID)
}

func TestStageService_Create_AssignsNextOrder(t *testing.T) {
	var got *model.CreateStageRequest
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{
		listByProcessFunc: func(context.Context, int64) ([]*model.Stage, error) {
			return []*model.Stage{
				{ID: 1, Order: 1},
				{ID: 2, Order: 4},
			}, nil
		},
		createFunc: func(_ context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
			got = req
			return &model.Stage{ID: 3, ProcessID: req.ProcessID, Name: req.Name, Order: *req.Order}, nil
		},
	}})

	created, err := svc.Create(context.Background(), &model.CreateStageRequest{
		ProcessID: 1,
		Name:      "phone screen",
		Date:      testutil.Day(5),
	})

	require.NoError(t, err)
	require.NotNil(t, got.Order)
	assert.Equal(t, 5, *got.Order, "appends after the highest existing order")
	assert.Equal(t, model.StagePhoneScreen, created.Name)
}

func TestStageService_Create_KeepsExplicitOrder(t *testing.T) {
	listCalled := false
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{
		listByProcessFunc: func(context.Context, int64) ([]*model.Stage, error) {
			listCalled = true
			return nil, nil
		},
		createFunc: func(_ context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
			return &model.Stage{ID: 1, Order: *req.Order}, nil
		},
	}})

	created, err := svc.Create(context.Background(), &model.CreateStageRequest{
		ProcessID: 1,
		Name:      model.StageApplied,
		Date:      testutil.Day(1),
		Order:     testutil.IntPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, created.Order)
	assert.False(t, listCalled, "explicit order needs no lookup")
}

func TestStageService_Create_PreservesUnknownName(t *testing.T) {
	var got *model.CreateStageRequest
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{
		createFunc: func(_ context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
			got = req
			return &model.Stage{ID: 1}, nil
		},
	}})

	_, err := svc.Create(context.Background(), &model.CreateStageRequest{
		ProcessID: 1,
		Name:      "  Casual Chat  ",
		Date:      testutil.Day(1),
		Order:     testutil.IntPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, model.StageName("Casual Chat"), got.Name, "unrecognized names are kept verbatim")
	assert.False(t, got.Name.Known())
}

func TestStageService_Create_RejectsMissingDate(t *testing.T) {
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{}})

	_, err := svc.Create(context.Background(), &model.CreateStageRequest{
		ProcessID: 1,
		Name:      model.StageApplied,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestStageService_Update_NormalizesName(t *testing.T) {
	var got *model.UpdateStageRequest
	svc := NewStageService(StageServiceOptions{Stages: &stubStageRepo{
		updateFunc: func(_ context.Context, _ int64, req *model.UpdateStageRequest) (*model.Stage, error) {
			got = req
			return &model.Stage{ID: 1}, nil
		},
	}})

	name := model.StageName("OA")
	_, err := svc.Update(context.Background(), 1, &model.UpdateStageRequest{Name: &name})

	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, model.StageOA, *got.Name)
}
