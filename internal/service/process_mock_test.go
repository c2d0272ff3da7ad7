package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
	"github.com/offertrack/track-ui-api/internal/mocks"
	"github.com/offertrack/track-ui-api/internal/testutil"
)

func TestProcessService_List_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProcessRepository(ctrl)
	want := []*model.Process{
		testutil.NewProcess(1).WithCompany("Acme").Build(),
		testutil.NewProcess(2).WithCompany("Globex").Build(),
	}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)
	svc := NewProcessService(ProcessServiceOptions{Repo: repo})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProcessService_Update_ForwardsIDAndWrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProcessRepository(ctrl)
	repo.EXPECT().
		Update(gomock.Any(), int64(42), gomock.Any()).
		Return(nil, apperrors.NotFound("process not found"))
	svc := NewProcessService(ProcessServiceOptions{Repo: repo})

	_, err := svc.Update(context.Background(), 42, &model.UpdateProcessRequest{
		Company: testutil.StringPtr("Initech"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
