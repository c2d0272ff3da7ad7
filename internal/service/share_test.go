package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
	"github.com/offertrack/track-ui-api/internal/testutil"
)

func newShareService(repo *stubProcessRepo) *ShareService {
	return NewShareService(ShareServiceOptions{
		Processes: repo,
		Charts:    NewChartService(ChartServiceOptions{Location: time.UTC}),
	})
}

func TestShareService_SetPublic_ReturnsShareID(t *testing.T) {
	svc := newShareService(&stubProcessRepo{
		setPublicFunc: func(_ context.Context, id int64, public bool) (*model.Process, error) {
			assert.True(t, public)
			return testutil.NewProcess(id).Shared("abc123").Build(), nil
		},
	})

	proc, err := svc.SetPublic(context.Background(), 1, true)

	require.NoError(t, err)
	assert.True(t, proc.IsPublic)
	require.NotNil(t, proc.ShareID)
	assert.Equal(t, "abc123", *proc.ShareID)
}

func TestShareService_Resolve_BuildsCharts(t *testing.T) {
	svc := newShareService(&stubProcessRepo{
		getByShareIDFunc: func(_ context.Context, shareID string) (*model.ProcessDetail, error) {
			return testutil.NewProcess(1).
				Shared(shareID).
				WithStage(model.StageApplied, testutil.Day(1)).
				WithStage(model.StageOffer, testutil.Day(9)).
				BuildDetail(), nil
		},
	})

	shared, err := svc.Resolve(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), shared.Process.ID)
	require.NotNil(t, shared.Charts)
	assert.Equal(t, 1, shared.Charts.Summary.TotalProcesses)
	assert.Len(t, shared.Charts.StageCounts, 2)
}

func TestShareService_Resolve_RejectsEmptyID(t *testing.T) {
	svc := newShareService(&stubProcessRepo{})

	_, err := svc.Resolve(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestShareService_Resolve_HidesPrivateProcess(t *testing.T) {
	svc := newShareService(&stubProcessRepo{
		getByShareIDFunc: func(_ context.Context, shareID string) (*model.ProcessDetail, error) {
			// Upstream may still resolve a share id whose process has since
			// been made private again.
			d := testutil.NewProcess(1).Shared(shareID).BuildDetail()
			d.IsPublic = false
			return d, nil
		},
	})

	_, err := svc.Resolve(context.Background(), "abc123")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
