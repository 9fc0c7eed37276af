package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/mocks"
	"github.com/gideontax/gideon-api/internal/services"
	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("local")
}

func singleInput(year types.TaxYear, wages, withholding int64) spine.ReturnInput {
	return spine.ReturnInput{
		TaxYear:        year,
		FilingStatus:   types.Single,
		W2Wages:        types.FromDollars(wages),
		FedWithholding: types.FromDollars(withholding),
	}
}

func TestComputeReturnWithoutStore(t *testing.T) {
	service := services.NewReturnService(nil)

	result, err := service.ComputeReturn(context.Background(), singleInput(2025, 10_000, 2_000))
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.ComputationID.String())
	assert.Equal(t, types.TaxYear(2025), result.TaxYear)
	assert.Equal(t, types.FromDollars(2_000), result.Ledger[spine.KeyRefund])
}

func TestComputeReturnUnsupportedYear(t *testing.T) {
	service := services.NewReturnService(nil)

	_, err := service.ComputeReturn(context.Background(), singleInput(1999, 10_000, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rules registered")
}

func TestComputeReturnPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockReturnStore(ctrl)
	service := services.NewReturnService(store)
	ctx := context.Background()

	var saved services.StoredReturn
	store.EXPECT().
		InsertComputedReturn(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record services.StoredReturn) error {
			saved = record
			return nil
		})

	result, err := service.ComputeReturn(ctx, singleInput(2025, 50_000, 10_000))
	require.NoError(t, err)

	assert.Equal(t, result.ComputationID, saved.ID)
	assert.Equal(t, types.TaxYear(2025), saved.TaxYear)
	assert.Equal(t, types.Single, saved.FilingStatus)
	assert.Len(t, saved.Ledger, 17)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestComputeReturnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockReturnStore(ctrl)
	service := services.NewReturnService(store)
	ctx := context.Background()

	store.EXPECT().
		InsertComputedReturn(ctx, gomock.Any()).
		Return(errors.New("database error"))

	_, err := service.ComputeReturn(ctx, singleInput(2025, 50_000, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist")
}

func TestComputeBatchPreservesOrder(t *testing.T) {
	service := services.NewReturnService(nil)

	inputs := []spine.ReturnInput{
		singleInput(2025, 10_000, 2_000),
		singleInput(1999, 10_000, 0), // unsupported year fails in its slot
		singleInput(2025, 50_000, 0),
		singleInput(2024, 50_000, 10_000),
	}

	results := service.ComputeBatch(context.Background(), inputs, 3)
	require.Len(t, results, 4)

	require.NoError(t, results[0].Err)
	assert.Equal(t, types.FromDollars(2_000), results[0].Result.Ledger[spine.KeyRefund])

	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
	assert.Equal(t, types.TaxYear(2025), results[2].Result.TaxYear)

	require.NoError(t, results[3].Err)
	assert.Equal(t, types.TaxYear(2024), results[3].Result.TaxYear)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
}

func TestComputeBatchClampsWorkerCount(t *testing.T) {
	service := services.NewReturnService(nil)

	inputs := []spine.ReturnInput{singleInput(2025, 10_000, 0)}
	results := service.ComputeBatch(context.Background(), inputs, 50)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)

	results = service.ComputeBatch(context.Background(), inputs, 0)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}

func TestGetComputedReturnWithoutStore(t *testing.T) {
	service := services.NewReturnService(nil)
	_, err := service.GetComputedReturn(context.Background(), uuid.Nil)
	assert.Error(t, err)
}
