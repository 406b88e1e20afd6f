package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/SahilSawant11/mizu/internal/models"
	"github.com/SahilSawant11/mizu/internal/records"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	store, err := records.OpenSQLite(context.Background(), t.TempDir()+"/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewService(NewSQLiteRepository(store.DB))
}

func TestRepository_GetAbsentReturnsNil(t *testing.T) {
	svc := setupService(t)

	raw, err := svc.repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRepository_SetOverwrites(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.repo.Set(ctx, "k", []byte("one")))
	require.NoError(t, svc.repo.Set(ctx, "k", []byte("two")))

	raw, err := svc.repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), raw)
}

func TestRepository_Delete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, svc.repo.Delete(ctx, "k"))

	raw, err := svc.repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// deleting an absent key is not an error
	assert.NoError(t, svc.repo.Delete(ctx, "k"))
}

func TestBudget_RoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	b, err := svc.Budget(ctx)
	require.NoError(t, err)
	assert.Nil(t, b)

	want := &Budget{Amount: 5000, Period: PeriodMonthly, Enabled: true}
	require.NoError(t, svc.SetBudget(ctx, want))

	got, err := svc.Budget(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, svc.ClearBudget(ctx))
	got, err = svc.Budget(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBudget_Validate(t *testing.T) {
	svc := setupService(t)

	err := svc.SetBudget(context.Background(), &Budget{Amount: 0, Period: PeriodDaily})
	assert.ErrorIs(t, err, common.ErrValidation)

	err = svc.SetBudget(context.Background(), &Budget{Amount: 100, Period: "yearly"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestBudget_Window(t *testing.T) {
	// 2024-01-17 is a Wednesday
	now := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period BudgetPeriod
		want   models.DateRange
	}{
		{"daily", PeriodDaily, models.DateRange{Start: "2024-01-17", End: "2024-01-17"}},
		{"weekly", PeriodWeekly, models.DateRange{Start: "2024-01-15", End: "2024-01-21"}},
		{"monthly", PeriodMonthly, models.DateRange{Start: "2024-01-01", End: "2024-01-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Budget{Amount: 100, Period: tt.period, Enabled: true}
			assert.Equal(t, tt.want, b.Window(now))
		})
	}
}

func TestBudget_Window_WeekStartsMonday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2024, 1, 21, 8, 0, 0, 0, time.UTC)
	b := &Budget{Amount: 100, Period: PeriodWeekly}
	assert.Equal(t, models.DateRange{Start: "2024-01-15", End: "2024-01-21"}, b.Window(sunday))
}

func TestPin_RoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	set, err := svc.PinSet(ctx)
	require.NoError(t, err)
	assert.False(t, set)

	assert.ErrorIs(t, svc.VerifyPin(ctx, "1234"), common.ErrPinNotSet)

	require.NoError(t, svc.SetPin(ctx, "1234"))

	set, err = svc.PinSet(ctx)
	require.NoError(t, err)
	assert.True(t, set)

	assert.NoError(t, svc.VerifyPin(ctx, "1234"))
	assert.ErrorIs(t, svc.VerifyPin(ctx, "4321"), common.ErrPinMismatch)

	require.NoError(t, svc.ClearPin(ctx))
	assert.ErrorIs(t, svc.VerifyPin(ctx, "1234"), common.ErrPinNotSet)
}

func TestPin_TooShort(t *testing.T) {
	svc := setupService(t)

	assert.ErrorIs(t, svc.SetPin(context.Background(), "123"), common.ErrValidation)
}
