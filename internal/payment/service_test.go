package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

func newService(t *testing.T) (*payment.Service, *payment.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := payment.NewMockRepository(ctrl)

	return payment.NewService(repo), repo
}

func TestService_ListByMonth(t *testing.T) {
	tests := []struct {
		name      string
		yearMonth string
		setupMock func(m *payment.MockRepository)
		wantTotal int64
		wantErr   error
	}{
		{
			name:      "Success",
			yearMonth: "202501",
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().ListByMonth(gomock.Any(), "202501", "yodobashi").Return([]*payment.Payment{
					{Amount: 3200}, {Amount: 500},
				}, nil)
			},
			wantTotal: 3700,
		},
		{
			name:      "InvalidYearMonth",
			yearMonth: "202513",
			wantErr:   payment.ErrInvalidYearMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.ListByMonth(context.Background(), tt.yearMonth, "yodobashi")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Len(t, got.Payments, 2)
		})
	}
}

func TestService_SourceTotals_DefaultLimit(t *testing.T) {
	svc, repo := newService(t)

	r := payment.Range{From: "202401", To: "202412"}
	repo.EXPECT().SourceTotals(gomock.Any(), r, payment.DefaultSourceLimit).Return(nil, nil)

	_, err := svc.SourceTotals(context.Background(), r, 0)
	assert.NoError(t, err)
}

func TestService_RangeValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.MonthlyTotals(context.Background(), payment.Range{From: "2024-01"})
	assert.ErrorIs(t, err, payment.ErrInvalidYearMonth)

	_, err = svc.CategoryTotals(context.Background(), payment.Range{To: "202400"})
	assert.ErrorIs(t, err, payment.ErrInvalidYearMonth)
}

func TestService_CategoryTotals(t *testing.T) {
	svc, repo := newService(t)

	food := uuid.New()
	repo.EXPECT().CategoryTotals(gomock.Any(), payment.Range{}).Return([]*payment.CategoryTotal{
		{CategoryID: &food, Name: "Food", Total: 1000, Count: 2},
		{CategoryID: nil, Total: 5000, Count: 1},
	}, nil)

	got, err := svc.CategoryTotals(context.Background(), payment.Range{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, payment.UncategorizedName, got[0].Name)
	assert.Equal(t, int64(5000), got[0].Total)
	assert.Equal(t, "Food", got[1].Name)
}

func TestService_SourceDetail(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()

	repo.EXPECT().GetSource(gomock.Any(), id).Return(&payment.Source{ID: id, Name: "Coffee Shop"}, nil)
	repo.EXPECT().ListBySource(gomock.Any(), id, "").Return([]*payment.Payment{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Amount: 500},
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 400},
		{Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Amount: 300},
	}, nil)

	got, err := svc.SourceDetail(context.Background(), id, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1200), got.Total)
	assert.Equal(t, 3, got.Count)
	assert.True(t, decimal.NewFromInt(400).Equal(got.Average))
	assert.Equal(t, []payment.YearlyTotal{
		{Year: 2025, Total: 900, Count: 2},
		{Year: 2024, Total: 300, Count: 1},
	}, got.Yearly)
}

func TestService_SourceDetail_NotFound(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()

	repo.EXPECT().GetSource(gomock.Any(), id).Return(nil, payment.ErrNotFound)

	_, err := svc.SourceDetail(context.Background(), id, "")
	assert.ErrorIs(t, err, payment.ErrNotFound)
}

func TestService_Dashboard(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		monthly     []*payment.MonthlyTotal
		wantChange  string
		wantAverage string
	}{
		{
			name: "Increase",
			monthly: []*payment.MonthlyTotal{
				{YearMonth: "202412", Total: 3000, Count: 3},
				{YearMonth: "202501", Total: 3700, Count: 2},
			},
			wantChange:  "23.3",
			wantAverage: "1850",
		},
		{
			name: "Decrease",
			monthly: []*payment.MonthlyTotal{
				{YearMonth: "202412", Total: 4000, Count: 1},
				{YearMonth: "202501", Total: 1000, Count: 3},
			},
			wantChange:  "-75",
			wantAverage: "333",
		},
		{
			name: "NoPreviousMonth",
			monthly: []*payment.MonthlyTotal{
				{YearMonth: "202501", Total: 1000, Count: 1},
			},
			wantAverage: "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			thisMonth := payment.Range{From: "202501", To: "202501"}

			repo.EXPECT().MonthlyTotals(gomock.Any(), payment.Range{From: "202412", To: "202501"}).Return(tt.monthly, nil)
			repo.EXPECT().RecentImports(gomock.Any(), 5).Return([]*payment.RecentImport{{FileName: "202501.csv"}}, nil)
			repo.EXPECT().SourceTotals(gomock.Any(), thisMonth, 5).Return([]*payment.SourceTotal{{Name: "Bookstore"}}, nil)
			repo.EXPECT().CategoryTotals(gomock.Any(), thisMonth).Return(nil, nil)

			got, err := svc.Dashboard(context.Background(), now)
			require.NoError(t, err)

			assert.Equal(t, "202501", got.Current.YearMonth)
			assert.Equal(t, "202412", got.Previous.YearMonth)
			assert.Equal(t, tt.wantAverage, got.AveragePayment.String())

			if tt.wantChange == "" {
				assert.Nil(t, got.ChangePercent)
			} else {
				require.NotNil(t, got.ChangePercent)
				assert.Equal(t, tt.wantChange, got.ChangePercent.String())
			}

			assert.Len(t, got.RecentImports, 1)
			assert.Len(t, got.TopSources, 1)
		})
	}
}

func TestService_Dashboard_YearBoundary(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().MonthlyTotals(gomock.Any(), payment.Range{From: "202402", To: "202403"}).Return(nil, nil)
	repo.EXPECT().RecentImports(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().SourceTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().CategoryTotals(gomock.Any(), gomock.Any()).Return(nil, nil)

	// March 31st must not roll the previous month forward to March 2nd.
	got, err := svc.Dashboard(context.Background(), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "202402", got.Previous.YearMonth)
	assert.True(t, got.AveragePayment.IsZero())
}

func TestService_Dashboard_Error(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().MonthlyTotals(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Dashboard(context.Background(), time.Now())
	assert.ErrorContains(t, err, "monthly totals")
}

func TestValidYearMonth(t *testing.T) {
	assert.True(t, payment.ValidYearMonth("202501"))
	assert.True(t, payment.ValidYearMonth("202412"))
	assert.False(t, payment.ValidYearMonth("202500"))
	assert.False(t, payment.ValidYearMonth("2025-01"))
	assert.False(t, payment.ValidYearMonth(""))
}
