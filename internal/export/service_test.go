package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cardledger/internal/export"
	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

func newService(t *testing.T) (*export.Service, *payment.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := payment.NewMockRepository(ctrl)

	return export.NewService(payment.NewService(repo)), repo
}

func TestService_WriteMonth(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().ListByMonth(gomock.Any(), "202501", "yodobashi").Return([]*payment.Payment{
		{
			Date:         time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			SourceName:   "Bookstore, Shinjuku",
			Amount:       3200,
			Quantity:     2,
			YearMonth:    "202501",
			CategoryName: "趣味",
		},
		{
			Date:       time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			SourceName: "Coffee Shop",
			Amount:     500,
			Quantity:   1,
			YearMonth:  "202501",
		},
	}, nil)

	var buf bytes.Buffer

	n, err := svc.WriteMonth(context.Background(), &buf, "202501", "yodobashi")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want := "date,source,category,amount,quantity,year_month\n" +
		"2025-01-20,\"Bookstore, Shinjuku\",趣味,3200,2,202501\n" +
		"2025-01-05,Coffee Shop,,500,1,202501\n"
	assert.Equal(t, want, buf.String())
}

func TestService_WriteMonth_Empty(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().ListByMonth(gomock.Any(), "202502", "").Return(nil, nil)

	var buf bytes.Buffer

	n, err := svc.WriteMonth(context.Background(), &buf, "202502", "")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "date,source,category,amount,quantity,year_month\n", buf.String())
}

func TestService_WriteMonth_Errors(t *testing.T) {
	svc, repo := newService(t)

	var buf bytes.Buffer

	_, err := svc.WriteMonth(context.Background(), &buf, "2025-01", "")
	assert.ErrorIs(t, err, payment.ErrInvalidYearMonth)

	repo.EXPECT().ListByMonth(gomock.Any(), "202501", "").Return(nil, errors.New("db down"))

	_, err = svc.WriteMonth(context.Background(), &buf, "202501", "")
	assert.ErrorContains(t, err, "listing payments")
	assert.Empty(t, buf.String())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "payments-202501.csv", export.FileName("202501", ""))
	assert.Equal(t, "payments-yodobashi-202501.csv", export.FileName("202501", "yodobashi"))
}
