package crm

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/mock"
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceUpdateAdd_WaitingWithTodaysDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocumentStore(ctrl)
	svc := NewPriceUpdateService(store, logger.Nop())

	today := time.Now().UTC().Format("2006-01-02")
	store.EXPECT().Add(gomock.Any(), "price_updates", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) (string, error) {
			assert.Equal(t, models.PriceUpdateStatusWaiting, fields["status"])
			assert.Equal(t, today, fields["date"])
			return "pu-1", nil
		})

	update, err := svc.Add(context.Background(), "caustic soda list revised")

	require.NoError(t, err)
	assert.Equal(t, "pu-1", update.ID)
	assert.Equal(t, models.PriceUpdateStatusWaiting, update.Status)
	assert.Equal(t, today, update.Date)
}

func TestPriceUpdateAdd_EmptyDescriptionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocumentStore(ctrl)
	svc := NewPriceUpdateService(store, logger.Nop())

	_, err := svc.Add(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestPriceUpdateList_OrdersByDateDescending(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocumentStore(ctrl)
	svc := NewPriceUpdateService(store, logger.Nop())

	store.EXPECT().List(gomock.Any(), "price_updates", "date", true).
		Return([]docstore.Document{
			{ID: "pu-2", Fields: map[string]any{"description": "later", "status": "Waiting", "date": "2026-08-30"}},
			{ID: "pu-1", Fields: map[string]any{"description": "earlier", "status": "Waiting", "date": "2026-08-01"}},
		}, nil)

	updates, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "pu-2", updates[0].ID)
	assert.Equal(t, "pu-1", updates[1].ID)
}

func TestOceanFreight_AddListDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocumentStore(ctrl)
	svc := NewOceanFreightService(store, logger.Nop())

	store.EXPECT().Add(gomock.Any(), "ocean_freight", gomock.Any()).Return("of-1", nil)
	store.EXPECT().List(gomock.Any(), "ocean_freight", "date", true).
		Return([]docstore.Document{
			{ID: "of-1", Fields: map[string]any{"description": "MSC container ETA Sep 12", "status": "Waiting", "date": "2026-09-01"}},
		}, nil)
	store.EXPECT().Delete(gomock.Any(), "ocean_freight", "of-1").Return(nil)

	freight, err := svc.Add(context.Background(), "MSC container ETA Sep 12")
	require.NoError(t, err)
	assert.Equal(t, "of-1", freight.ID)

	freights, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, freights, 1)
	assert.Equal(t, "MSC container ETA Sep 12", freights[0].Description)

	require.NoError(t, svc.Delete(context.Background(), "of-1"))
}
