package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parpy69/pos-backend/internal/product/domain"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

type fakeProductRepo struct {
	products []domain.Product
}

func (r *fakeProductRepo) Create(p *domain.Product) error { return nil }

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeProductRepo) FindByBarcode(barcode string) (*domain.Product, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Update(p *domain.Product) error { return nil }
func (r *fakeProductRepo) Delete(id uint) error           { return nil }
func (r *fakeProductRepo) Count() (int64, error)          { return int64(len(r.products)), nil }

type fakeSettingsRepo struct {
	settings *settingsdomain.Settings
}

func (r *fakeSettingsRepo) Get() (*settingsdomain.Settings, error) {
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(s *settingsdomain.Settings) error {
	r.settings = s
	return nil
}

func TestLowStock(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		{ID: 1, Name: "Empty", Quantity: 0},
		{ID: 2, Name: "Scarce", Quantity: 3},
		{ID: 3, Name: "Fine", Quantity: 8},
		{ID: 4, Name: "Plenty", Quantity: 50},
	}}
	settings := &fakeSettingsRepo{settings: settingsdomain.DefaultSettings()}

	handler := NewLowStockHandler(products, settings)

	alerts, err := handler.Handle(LowStockQuery{})
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, uint(1), alerts[0].ProductID)
	assert.Equal(t, domain.StockOut, alerts[0].Level)
	assert.Equal(t, uint(2), alerts[1].ProductID)
	assert.Equal(t, domain.StockLow, alerts[1].Level)
}

func TestLowStock_EmptyWhenAllStocked(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		{ID: 1, Name: "Fine", Quantity: 25},
	}}
	settings := &fakeSettingsRepo{settings: settingsdomain.DefaultSettings()}

	handler := NewLowStockHandler(products, settings)

	alerts, err := handler.Handle(LowStockQuery{})
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
