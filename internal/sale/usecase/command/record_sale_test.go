package command

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/kafka"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zerolog.New(io.Discard)
	os.Exit(m.Run())
}

type fakeProductRepo struct {
	products map[uint]*productdomain.Product
}

func newFakeProductRepo(products ...*productdomain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[uint]*productdomain.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*productdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindByBarcode(barcode string) (*productdomain.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]productdomain.Product, error) {
	var out []productdomain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeCustomerRepo struct {
	customers []*customerdomain.Customer
	nextID    uint
}

func newFakeCustomerRepo(customers ...*customerdomain.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{nextID: 1}
	for _, c := range customers {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.customers = append(r.customers, c)
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *customerdomain.Customer) error {
	c.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, c)
	return nil
}

func (r *fakeCustomerRepo) FindByID(id uint) (*customerdomain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCustomerRepo) FindByCardNumber(cardNumber string) (*customerdomain.Customer, error) {
	for _, c := range r.customers {
		if c.CardNumber != nil && *c.CardNumber == cardNumber {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCustomerRepo) FirstByNameFold(name string) (*customerdomain.Customer, error) {
	var match *customerdomain.Customer
	for _, c := range r.customers {
		if strings.EqualFold(c.Name, name) {
			if match == nil || c.ID < match.ID {
				match = c
			}
		}
	}
	if match == nil {
		return nil, apperrors.ErrNotFound
	}
	return match, nil
}

func (r *fakeCustomerRepo) SearchByName(name string, limit int) ([]customerdomain.Customer, error) {
	var out []customerdomain.Customer
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindAll(limit, offset int) ([]customerdomain.Customer, error) {
	var out []customerdomain.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *customerdomain.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

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

// fakeSaleRepo mirrors the transactional settlement contract over in-memory
// stores: the decrement, insert and accrual all apply or none do.
type fakeSaleRepo struct {
	products  *fakeProductRepo
	customers *fakeCustomerRepo
	sales     []*domain.Sale
	nextID    uint
}

func newFakeSaleRepo(products *fakeProductRepo, customers *fakeCustomerRepo) *fakeSaleRepo {
	return &fakeSaleRepo{products: products, customers: customers, nextID: 1}
}

func (r *fakeSaleRepo) Settle(ctx context.Context, settlement *domain.Settlement) error {
	sale := settlement.Sale
	p, ok := r.products.products[sale.ProductID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if p.Quantity < sale.Quantity {
		return apperrors.ErrInsufficientStock
	}

	if nc := settlement.NewCustomer; nc != nil {
		if err := r.customers.Create(nc); err != nil {
			return err
		}
		id := nc.ID
		sale.CustomerID = &id
		if settlement.Accrual != nil {
			settlement.Accrual.CustomerID = nc.ID
		}
	}

	var customer *customerdomain.Customer
	if accrual := settlement.Accrual; accrual != nil {
		c, err := r.customers.FindByID(accrual.CustomerID)
		if err != nil {
			return apperrors.ErrNotFound
		}
		customer = c
	}

	p.Quantity -= sale.Quantity
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, sale)

	if accrual := settlement.Accrual; accrual != nil {
		customer.LoyaltyPoints += accrual.Points
		customer.TotalSpent += accrual.Spent
	}
	return nil
}

func (r *fakeSaleRepo) FindByID(id uint) (*domain.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeSaleRepo) FindAll(limit, offset int) ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) FindSince(since time.Time) ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(since) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Count() (int64, error) {
	return int64(len(r.sales)), nil
}

// failingSaleRepo rejects every settlement, standing in for a transaction
// that rolls back.
type failingSaleRepo struct{}

func (r *failingSaleRepo) Settle(ctx context.Context, settlement *domain.Settlement) error {
	return errors.New("connection reset")
}

func (r *failingSaleRepo) FindByID(id uint) (*domain.Sale, error) {
	return nil, apperrors.ErrNotFound
}

func (r *failingSaleRepo) FindAll(limit, offset int) ([]domain.Sale, error) {
	return nil, nil
}

func (r *failingSaleRepo) FindSince(since time.Time) ([]domain.Sale, error) {
	return nil, nil
}

func (r *failingSaleRepo) Count() (int64, error) {
	return 0, nil
}

type fakePublisher struct {
	saleEvents []kafka.SaleRecordedEvent
	stockLow   []kafka.StockLowEvent
}

func (p *fakePublisher) PublishSaleRecorded(ctx context.Context, event kafka.SaleRecordedEvent) error {
	p.saleEvents = append(p.saleEvents, event)
	return nil
}

func (p *fakePublisher) PublishStockLow(ctx context.Context, event kafka.StockLowEvent) error {
	p.stockLow = append(p.stockLow, event)
	return nil
}

func defaultTestSettings() *settingsdomain.Settings {
	return &settingsdomain.Settings{
		ID:                     1,
		LowStockThreshold:      5,
		ModerateStockThreshold: 10,
		HighStockThreshold:     20,
		LoyaltyPointsEnabled:   false,
		LoyaltyPointsPerDollar: 1.0,
	}
}

func TestRecordSale_DecrementsStockAndStoresSale(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 5})
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, 10.0, sale.Price)
	assert.Equal(t, 30.0, sale.Total)
	assert.Nil(t, sale.CustomerID)
	assert.Equal(t, 2, products.products[1].Quantity)
	assert.Len(t, sales.sales, 1)
}

func TestRecordSale_InsufficientStockLeavesStateUntouched(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 2})
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, Quantity: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	assert.Equal(t, 2, products.products[1].Quantity)
	assert.Empty(t, sales.sales)
}

func TestRecordSale_RejectsNonPositiveQuantity(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 5})
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	for _, qty := range []int{0, -1} {
		_, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, Quantity: qty})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}
	assert.Empty(t, sales.sales)
}

func TestRecordSale_UnknownProduct(t *testing.T) {
	products := newFakeProductRepo()
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 42, Quantity: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordSale_AccruesLoyaltyPoints(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	alice := &customerdomain.Customer{ID: 1, Name: "Alice"}
	customers := newFakeCustomerRepo(alice)
	sales := newFakeSaleRepo(products, customers)

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     5,
		CustomerName: "Alice",
	})
	require.NoError(t, err)

	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, alice.ID, *sale.CustomerID)
	assert.Equal(t, 50.0, alice.LoyaltyPoints)
	assert.Equal(t, 50.0, alice.TotalSpent)
}

func TestRecordSale_AccrualUsesCallerTotalAmount(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	alice := &customerdomain.Customer{ID: 1, Name: "Alice"}
	customers := newFakeCustomerRepo(alice)
	sales := newFakeSaleRepo(products, customers)

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	cfg.LoyaltyPointsPerDollar = 2.0
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	discounted := 40.0
	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     5,
		CustomerName: "Alice",
		TotalAmount:  &discounted,
	})
	require.NoError(t, err)

	// Stored total stays price x quantity; only the accrual uses the
	// discounted amount.
	assert.Equal(t, 50.0, sale.Total)
	assert.Equal(t, 80.0, alice.LoyaltyPoints)
	assert.Equal(t, 40.0, alice.TotalSpent)
}

func TestRecordSale_NoAccrualWhenLoyaltyDisabled(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	alice := &customerdomain.Customer{ID: 1, Name: "Alice"}
	customers := newFakeCustomerRepo(alice)
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     2,
		CustomerName: "Alice",
	})
	require.NoError(t, err)

	assert.Nil(t, sale.CustomerID)
	assert.Zero(t, alice.LoyaltyPoints)
	assert.Zero(t, alice.TotalSpent)
}

func TestRecordSale_ResolvesCustomerByCardNumber(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	card := "CARD-7"
	bob := &customerdomain.Customer{ID: 3, Name: "Bob", CardNumber: &card}
	customers := newFakeCustomerRepo(bob)
	sales := newFakeSaleRepo(products, customers)

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:          1,
		Quantity:           1,
		CustomerName:       "Someone Else",
		CustomerCardNumber: "CARD-7",
	})
	require.NoError(t, err)

	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, bob.ID, *sale.CustomerID)
	assert.Equal(t, 10.0, bob.LoyaltyPoints)
}

func TestRecordSale_DuplicateNamesResolveToOldestCustomer(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	older := &customerdomain.Customer{ID: 1, Name: "alice"}
	newer := &customerdomain.Customer{ID: 2, Name: "Alice"}
	customers := newFakeCustomerRepo(older, newer)
	sales := newFakeSaleRepo(products, customers)

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     1,
		CustomerName: "ALICE",
	})
	require.NoError(t, err)

	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, older.ID, *sale.CustomerID)
	assert.Zero(t, newer.LoyaltyPoints)
}

func TestRecordSale_CreatesCustomerWhenUnknown(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     2,
		CustomerName: "Carol",
	})
	require.NoError(t, err)

	require.NotNil(t, sale.CustomerID)
	created, err := customers.FindByID(*sale.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", created.Name)
	assert.Equal(t, 20.0, created.LoyaltyPoints)
	assert.Equal(t, 20.0, created.TotalSpent)
}

func TestRecordSale_FailedSettlementPersistsNoCustomer(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
	customers := newFakeCustomerRepo()

	cfg := defaultTestSettings()
	cfg.LoyaltyPointsEnabled = true
	settings := &fakeSettingsRepo{settings: cfg}

	handler := NewRecordSaleHandler(&failingSaleRepo{}, products, customers, settings, MissingCustomerIgnore, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		Quantity:     2,
		CustomerName: "Carol",
	})
	require.Error(t, err)

	// The first-time customer is part of the settlement transaction; when it
	// rolls back no customer may be left behind.
	assert.Empty(t, customers.customers)
}

func TestRecordSale_MissingCustomerPolicy(t *testing.T) {
	unknownID := uint(99)

	t.Run("ignore drops the reference", func(t *testing.T) {
		products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
		customers := newFakeCustomerRepo()
		sales := newFakeSaleRepo(products, customers)
		settings := &fakeSettingsRepo{settings: defaultTestSettings()}

		handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, nil)

		sale, err := handler.Handle(context.Background(), RecordSaleCommand{
			ProductID:  1,
			Quantity:   1,
			CustomerID: &unknownID,
		})
		require.NoError(t, err)
		assert.Nil(t, sale.CustomerID)
	})

	t.Run("reject fails the sale", func(t *testing.T) {
		products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 10})
		customers := newFakeCustomerRepo()
		sales := newFakeSaleRepo(products, customers)
		settings := &fakeSettingsRepo{settings: defaultTestSettings()}

		handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerReject, nil)

		_, err := handler.Handle(context.Background(), RecordSaleCommand{
			ProductID:  1,
			Quantity:   1,
			CustomerID: &unknownID,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, 10, products.products[1].Quantity)
	})
}

func TestRecordSale_PublishesEvents(t *testing.T) {
	products := newFakeProductRepo(&productdomain.Product{ID: 1, Name: "Coffee", Price: 10, Quantity: 6})
	customers := newFakeCustomerRepo()
	sales := newFakeSaleRepo(products, customers)
	settings := &fakeSettingsRepo{settings: defaultTestSettings()}
	publisher := &fakePublisher{}

	handler := NewRecordSaleHandler(sales, products, customers, settings, MissingCustomerIgnore, publisher)

	// 6 -> 3 drops below the low threshold of 5
	_, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, publisher.saleEvents, 1)
	assert.Equal(t, uint(1), publisher.saleEvents[0].ProductID)
	require.Len(t, publisher.stockLow, 1)
	assert.Equal(t, 3, publisher.stockLow[0].Quantity)
	assert.Equal(t, 5, publisher.stockLow[0].Threshold)
}
