package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/kafka"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"
)

// MissingCustomerPolicy controls what happens when a sale references a
// customer id that does not exist. The original behavior silently dropped
// the reference; "reject" fails the sale instead.
type MissingCustomerPolicy string

const (
	MissingCustomerIgnore MissingCustomerPolicy = "ignore"
	MissingCustomerReject MissingCustomerPolicy = "reject"
)

// EventPublisher emits settlement events. Implementations must be safe to
// skip: publishing is best-effort and never fails a committed sale.
type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, event kafka.SaleRecordedEvent) error
	PublishStockLow(ctx context.Context, event kafka.StockLowEvent) error
}

// RecordSaleCommand represents the command to settle a sale
type RecordSaleCommand struct {
	ProductID          uint
	Quantity           int
	CustomerID         *uint
	CustomerName       string
	CustomerCardNumber string
	// TotalAmount is the caller-supplied total (e.g. after a discount). It
	// only affects loyalty accrual; the stored sale total is always
	// price x quantity.
	TotalAmount *float64
}

// RecordSaleHandler orchestrates sale settlement: validation, customer
// resolution, loyalty accrual and the atomic settlement write.
type RecordSaleHandler struct {
	sales     domain.SaleRepository
	products  productdomain.ProductRepository
	customers customerdomain.CustomerRepository
	settings  settingsdomain.SettingsRepository
	policy    MissingCustomerPolicy
	publisher EventPublisher
}

// NewRecordSaleHandler creates a new record sale handler. publisher may be
// nil when event publishing is disabled.
func NewRecordSaleHandler(
	sales domain.SaleRepository,
	products productdomain.ProductRepository,
	customers customerdomain.CustomerRepository,
	settings settingsdomain.SettingsRepository,
	policy MissingCustomerPolicy,
	publisher EventPublisher,
) *RecordSaleHandler {
	if policy == "" {
		policy = MissingCustomerIgnore
	}
	return &RecordSaleHandler{
		sales:     sales,
		products:  products,
		customers: customers,
		settings:  settings,
		policy:    policy,
		publisher: publisher,
	}
}

// Handle executes the record sale command. All validation happens before any
// mutation; a failing settlement leaves product, customer and sale stores
// untouched.
func (h *RecordSaleHandler) Handle(ctx context.Context, cmd RecordSaleCommand) (*domain.Sale, error) {
	tracer := otel.Tracer("sale-settlement")
	ctx, span := tracer.Start(ctx, "settlement.RecordSale",
		trace.WithAttributes(
			attribute.Int64("product.id", int64(cmd.ProductID)),
			attribute.Int("sale.quantity", cmd.Quantity),
		),
	)
	defer span.End()

	if cmd.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be a positive integer")
	}
	if cmd.ProductID == 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	if !product.InStock(cmd.Quantity) {
		return nil, fmt.Errorf("%w: requested %d, on hand %d",
			apperrors.ErrInsufficientStock, cmd.Quantity, product.Quantity)
	}

	cfg, err := h.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	customerID, err := h.verifyCustomerID(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	saleTotal := product.Price * float64(cmd.Quantity)

	var accrual *domain.LoyaltyAccrual
	var newCustomer *customerdomain.Customer
	if name := strings.TrimSpace(cmd.CustomerName); name != "" && cfg.LoyaltyPointsEnabled {
		customer, isNew, err := h.resolveCustomer(name, cmd.CustomerCardNumber)
		if err != nil {
			return nil, err
		}

		// A resolved loyalty customer supersedes any customer id passed in.
		// A first-time customer has no id yet; it is created inside the
		// settlement transaction and the repository fills the id in.
		if isNew {
			newCustomer = customer
			customerID = nil
		} else {
			customerID = &customer.ID
		}

		basis := saleTotal
		if cmd.TotalAmount != nil && *cmd.TotalAmount > 0 {
			basis = *cmd.TotalAmount
		}
		accrual = &domain.LoyaltyAccrual{
			CustomerID: customer.ID,
			Points:     basis * cfg.LoyaltyPointsPerDollar,
			Spent:      basis,
		}
	}

	sale := &domain.Sale{
		ProductID:  product.ID,
		CustomerID: customerID,
		Quantity:   cmd.Quantity,
		Price:      product.Price,
		Total:      saleTotal,
		CreatedAt:  time.Now(),
	}

	settlement := &domain.Settlement{Sale: sale, Accrual: accrual, NewCustomer: newCustomer}
	if err := h.sales.Settle(ctx, settlement); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.Internal(fmt.Errorf("settlement failed: %w", err))
	}

	h.publishEvents(ctx, sale, cfg)

	return sale, nil
}

// verifyCustomerID resolves an explicitly supplied customer id. Unknown ids
// are dropped or rejected depending on the configured policy.
func (h *RecordSaleHandler) verifyCustomerID(id *uint) (*uint, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}

	if _, err := h.customers.FindByID(*id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up customer: %w", err)
		}
		if h.policy == MissingCustomerReject {
			return nil, fmt.Errorf("customer not found: %w", err)
		}
		logger.Logger.Warn().
			Uint("customer_id", *id).
			Msg("Sale references unknown customer, proceeding without one")
		return nil, nil
	}

	return id, nil
}

// resolveCustomer finds the loyalty customer by card number, then by
// case-insensitive exact name (oldest record wins on duplicates). When
// neither matches it returns a fresh unsaved zero-balance customer with
// isNew set; persisting it is deferred to the settlement transaction so a
// failed settlement never leaves a customer behind.
func (h *RecordSaleHandler) resolveCustomer(name, cardNumber string) (customer *customerdomain.Customer, isNew bool, err error) {
	card := strings.TrimSpace(cardNumber)

	if card != "" {
		customer, err := h.customers.FindByCardNumber(card)
		if err == nil {
			return customer, false, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to look up card number: %w", err)
		}
	}

	customer, err = h.customers.FirstByNameFold(name)
	if err == nil {
		return customer, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up customer by name: %w", err)
	}

	created := &customerdomain.Customer{
		Name:          name,
		LoyaltyPoints: 0,
		TotalSpent:    0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if card != "" {
		created.CardNumber = &card
	}

	return created, true, nil
}

// publishEvents emits the post-settlement events. Failures are logged and
// swallowed: the sale is already committed.
func (h *RecordSaleHandler) publishEvents(ctx context.Context, sale *domain.Sale, cfg *settingsdomain.Settings) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.PublishSaleRecorded(ctx, kafka.SaleRecordedEvent{
		SaleID:     sale.ID,
		ProductID:  sale.ProductID,
		CustomerID: sale.CustomerID,
		Quantity:   sale.Quantity,
		Price:      sale.Price,
		Total:      sale.Total,
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("sale_id", sale.ID).Msg("Failed to publish sale recorded event")
	}

	// Re-read the product for the post-settlement quantity; other
	// settlements may have moved it further.
	product, err := h.products.FindByID(sale.ProductID)
	if err != nil {
		return
	}

	level := productdomain.ClassifyStock(product.Quantity,
		cfg.LowStockThreshold, cfg.ModerateStockThreshold, cfg.HighStockThreshold)
	if level == productdomain.StockOut || level == productdomain.StockLow {
		if err := h.publisher.PublishStockLow(ctx, kafka.StockLowEvent{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    product.Quantity,
			Threshold:   cfg.LowStockThreshold,
		}); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", product.ID).Msg("Failed to publish stock low event")
		}
	}
}
