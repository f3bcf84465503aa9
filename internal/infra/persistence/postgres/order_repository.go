package postgres

import (
	"context"

	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// firstDisplayNumber is where the human-readable order sequence starts.
const firstDisplayNumber = 1000

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// NextDisplayNumber reserves the next human-readable order number. Must
// run inside the checkout transaction so concurrent checkouts serialize
// on the orders table instead of colliding.
func (repo *orderRepository) NextDisplayNumber(ctx context.Context) (int64, error) {
	var next int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(MAX(display_number) + 1, ?)", firstDisplayNumber).
		Scan(&next).Error; err != nil {
		return 0, errors.Wrap(err, "failed to reserve next order number")
	}

	return next, nil
}

// Create persists an order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConstraintError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its items and payments.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the user's orders, newest first, with items.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus overwrites the order status. Transition validity is
// enforced by the caller.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                      data.ID,
		DisplayNumber:           data.DisplayNumber,
		UserID:                  data.UserID,
		TotalAmount:             data.TotalAmount,
		Status:                  entity.OrderStatus(data.Status),
		ShippingAddressSnapshot: unmarshalJSONB(data.ShippingAddressSnapshot),
		BillingAddressSnapshot:  unmarshalJSONB(data.BillingAddressSnapshot),
		CreatedAt:               data.CreatedAt,
	}

	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			UnitPrice:   itemM.UnitPrice,
			Quantity:    itemM.Quantity,
		})
	}
	for _, paymentM := range data.Payments {
		order.Payments = append(order.Payments, &entity.Payment{
			ID:            paymentM.ID,
			OrderID:       paymentM.OrderID,
			Amount:        paymentM.Amount,
			Provider:      paymentM.Provider,
			TransactionID: paymentM.TransactionID,
			Status:        paymentM.Status,
			CreatedAt:     paymentM.CreatedAt,
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel,
// items included so GORM inserts them in the same Create call.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                      data.ID,
		DisplayNumber:           data.DisplayNumber,
		UserID:                  data.UserID,
		TotalAmount:             data.TotalAmount,
		Status:                  string(data.Status),
		ShippingAddressSnapshot: marshalJSONB(data.ShippingAddressSnapshot),
		BillingAddressSnapshot:  marshalJSONB(data.BillingAddressSnapshot),
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return orderM
}
