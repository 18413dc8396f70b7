package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/SickWater/clothing-store/metrics"
	"github.com/SickWater/clothing-store/models"
)

// CheckoutInput is a client-submitted order request. Items usually come
// from the cart but are accepted as an independent payload.
type CheckoutInput struct {
	CustomerName string         `json:"customer_name"`
	Phone        string         `json:"phone"`
	Location     string         `json:"location"`
	Items        []CheckoutItem `json:"items"`
}

// CheckoutItem identifies one requested line.
type CheckoutItem struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CheckoutResult is the created order plus the product ids that were
// skipped because they no longer resolve to an active product.
type CheckoutResult struct {
	Order   *models.Order `json:"order"`
	Skipped []uint        `json:"skipped_product_ids,omitempty"`
}

// OrderService converts item selections into persisted orders and walks
// them through their status lifecycle.
type OrderService struct {
	checkout CheckoutStore
	orders   OrderStore
}

// NewOrderService creates an order service over the given stores.
func NewOrderService(checkout CheckoutStore, orders OrderStore) *OrderService {
	return &OrderService{checkout: checkout, orders: orders}
}

// Checkout validates the request, re-resolves each item against the live
// catalog, decrements per-size stock and persists the order — all in one
// transaction. Items whose product has vanished are skipped and reported
// back; a shortfall on any surviving item rejects the whole checkout.
func (s *OrderService) Checkout(ctx context.Context, userID uint, input CheckoutInput) (*CheckoutResult, error) {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Location) == "" {
		return nil, Validationf("customer name, phone and location are required")
	}
	if len(input.Items) == 0 {
		return nil, Validationf("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, Validationf("quantity must be at least 1")
		}
	}

	result := &CheckoutResult{}

	err := s.checkout.Transact(ctx, func(tx CheckoutTx) error {
		var orderItems []models.OrderItem
		var total float64

		for _, item := range input.Items {
			product, err := tx.ProductForUpdate(item.ProductID)
			if errors.Is(err, ErrNotFound) {
				result.Skipped = append(result.Skipped, item.ProductID)
				continue
			}
			if err != nil {
				return err
			}
			if !product.IsActive {
				result.Skipped = append(result.Skipped, item.ProductID)
				continue
			}

			// Prices are always re-resolved here; cart snapshots are
			// display-only.
			price := product.CurrentPrice()

			if len(product.Sizes) > 0 {
				entry := product.SizeEntry(item.Size)
				if entry == nil {
					return Validationf("size %s not available for %s", item.Size, product.Name)
				}
				if entry.Stock < item.Quantity {
					return fmt.Errorf("%s (%s): %w", product.Name, item.Size, ErrInsufficientStock)
				}
				entry.Stock -= item.Quantity
			} else if !product.InStock {
				return fmt.Errorf("%s: %w", product.Name, ErrInsufficientStock)
			}
			product.PurchaseCount += item.Quantity

			if err := tx.SaveProduct(product); err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Size:      item.Size,
				Quantity:  item.Quantity,
				Price:     price,
			})
			total += price * float64(item.Quantity)
		}

		if len(orderItems) == 0 {
			return Validationf("no valid items in order")
		}

		order := &models.Order{
			OrderNumber:  newOrderNumber(userID),
			UserID:       userID,
			CustomerName: input.CustomerName,
			Phone:        input.Phone,
			Location:     input.Location,
			Items:        orderItems,
			Total:        total,
			Status:       models.OrderStatusPending,
		}
		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		if err := tx.ClearCart(userID); err != nil {
			return err
		}

		result.Order = order
		return nil
	})
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderItemsSkipped.Add(float64(len(result.Skipped)))

	log.WithFields(log.Fields{
		"order_number": result.Order.OrderNumber,
		"user_id":      userID,
		"total":        result.Order.Total,
		"items":        len(result.Order.Items),
		"skipped":      len(result.Skipped),
	}).Info("order created")

	return result, nil
}

// List returns orders newest first with the total count, optionally
// filtered by status.
func (s *OrderService) List(ctx context.Context, status string, limit, offset int) ([]models.Order, int64, error) {
	return s.orders.List(ctx, status, limit, offset)
}

// ListByUser returns the orders placed by one user, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Get returns one order with its items.
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Deliver marks a pending order delivered. Delivering an already
// delivered order is a no-op; cancelled orders cannot be delivered.
func (s *OrderService) Deliver(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case models.OrderStatusDelivered:
		return order, nil
	case models.OrderStatusCancelled:
		return nil, Validationf("cancelled orders cannot be delivered")
	}
	if err := s.orders.UpdateStatus(ctx, id, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusDelivered
	return order, nil
}

// Cancel lets the placing user cancel a still-pending order, restoring
// the stock the checkout took.
func (s *OrderService) Cancel(ctx context.Context, userID, id uint) (*models.Order, error) {
	var cancelled *models.Order

	err := s.checkout.Transact(ctx, func(tx CheckoutTx) error {
		order, err := tx.FindOrder(id)
		if err != nil {
			return err
		}
		if order.UserID != userID {
			return ErrNotFound
		}
		if order.Status != models.OrderStatusPending {
			return Validationf("only pending orders can be cancelled")
		}

		for _, item := range order.Items {
			product, err := tx.ProductForUpdate(item.ProductID)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if entry := product.SizeEntry(item.Size); entry != nil {
				entry.Stock += item.Quantity
			}
			if err := tx.SaveProduct(product); err != nil {
				return err
			}
		}

		if err := tx.UpdateOrderStatus(id, models.OrderStatusCancelled); err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_number": cancelled.OrderNumber,
		"user_id":      userID,
	}).Info("order cancelled")

	return cancelled, nil
}

func newOrderNumber(userID uint) string {
	return fmt.Sprintf("ORD-%d-%s", userID, strings.ToUpper(uuid.NewString()[:8]))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case IsValidation(err):
		return "validation"
	default:
		return "persistence"
	}
}
