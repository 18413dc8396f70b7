package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated tracks orders that reached the database
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	// OrderItemsSkipped tracks checkout lines dropped because their
	// product no longer resolves
	OrderItemsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_order_items_skipped_total",
			Help: "Total number of checkout items skipped for missing products",
		},
	)

	// CheckoutFailures tracks rejected checkouts by reason
	CheckoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_failures_total",
			Help: "Total number of rejected checkouts",
		},
		[]string{"reason"},
	)

	// StockAdjustments tracks manual stock mutations by direction
	StockAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_stock_adjustments_total",
			Help: "Total number of manual stock adjustments",
		},
		[]string{"direction"},
	)
)
