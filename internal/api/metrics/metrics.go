// Package metrics defines and registers all custom Prometheus metrics for the
// store API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "client" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users successfully registered, by role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added to the inventory.
// Label:
//   - kind: "generic", "electronic", or "apparel"
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the inventory, by kind.",
	},
	[]string{"kind"},
)

// ProductsRemovedTotal counts products deleted from the inventory.
var ProductsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_removed_total",
		Help:      "Total number of products removed from the inventory.",
	},
)

// ProductStockLevel tracks the last observed stock of each ordered product.
// Labels:
//   - product_id: catalog id of the product
//   - product_name: display name of the product
var ProductStockLevel = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "product_stock_level",
		Help:      "Remaining stock of a product after its latest order.",
	},
	[]string{"product_id", "product_name"},
)

// LowStockAlertsTotal counts stock-alert notifications that crossed the
// low-stock threshold.
var LowStockAlertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "low_stock_alerts_total",
		Help:      "Total number of low-stock alerts raised, by product name.",
	},
	[]string{"product_name"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts successfully placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders successfully placed.",
	},
)

// OrderTotalAmount observes the monetary total of each placed order.
var OrderTotalAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_total_amount",
		Help:      "Distribution of order totals.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	},
)
