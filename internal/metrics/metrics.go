// Package metrics holds the prometheus collectors for business events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransactionsCreated counts created transactions by type.
var TransactionsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finance_transactions_total",
		Help: "Total number of transactions created",
	},
	[]string{"type"},
)

// ReceiptsStored counts successfully stored receipt files.
var ReceiptsStored = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "finance_receipts_stored_total",
		Help: "Total number of receipt files stored",
	},
)
