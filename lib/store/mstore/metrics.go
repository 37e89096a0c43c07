package mstore

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/stubDB/lib/store"
	vm "github.com/VictoriaMetrics/metrics"
)

// The memory store exposes counters and a delay summary in the default
// VictoriaMetrics set. Host applications that want them scrape-able expose
// the set themselves (see vm.WritePrometheus); everything here stays
// process-local otherwise.

var (
	errCounter   = vm.GetOrCreateCounter(`stubdb_store_errors_total`)
	delaySummary = vm.GetOrCreateSummary(`stubdb_store_delay_seconds`)
)

// countOp increments the per-operation counter.
func countOp(op store.Operation) {
	vm.GetOrCreateCounter(fmt.Sprintf(`stubdb_store_operations_total{op=%q}`, op)).Inc()
}

// countErr increments the store error counter.
func countErr() {
	errCounter.Inc()
}

// timeDelay runs fn (the simulated delay) and records its wall time.
func timeDelay(fn func() error) error {
	start := time.Now()
	err := fn()
	delaySummary.UpdateDuration(start)
	return err
}
