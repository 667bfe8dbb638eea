package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/ledger"
)

var _ ledger.Recorder = (*Metrics)(nil)

func TestObserveRPC(t *testing.T) {
	m := New()

	m.ObserveRPC("/ledger.v1.ExpenseService/GetBalances", "ok", 5*time.Millisecond)
	m.ObserveRPC("/ledger.v1.ExpenseService/GetBalances", "ok", 7*time.Millisecond)
	m.ObserveRPC("/ledger.v1.ExpenseService/AddExpense", "invalid_argument", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/ledger.v1.ExpenseService/GetBalances", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/ledger.v1.ExpenseService/AddExpense", "invalid_argument")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.rpcDuration))
}

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP("GET", "/api/balances", 200, time.Millisecond)
	m.ObserveHTTP("PUT", "/api/expenses/{id}", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/balances", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("PUT", "/api/expenses/{id}", "404")))
}

func TestLedgerRecorder(t *testing.T) {
	m := New()

	m.ObserveLedger(12, 4)
	m.ObserveSettlements(3)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.expenses))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.participants))

	expected := `
# HELP splitledger_ledger_settlements Transfers per computed settlement plan.
# TYPE splitledger_ledger_settlements histogram
splitledger_ledger_settlements_bucket{le="0"} 0
splitledger_ledger_settlements_bucket{le="1"} 0
splitledger_ledger_settlements_bucket{le="2"} 0
splitledger_ledger_settlements_bucket{le="4"} 1
splitledger_ledger_settlements_bucket{le="8"} 1
splitledger_ledger_settlements_bucket{le="16"} 1
splitledger_ledger_settlements_bucket{le="32"} 1
splitledger_ledger_settlements_bucket{le="64"} 1
splitledger_ledger_settlements_bucket{le="+Inf"} 1
splitledger_ledger_settlements_sum 3
splitledger_ledger_settlements_count 1
`
	require.NoError(t, testutil.CollectAndCompare(m.settlements, strings.NewReader(expected)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveLedger(1, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "splitledger_ledger_expenses 1")
	assert.Contains(t, string(body), "go_goroutines")
}
