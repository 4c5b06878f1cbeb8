package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics: %v", err)
	}
	return string(body)
}

func TestMetricsExposition(t *testing.T) {
	m := New()

	m.Contribution()
	m.Contribution()
	m.Payout(decimal.NewFromInt(300), false)
	m.Payout(decimal.NewFromInt(300), true)
	m.Failure("rotate", "EMPTY_POOL")
	m.Deposit("Chapa", "Completed")

	body := scrape(t, m)
	for _, want := range []string{
		"ekub_contributions_total 2",
		"ekub_payouts_total 2",
		"ekub_payout_amount_total 600",
		"ekub_rotation_pass_resets_total 1",
		`ekub_operation_failures_total{code="EMPTY_POOL",op="rotate"} 1`,
		`ekub_deposits_total{method="Chapa",status="Completed"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in exposition", want)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Contribution()
	m.Payout(decimal.NewFromInt(1), true)
	m.Failure("join", "GROUP_FULL")
	m.Deposit("M-PESA", "Pending")
}
