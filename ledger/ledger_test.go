package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "github.com/circlo/circlo-backend-go/models"
)

func entry(name string, paid, due float64) models.LedgerEntry {
	return models.LedgerEntry{Name: name, Paid: paid, Due: due, Status: "Due"}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		entries       []models.LedgerEntry
		amount        float64
		declaredCount int
		want          Totals
	}{
		{
			name: "half collected",
			entries: []models.LedgerEntry{
				entry("Alice", 500, 0),
				entry("Bob", 500, 0),
				entry("Cara", 0, 500),
				entry("Dan", 0, 500),
			},
			amount:        500,
			declaredCount: 4,
			want:          Totals{Collected: 1000, Due: 1000, Target: 2000, Progress: 50},
		},
		{
			name:          "no entries, no declared members",
			entries:       nil,
			amount:        500,
			declaredCount: 0,
			want:          Totals{Collected: 0, Due: 0, Target: 500, Progress: 0},
		},
		{
			name: "live entries outnumber declared count",
			entries: []models.LedgerEntry{
				entry("Alice", 0, 100),
				entry("Bob", 0, 100),
				entry("Cara", 0, 100),
			},
			amount:        100,
			declaredCount: 2,
			want:          Totals{Collected: 0, Due: 300, Target: 300, Progress: 0},
		},
		{
			name: "zero amount yields zero progress",
			entries: []models.LedgerEntry{
				entry("Alice", 0, 0),
			},
			amount:        0,
			declaredCount: 1,
			want:          Totals{Collected: 0, Due: 0, Target: 0, Progress: 0},
		},
		{
			name: "progress caps at 100",
			entries: []models.LedgerEntry{
				entry("Alice", 1500, 0),
			},
			amount:        500,
			declaredCount: 1,
			want:          Totals{Collected: 1500, Due: 0, Target: 500, Progress: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.entries, tt.amount, tt.declaredCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkPaid(t *testing.T) {
	e := entry("Alice", 0, 500)

	e = MarkPaid(e, 500)
	assert.Equal(t, 500.0, e.Paid)
	assert.Equal(t, 0.0, e.Due)
	assert.Equal(t, "Paid", e.Status)

	// repeat payment keeps raising paid but due stays clamped at zero
	e = MarkPaid(e, 500)
	assert.Equal(t, 1000.0, e.Paid)
	assert.Equal(t, 0.0, e.Due)
	assert.Equal(t, "Paid", e.Status)
}

func TestMarkPaidPartial(t *testing.T) {
	e := entry("Bob", 0, 500)
	e = MarkPaid(e, 300)
	assert.Equal(t, 300.0, e.Paid)
	assert.Equal(t, 200.0, e.Due)
	assert.Equal(t, "Paid", e.Status)
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("ABCD1234ABCD1234", 2, "Cara", 500)
	assert.Equal(t, "ABCD1234ABCD1234", e.CommitteeID)
	assert.Equal(t, 2, e.MemberID)
	assert.Equal(t, "Cara", e.Name)
	assert.Equal(t, 0.0, e.Paid)
	assert.Equal(t, 500.0, e.Due)
	assert.Equal(t, "Due", e.Status)
}

func TestCycle(t *testing.T) {
	assert.Equal(t, 0, Cycle(0, 500))
	assert.Equal(t, 2, Cycle(1000, 500))
	assert.Equal(t, 2, Cycle(1499, 500))
	assert.Equal(t, 0, Cycle(1000, 0))
}
