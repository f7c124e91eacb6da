// Package ledger holds the contribution math for a committee: totals,
// payment application, and payout rotation. Everything here is pure so the
// dashboard handler stays a thin fetch-compute-respond pass.
package ledger

import (
	"math"

	models "github.com/circlo/circlo-backend-go/models"
)

// Totals is the aggregated financial view of one committee.
type Totals struct {
	Collected float64 `json:"totalCollected"`
	Due       float64 `json:"totalDue"`
	Target    float64 `json:"totalTarget"`
	Progress  int     `json:"progress"`
}

// ComputeTotals sums the entries against the committee's monthly amount.
// The target counts whichever is larger of the declared member count and the
// live entry count, never less than one slot.
func ComputeTotals(entries []models.LedgerEntry, amount float64, declaredCount int) Totals {
	var collected, due float64
	for _, e := range entries {
		collected += e.Paid
		due += e.Due
	}

	slots := declaredCount
	if len(entries) > slots {
		slots = len(entries)
	}
	if slots < 1 {
		slots = 1
	}
	target := amount * float64(slots)

	progress := 0
	if target > 0 {
		progress = int(math.Round(collected / target * 100))
		if progress > 100 {
			progress = 100
		}
	}

	return Totals{
		Collected: collected,
		Due:       due,
		Target:    target,
		Progress:  progress,
	}
}

// MarkPaid applies one monthly contribution to the entry. Paid is not capped,
// so a member can keep contributing past their due; Due clamps at zero.
func MarkPaid(e models.LedgerEntry, amount float64) models.LedgerEntry {
	e.Paid += amount
	e.Due = math.Max(0, e.Due-amount)
	e.Status = "Paid"
	return e
}

// NewEntry seeds the standing for one member: nothing paid, one monthly
// contribution due.
func NewEntry(committeeID string, memberID int, name string, amount float64) models.LedgerEntry {
	return models.LedgerEntry{
		CommitteeID: committeeID,
		MemberID:    memberID,
		Name:        name,
		Paid:        0,
		Due:         amount,
		Status:      "Due",
	}
}

// Cycle reports how many full contributions have been collected so far,
// which is what the rotation advances on.
func Cycle(collected, amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(collected / amount)
}
