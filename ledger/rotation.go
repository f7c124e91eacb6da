package ledger

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	models "github.com/circlo/circlo-backend-go/models"
)

// NextRecipient picks who collects the pot next.
//
// "fixed" walks the member list in order, one member per completed cycle.
// "random" draws uniformly from the members, seeded with the committee code
// and the cycle number so every reader of the same committee sees the same
// pick until the cycle advances. Unknown rotation values fall back to fixed.
func NextRecipient(entries []models.LedgerEntry, rotation, committeeID string, cycle int) string {
	if len(entries) == 0 {
		return ""
	}

	if rotation == "random" {
		h := fnv.New64a()
		fmt.Fprintf(h, "%s:%d", committeeID, cycle)
		r := rand.New(rand.NewSource(int64(h.Sum64())))
		return entries[r.Intn(len(entries))].Name
	}

	return entries[cycle%len(entries)].Name
}
