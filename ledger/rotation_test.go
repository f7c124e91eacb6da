package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "github.com/circlo/circlo-backend-go/models"
)

func names(es []models.LedgerEntry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestNextRecipientFixed(t *testing.T) {
	entries := []models.LedgerEntry{
		entry("Alice", 0, 500),
		entry("Bob", 0, 500),
		entry("Cara", 0, 500),
	}

	assert.Equal(t, "Alice", NextRecipient(entries, "fixed", "CODE", 0))
	assert.Equal(t, "Bob", NextRecipient(entries, "fixed", "CODE", 1))
	assert.Equal(t, "Cara", NextRecipient(entries, "fixed", "CODE", 2))
	// wraps around after a full round
	assert.Equal(t, "Alice", NextRecipient(entries, "fixed", "CODE", 3))
}

func TestNextRecipientRandomIsStable(t *testing.T) {
	entries := []models.LedgerEntry{
		entry("Alice", 0, 500),
		entry("Bob", 0, 500),
		entry("Cara", 0, 500),
		entry("Dan", 0, 500),
	}

	first := NextRecipient(entries, "random", "ABCD1234ABCD1234", 1)
	assert.Contains(t, names(entries), first)

	// same committee and cycle always picks the same member
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NextRecipient(entries, "random", "ABCD1234ABCD1234", 1))
	}
}

func TestNextRecipientRandomVariesWithSeed(t *testing.T) {
	entries := []models.LedgerEntry{
		entry("Alice", 0, 500),
		entry("Bob", 0, 500),
		entry("Cara", 0, 500),
		entry("Dan", 0, 500),
		entry("Eve", 0, 500),
	}

	seen := map[string]bool{}
	for cycle := 0; cycle < 50; cycle++ {
		seen[NextRecipient(entries, "random", "ABCD1234ABCD1234", cycle)] = true
	}
	// 50 cycles over 5 members should not keep landing on one member
	assert.Greater(t, len(seen), 1)
}

func TestNextRecipientEdgeCases(t *testing.T) {
	assert.Equal(t, "", NextRecipient(nil, "fixed", "CODE", 0))
	assert.Equal(t, "", NextRecipient(nil, "random", "CODE", 0))

	entries := []models.LedgerEntry{entry("Alice", 0, 500)}
	// unknown rotation falls back to fixed
	assert.Equal(t, "Alice", NextRecipient(entries, "", "CODE", 0))
	assert.Equal(t, "Alice", NextRecipient(entries, "weekly", "CODE", 7))
}
