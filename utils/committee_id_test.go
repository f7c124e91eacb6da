package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommitteeIDLength(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{16, 16},
		{8, 8},
		{1, 1},
		{0, CommitteeIDLength},
		{-3, CommitteeIDLength},
	}
	for _, tt := range tests {
		got := GenerateCommitteeID(tt.length)
		assert.Len(t, got, tt.want, "length=%d", tt.length)
	}
}

func TestGenerateCommitteeIDAlphabet(t *testing.T) {
	for i := 0; i < 10000; i++ {
		id := GenerateCommitteeID(CommitteeIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(committeeIDAlphabet, r), "unexpected character %q in %s", r, id)
		}
	}
}

func TestGenerateCommitteeIDIsNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GenerateCommitteeID(CommitteeIDLength)] = true
	}
	assert.Greater(t, len(seen), 1)
}
