package utils

import "math/rand"

const committeeIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CommitteeIDLength is the standard length of a shareable committee code.
const CommitteeIDLength = 16

// GenerateCommitteeID returns a random code of the given length drawn from
// uppercase letters and digits. The code is a human-shareable label, not a
// security boundary, so math/rand is enough.
func GenerateCommitteeID(length int) string {
	if length <= 0 {
		length = CommitteeIDLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = committeeIDAlphabet[rand.Intn(len(committeeIDAlphabet))]
	}
	return string(b)
}
