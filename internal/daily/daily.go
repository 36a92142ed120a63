// Package daily maps calendar dates to a stable secret-word index, so every
// player sharing a salt gets the same word on the same UTC day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date:
// BLAKE2b-256 keyed by salt over YYYY-MM-DD, first 8 bytes mod answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h, err := blake2b.New256(key(salt))
	if err != nil {
		// key() never exceeds blake2b.Size.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// key shrinks salts longer than the BLAKE2b key limit.
func key(salt string) []byte {
	if len(salt) <= blake2b.Size {
		return []byte(salt)
	}
	sum := blake2b.Sum256([]byte(salt))
	return sum[:]
}
