// Package shared provides small helpers used by more than one binary.
package shared

// WipeByteArray overwrites b with zeros so secrets read from a terminal do not
// linger in memory longer than needed. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
