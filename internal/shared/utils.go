// Package shared holds helpers for handling sensitive byte buffers.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove passwords from memory once they have been handed
// off.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
