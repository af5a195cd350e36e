package common

// WipeByteArray zeroes the buffer in place. Used to scrub passwords read
// from the terminal once they have been handed to the session manager.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
