package common

// WipeByteArray zeroes a sensitive buffer in place.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
