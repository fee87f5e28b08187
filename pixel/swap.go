package pixel

import "encoding/binary"

// Swap16 exchanges the two bytes of every 16-bit pixel in src and stores the
// result in dst, which is allocated when it is too short. It returns dst.
//
// Swapping twice yields the original buffer. A trailing odd byte is copied
// unchanged.
func Swap16(dst, src []byte) []byte {
	if len(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	n := len(src) &^ 1
	for i := 0; i < n; i += 2 {
		dst[i], dst[i+1] = src[i+1], src[i]
	}
	if n < len(src) {
		dst[n] = src[n]
	}
	return dst
}

// Fill writes c into every pixel of buf using the given byte order.
func Fill(buf []byte, c RGB565, order binary.ByteOrder) {
	if len(buf) < 2 {
		return
	}
	order.PutUint16(buf, uint16(c))
	// Double the filled prefix until the buffer is covered.
	for n := 2; n < len(buf); n *= 2 {
		copy(buf[n:], buf[:n])
	}
}

// Encode writes the colors into a new buffer using the given byte order.
func Encode(colors []RGB565, order binary.ByteOrder) []byte {
	buf := make([]byte, len(colors)*2)
	for i, c := range colors {
		order.PutUint16(buf[i*2:], uint16(c))
	}
	return buf
}
