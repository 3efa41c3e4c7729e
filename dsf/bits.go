package dsf

// ExtractBits copies numBits bits starting at startBit out of buf.
// Bits are numbered MSB-first: bit i lives in byte i/8 at position
// 7-i%8, matching the packing of DSD samples.
//
// The result is left-justified: the first extracted bit lands in the
// high bit of the first output byte, and any unused low bits of the
// final byte are zero. Left justification is what lets runs cut from
// different channels be stacked into fresh interleave blocks without
// re-deriving bit offsets.
//
// Requests reaching past the end of buf are clamped to the bits that
// exist; the output is then ceil(clampedBits/8) bytes. A non-positive
// numBits or a startBit at or past the end returns nil.
func ExtractBits(buf []byte, startBit, numBits int64) []byte {
	if numBits <= 0 || startBit < 0 || startBit >= int64(len(buf))*8 {
		return nil
	}
	if avail := int64(len(buf))*8 - startBit; numBits > avail {
		numBits = avail
	}

	startByte := startBit / 8
	shift := uint(startBit % 8)
	out := make([]byte, (numBits+7)/8)

	if shift == 0 {
		copy(out, buf[startByte:])
	} else {
		for i := range out {
			j := startByte + int64(i)
			b := buf[j] << shift
			if j+1 < int64(len(buf)) {
				b |= buf[j+1] >> (8 - shift)
			}
			out[i] = b
		}
	}

	if trailing := uint(numBits % 8); trailing != 0 {
		out[len(out)-1] &= byte(0xFF) << (8 - trailing)
	}
	return out
}
