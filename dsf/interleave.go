package dsf

// Deinterleave splits a block-interleaved payload into one contiguous
// bit-packed buffer per channel. Block b of channel c occupies raw
// bytes [(b*channels+c)*blockSize, +blockSize). Each returned buffer
// is truncated to ceil(sampleCount/8) bytes, dropping the alignment
// padding of the final block.
//
// Truncated input is tolerated: a block that runs past the end of raw
// contributes only the bytes that exist.
func Deinterleave(raw []byte, channels int, blockSize uint32, sampleCount uint64) [][]byte {
	bytesPerChannel := int((sampleCount + 7) / 8)
	bs := int(blockSize)
	numBlocks := (bytesPerChannel + bs - 1) / bs

	out := make([][]byte, channels)
	for c := range out {
		out[c] = make([]byte, 0, numBlocks*bs)
	}
	for blk := 0; blk < numBlocks; blk++ {
		for c := 0; c < channels; c++ {
			offset := (blk*channels + c) * bs
			if offset >= len(raw) {
				continue
			}
			end := offset + bs
			if end > len(raw) {
				end = len(raw)
			}
			out[c] = append(out[c], raw[offset:end]...)
		}
	}
	for c := range out {
		if len(out[c]) > bytesPerChannel {
			out[c] = out[c][:bytesPerChannel]
		}
	}
	return out
}

// Reinterleave is the inverse of [Deinterleave]: it emits numBlocks
// interleave blocks in block-then-channel order. Every channel buffer
// must be exactly numBlocks*blockSize bytes long; padding to that
// length is the caller's responsibility.
func Reinterleave(channels [][]byte, blockSize uint32, numBlocks int) []byte {
	bs := int(blockSize)
	out := make([]byte, 0, numBlocks*bs*len(channels))
	for blk := 0; blk < numBlocks; blk++ {
		for _, ch := range channels {
			out = append(out, ch[blk*bs:(blk+1)*bs]...)
		}
	}
	return out
}
