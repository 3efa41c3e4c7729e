package dsf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the parsed metadata of a DSF container. All integer fields
// are stored little-endian on disk.
type Header struct {
	Version       uint32
	FormatID      FormatID
	ChannelType   ChannelType
	ChannelCount  uint32
	SampleRate    uint32 // Hz
	BitsPerSample uint32 // always 1 for raw DSD
	SampleCount   uint64 // samples per channel
	BlockSize     uint32 // bytes per channel per interleave block
	Reserved      [4]byte

	// DataStart is the stream offset where the audio payload begins.
	DataStart int64
	// DataSize is the payload length in bytes. The data chunk declares
	// 12 bytes of its own bookkeeping before the payload; DataSize has
	// that already subtracted.
	DataSize int64
}

// ReadHeader parses the three leading chunks from r. The reader is
// left positioned at the start of the audio payload.
//
// Magic or fixed-size mismatches return errors wrapping [ErrBadFormat].
// A DST-compressed payload or a bit depth other than 1 returns an
// error wrapping [ErrUnsupported].
func ReadHeader(r io.Reader) (Header, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Header{}, fmt.Errorf("dsf: read header: %w", err)
	}

	if string(raw[0:4]) != masterMagic {
		return Header{}, fmt.Errorf("%w: missing DSD chunk magic", ErrBadFormat)
	}
	if size := binary.LittleEndian.Uint64(raw[4:12]); size != masterChunkSize {
		return Header{}, fmt.Errorf("%w: DSD chunk size %d, want %d", ErrBadFormat, size, masterChunkSize)
	}
	// raw[12:20] is the total file size and raw[20:28] the metadata
	// chunk pointer. Neither affects splitting, so both are skipped.

	if string(raw[28:32]) != formatMagic {
		return Header{}, fmt.Errorf("%w: missing fmt chunk magic", ErrBadFormat)
	}
	if size := binary.LittleEndian.Uint64(raw[32:40]); size != formatChunkSize {
		return Header{}, fmt.Errorf("%w: fmt chunk size %d, want %d", ErrBadFormat, size, formatChunkSize)
	}

	h := Header{
		Version:       binary.LittleEndian.Uint32(raw[40:44]),
		FormatID:      FormatID(binary.LittleEndian.Uint32(raw[44:48])),
		ChannelType:   ChannelType(binary.LittleEndian.Uint32(raw[48:52])),
		ChannelCount:  binary.LittleEndian.Uint32(raw[52:56]),
		SampleRate:    binary.LittleEndian.Uint32(raw[56:60]),
		BitsPerSample: binary.LittleEndian.Uint32(raw[60:64]),
		SampleCount:   binary.LittleEndian.Uint64(raw[64:72]),
		BlockSize:     binary.LittleEndian.Uint32(raw[72:76]),
	}
	copy(h.Reserved[:], raw[76:80])

	if h.FormatID != FormatDSDRaw {
		return Header{}, fmt.Errorf("%w: format id %d (%s), only raw DSD is supported", ErrUnsupported, h.FormatID, h.FormatID)
	}
	if h.BitsPerSample != 1 {
		return Header{}, fmt.Errorf("%w: %d bits per sample, want 1", ErrUnsupported, h.BitsPerSample)
	}
	if h.ChannelCount < 1 {
		return Header{}, fmt.Errorf("%w: zero channels", ErrBadFormat)
	}
	if h.BlockSize < 1 {
		return Header{}, fmt.Errorf("%w: zero block size", ErrBadFormat)
	}

	if string(raw[80:84]) != dataMagic {
		return Header{}, fmt.Errorf("%w: missing data chunk magic", ErrBadFormat)
	}
	declared := binary.LittleEndian.Uint64(raw[84:92])
	if declared < 12 {
		return Header{}, fmt.Errorf("%w: data chunk size %d", ErrBadFormat, declared)
	}
	h.DataStart = HeaderSize
	h.DataSize = int64(declared) - 12
	return h, nil
}

// Build serializes a complete 92-byte header describing a payload of
// payloadLen bytes holding sampleCount samples per channel. Channel
// layout, sample rate, block size, version and the reserved bytes are
// carried over from h; the metadata pointer is written as zero because
// no metadata chunk is reproduced, and bits per sample is always 1.
//
// The caller appends the payload itself.
func (h Header) Build(sampleCount uint64, payloadLen int64) []byte {
	dataSize := uint64(12 + payloadLen)
	fileSize := masterChunkSize + 4 + formatChunkSize + 4 + dataSize

	buf := make([]byte, HeaderSize)
	copy(buf[0:4], masterMagic)
	binary.LittleEndian.PutUint64(buf[4:12], masterChunkSize)
	binary.LittleEndian.PutUint64(buf[12:20], fileSize)

	copy(buf[28:32], formatMagic)
	binary.LittleEndian.PutUint64(buf[32:40], formatChunkSize)
	binary.LittleEndian.PutUint32(buf[40:44], h.Version)
	binary.LittleEndian.PutUint32(buf[44:48], uint32(FormatDSDRaw))
	binary.LittleEndian.PutUint32(buf[48:52], uint32(h.ChannelType))
	binary.LittleEndian.PutUint32(buf[52:56], h.ChannelCount)
	binary.LittleEndian.PutUint32(buf[56:60], h.SampleRate)
	binary.LittleEndian.PutUint32(buf[60:64], 1)
	binary.LittleEndian.PutUint64(buf[64:72], sampleCount)
	binary.LittleEndian.PutUint32(buf[72:76], h.BlockSize)
	copy(buf[76:80], h.Reserved[:])

	copy(buf[80:84], dataMagic)
	binary.LittleEndian.PutUint64(buf[84:92], dataSize)
	return buf
}

// Duration returns the total playing time in seconds.
func (h Header) Duration() float64 {
	return float64(h.SampleCount) / float64(h.SampleRate)
}

// BytesPerChannel returns the length of one channel's bit-packed
// samples once deinterleaved, excluding block-alignment padding.
func (h Header) BytesPerChannel() int {
	return int((h.SampleCount + 7) / 8)
}
