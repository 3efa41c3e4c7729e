// Package dsf reads and writes the DSF container format for raw 1-bit
// DSD audio.
//
// A DSF file is three fixed-layout chunks (DSD, fmt, data) followed by
// the audio payload. The payload is bit-packed, eight samples per byte
// most significant bit first, and channel-interleaved at block
// granularity: [Header.BlockSize] bytes of channel 0, then channel 1,
// and so on, repeating until the stream is exhausted.
//
// Only uncompressed ("raw") 1-bit DSD is supported. DST-compressed
// payloads are rejected with [ErrUnsupported].
package dsf

const (
	masterMagic = "DSD "
	formatMagic = "fmt "
	dataMagic   = "data"

	masterChunkSize = 28
	formatChunkSize = 52
)

// HeaderSize is the total byte length of the three leading chunks.
// The audio payload starts immediately after.
const HeaderSize = 92

// FormatID identifies the payload encoding in the fmt chunk.
type FormatID uint32

const (
	FormatDSDRaw FormatID = 0 // uncompressed 1-bit DSD
	FormatDST    FormatID = 1 // DST-compressed DSD
)

func (id FormatID) String() string {
	switch id {
	case FormatDSDRaw:
		return "DSD raw"
	case FormatDST:
		return "DST"
	default:
		return "unknown"
	}
}

// ChannelType is the speaker layout code from the fmt chunk.
// It is carried through to outputs unchanged; the codec never
// interprets it beyond display.
type ChannelType uint32

const (
	ChannelMono    ChannelType = 1
	ChannelStereo  ChannelType = 2
	ChannelThree   ChannelType = 3
	ChannelQuad    ChannelType = 4
	ChannelFour    ChannelType = 5
	ChannelFive    ChannelType = 6
	ChannelFiveOne ChannelType = 7
)

func (ct ChannelType) String() string {
	switch ct {
	case ChannelMono:
		return "mono"
	case ChannelStereo:
		return "stereo"
	case ChannelThree:
		return "3 channels"
	case ChannelQuad:
		return "quad"
	case ChannelFour:
		return "4 channels"
	case ChannelFive:
		return "5 channels"
	case ChannelFiveOne:
		return "5.1 channels"
	default:
		return "unknown"
	}
}
