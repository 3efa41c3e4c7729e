// Package split cuts one DSF source into independently playable
// per-track containers.
//
// A [Splitter] reads and deinterleaves the whole payload once; each
// track is then a bit-run extraction against the shared read-only
// channel buffers. Memory use is O(payload): the raw payload and the
// deinterleaved channels both exist while opening, plus one transient
// padded extraction per track.
package split

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/shinkarenko/dsf-toolkit/cue"
	"github.com/shinkarenko/dsf-toolkit/dsf"
)

// ErrNoTracks is returned by [Splitter.Split] when the track list is
// empty.
var ErrNoTracks = errors.New("split: no tracks supplied")

// Sink receives finished per-track containers. Each call gets one
// complete, self-contained buffer: header plus block-aligned payload.
type Sink interface {
	WriteTrack(t cue.Track, data []byte) error
}

// Splitter holds one opened source: its parsed header and its payload
// deinterleaved into per-channel bit-packed buffers. The channel
// buffers are read-only after [Open]; every track extraction reads
// them and none mutates them.
type Splitter struct {
	Header dsf.Header
	Log    logrus.FieldLogger // optional, nil disables logging

	channels [][]byte
}

// Open parses the container header from r, reads the entire payload
// and deinterleaves it. Header and format errors abort before any
// payload is read; a payload shorter than the header declares is
// tolerated, matching the codec's short-read policy.
func Open(r io.Reader) (*Splitter, error) {
	h, err := dsf.ReadHeader(r)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, h.DataSize)
	n, err := io.ReadFull(r, raw)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("split: read payload: %w", err)
	}

	return &Splitter{
		Header:   h,
		channels: dsf.Deinterleave(raw[:n], int(h.ChannelCount), h.BlockSize, h.SampleCount),
	}, nil
}

// Split assembles one output per track and hands it to sink. Track
// ends are derived: each track runs to the start of the next, and the
// last to the end of the source. Ranges are trusted as supplied; the
// cue parser is responsible for structural validity.
//
// A sink error aborts the remaining tracks. Outputs already written
// are not retracted.
func (s *Splitter) Split(tracks []cue.Track, sink Sink) error {
	if len(tracks) == 0 {
		return ErrNoTracks
	}

	rate := float64(s.Header.SampleRate)
	for i, t := range tracks {
		end := s.Header.Duration()
		if i+1 < len(tracks) {
			end = tracks[i+1].Start
		}

		startSample := int64(t.Start * rate)
		sampleLen := int64(end*rate) - startSample

		data := s.assemble(startSample, sampleLen)
		if s.Log != nil {
			s.Log.WithFields(logrus.Fields{
				"track":   t.Num,
				"start":   t.Start,
				"end":     end,
				"samples": sampleLen,
				"bytes":   len(data),
			}).Debug("assembled track")
		}
		if err := sink.WriteTrack(t, data); err != nil {
			return fmt.Errorf("split: track %d: %w", t.Num, err)
		}
	}
	return nil
}

// assemble extracts [startSample, startSample+sampleLen) from every
// channel, zero-pads each run to whole interleave blocks, and returns
// header plus reinterleaved payload. The declared sample count stays
// sampleLen: the padding is silence past the musical end, not extra
// samples.
func (s *Splitter) assemble(startSample, sampleLen int64) []byte {
	bs := int(s.Header.BlockSize)

	cut := make([][]byte, len(s.channels))
	numBlocks := 0
	for c, ch := range s.channels {
		run := dsf.ExtractBits(ch, startSample, sampleLen)
		// Every channel holds the same number of samples, so the
		// block count from the first channel holds for all.
		numBlocks = (len(run) + bs - 1) / bs
		padded := make([]byte, numBlocks*bs)
		copy(padded, run)
		cut[c] = padded
	}

	payloadLen := numBlocks * bs * len(cut)
	out := make([]byte, 0, dsf.HeaderSize+payloadLen)
	out = append(out, s.Header.Build(uint64(sampleLen), int64(payloadLen))...)
	out = append(out, dsf.Reinterleave(cut, s.Header.BlockSize, numBlocks)...)
	return out
}
