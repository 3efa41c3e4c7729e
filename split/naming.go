package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shinkarenko/dsf-toolkit/cue"
)

// DirSink writes each track as "NN - Title.dsf" under Dir. Existing
// files are skipped unless Overwrite is set, so an interrupted run can
// be resumed without clobbering finished tracks.
type DirSink struct {
	Dir       string
	Overwrite bool
	Log       logrus.FieldLogger // optional
}

// ensure interface conformation
var _ Sink = (*DirSink)(nil)

func (d *DirSink) WriteTrack(t cue.Track, data []byte) error {
	name := TrackFileName(t)
	path := filepath.Join(d.Dir, name)

	if !d.Overwrite {
		if _, err := os.Stat(path); err == nil {
			if d.Log != nil {
				d.Log.Infof("skipping (exists): %s", name)
			}
			return nil
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if d.Log != nil {
		d.Log.Infof("created: %s", name)
	}
	return nil
}

// TrackFileName builds the output filename for a track. Untitled
// tracks become "NN - Track NN.dsf". A track number some rippers bake
// into the title is dropped so "03 - 03 - Song" comes out "03 - Song".
func TrackFileName(t cue.Track) string {
	num := fmt.Sprintf("%02d", t.Num)
	title := t.Title
	if title == "" {
		title = "Track " + num
	}
	title = strings.TrimPrefix(title, num+" - ")
	return sanitize(num+" - "+title) + ".dsf"
}

// sanitize replaces characters that are unsafe in filenames on at
// least one supported platform and drops control characters.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
}
