package cue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const albumSheet = `PERFORMER "The Tones"
TITLE "Chronic Town"
FILE "album.dsf" WAVE
  TRACK 01 AUDIO
    TITLE "Wolves, Lower"
    PERFORMER "The Tones"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "Gardening at Night"
    INDEX 00 04:10:00
    INDEX 01 04:12:33
`

func TestParseAlbum(t *testing.T) {
	sheet, err := Parse(strings.NewReader(albumSheet))
	require.NoError(t, err)

	assert.Equal(t, "Chronic Town", sheet.Title)
	assert.Equal(t, "The Tones", sheet.Performer)
	require.Len(t, sheet.Files, 1)

	f := sheet.Files[0]
	assert.Equal(t, "album.dsf", f.Name)
	require.Len(t, f.Tracks, 2)

	assert.Equal(t, Track{
		Num:       1,
		Start:     0,
		Title:     "Wolves, Lower",
		Performer: "The Tones",
	}, f.Tracks[0])

	// INDEX 00 is pregap and must be ignored; 04:12:33 is
	// 4*60 + 12 + 33/75 seconds
	tr := f.Tracks[1]
	assert.Equal(t, 2, tr.Num)
	assert.InDelta(t, 252.44, tr.Start, 1e-9)
	assert.Equal(t, "Gardening at Night", tr.Title)
	assert.Empty(t, tr.Performer)
}

func TestParseMultipleFiles(t *testing.T) {
	sheet, err := Parse(strings.NewReader(`FILE "a.dsf" WAVE
  TRACK 01 AUDIO
    INDEX 01 00:00:00
FILE "b.dsf" WAVE
  TRACK 02 AUDIO
    INDEX 01 00:00:00
  TRACK 03 AUDIO
    INDEX 01 01:30:00
`))
	require.NoError(t, err)
	require.Len(t, sheet.Files, 2)
	assert.Len(t, sheet.Files[0].Tracks, 1)
	require.Len(t, sheet.Files[1].Tracks, 2)
	assert.Equal(t, 3, sheet.Files[1].Tracks[1].Num)
	assert.InDelta(t, 90.0, sheet.Files[1].Tracks[1].Start, 1e-9)
}

func TestParseUnquotedFileName(t *testing.T) {
	sheet, err := Parse(strings.NewReader(`FILE album.dsf WAVE
  TRACK 01 AUDIO
    INDEX 01 00:00:00
`))
	require.NoError(t, err)
	require.Len(t, sheet.Files, 1)
	assert.Equal(t, "album.dsf", sheet.Files[0].Name)
}

func TestParseTabIndentation(t *testing.T) {
	sheet, err := Parse(strings.NewReader("FILE\t\"album.dsf\"\tWAVE\n\tTRACK\t01\tAUDIO\n\t\tINDEX\t01\t00:02:00\n"))
	require.NoError(t, err)
	require.Len(t, sheet.Files, 1)
	require.Len(t, sheet.Files[0].Tracks, 1)
	assert.InDelta(t, 2.0/75.0, sheet.Files[0].Tracks[0].Start, 1e-9)
}

func TestParseIgnoresUnknownCommands(t *testing.T) {
	sheet, err := Parse(strings.NewReader(`REM GENRE Rock
REM DATE 1982
CATALOG 0000000000000
FILE "album.dsf" WAVE
  TRACK 01 AUDIO
    REM COMPOSER ""
    INDEX 01 00:00:00
`))
	require.NoError(t, err)
	require.Len(t, sheet.Files, 1)
	assert.Len(t, sheet.Files[0].Tracks, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
	}{
		{
			"track before file",
			"TRACK 01 AUDIO\n  INDEX 01 00:00:00\n",
		},
		{
			"track without index",
			"FILE \"a.dsf\" WAVE\n  TRACK 01 AUDIO\n  TRACK 02 AUDIO\n    INDEX 01 00:10:00\n",
		},
		{
			"last track without index",
			"FILE \"a.dsf\" WAVE\n  TRACK 01 AUDIO\n    TITLE \"x\"\n",
		},
		{
			"bad track number",
			"FILE \"a.dsf\" WAVE\n  TRACK xx AUDIO\n    INDEX 01 00:00:00\n",
		},
		{
			"bad index time",
			"FILE \"a.dsf\" WAVE\n  TRACK 01 AUDIO\n    INDEX 01 00:00\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.sheet))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptySheet(t *testing.T) {
	sheet, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sheet.Files)
}
