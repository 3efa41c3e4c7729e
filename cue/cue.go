// Package cue parses cue sheets into an ordered list of track
// descriptors per referenced audio file.
//
// The parser is a small state machine. It starts Idle, enters InFile
// on a FILE command and InTrack on a TRACK command, and accumulates
// exactly one track at a time; a track is appended to its file only
// once complete. TITLE and PERFORMER apply to the sheet as a whole
// before the first TRACK and to the current track after.
//
// Only INDEX 01 positions are used. Commands the splitter has no use
// for (REM, PREGAP, INDEX 00, ...) are ignored.
package cue

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Track is one track boundary from the sheet. Start is the INDEX 01
// position in seconds from the beginning of the source file; the end
// of a track is implied by the start of the next.
type Track struct {
	Num       int // 1-based track number from the sheet
	Start     float64
	Title     string
	Performer string
}

// File is one FILE entry and the tracks cut from it, in sheet order.
type File struct {
	Name   string // filename exactly as written in the sheet
	Tracks []Track
}

// Sheet is a parsed cue sheet.
type Sheet struct {
	Title     string // album title, from TITLE before any TRACK
	Performer string
	Files     []File
}

type state int

const (
	stateIdle state = iota
	stateInFile
	stateInTrack
)

// framesPerSecond is the cue sheet time base: INDEX positions count
// frames of 1/75th of a second.
const framesPerSecond = 75

var quotedRE = regexp.MustCompile(`"(.*?)"`)

// Parse reads a cue sheet from r. Lines it cannot attribute to a
// well-formed structure (a TRACK outside any FILE, a track missing
// its INDEX 01, malformed numbers) are errors; unknown commands are
// not.
func Parse(r io.Reader) (*Sheet, error) {
	var (
		sheet     Sheet
		st        = stateIdle
		cur       Track
		haveStart bool
		lineno    int
	)

	// flush appends the accumulated track to the current file and is
	// called on every transition out of InTrack.
	flush := func() error {
		if st != stateInTrack {
			return nil
		}
		if !haveStart {
			return fmt.Errorf("cue: track %d has no INDEX 01", cur.Num)
		}
		f := &sheet.Files[len(sheet.Files)-1]
		f.Tracks = append(f.Tracks, cur)
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "FILE":
			if err := flush(); err != nil {
				return nil, err
			}
			sheet.Files = append(sheet.Files, File{Name: fileName(arg)})
			st = stateInFile

		case "TRACK":
			if st == stateIdle {
				return nil, fmt.Errorf("cue: line %d: TRACK before any FILE", lineno)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			fields := strings.Fields(arg)
			if len(fields) == 0 {
				return nil, fmt.Errorf("cue: line %d: TRACK missing number", lineno)
			}
			num, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("cue: line %d: bad track number %q", lineno, fields[0])
			}
			cur = Track{Num: num}
			haveStart = false
			st = stateInTrack

		case "TITLE":
			if st == stateInTrack {
				cur.Title = unquote(arg)
			} else {
				sheet.Title = unquote(arg)
			}

		case "PERFORMER":
			if st == stateInTrack {
				cur.Performer = unquote(arg)
			} else {
				sheet.Performer = unquote(arg)
			}

		case "INDEX":
			if st != stateInTrack {
				continue
			}
			fields := strings.Fields(arg)
			if len(fields) != 2 || fields[0] != "01" {
				continue
			}
			start, err := parseFrameTime(fields[1])
			if err != nil {
				return nil, fmt.Errorf("cue: line %d: %w", lineno, err)
			}
			cur.Start = start
			haveStart = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cue: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// splitCommand separates the leading command word from its argument.
// Sheets in the wild indent with both spaces and tabs.
func splitCommand(line string) (cmd, arg string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

// fileName pulls the filename out of a FILE argument, which is
// normally `"name" TYPE`. Unquoted names fall back to the first
// whitespace-separated field.
func fileName(arg string) string {
	if m := quotedRE.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	if fields := strings.Fields(arg); len(fields) > 0 {
		return fields[0]
	}
	return arg
}

func unquote(arg string) string {
	return strings.Trim(arg, `"`)
}

// parseFrameTime converts a mm:ss:ff cue position to seconds.
func parseFrameTime(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad INDEX time %q", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("bad INDEX time %q", s)
		}
		v[i] = n
	}
	return float64(v[0]*60+v[1]) + float64(v[2])/framesPerSecond, nil
}
