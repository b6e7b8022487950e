package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/adventure/components"
)

var ErrBadScript = errors.New("bad input script")

type scriptSegment struct {
	held  components.InputSnapshot
	edges components.InputSnapshot
	ticks uint64
}

// Script is a scripted input sequence for headless runs. It is written as
// comma separated segments of '+' joined actions with an optional tick
// count, e.g. "right:60,jump,right+shoot:30". Movement, crouch and interact
// are held for the whole segment; jump and shoot press on its first tick.
// Past the end of the script the input is idle.
type Script struct {
	segments []scriptSegment
}

// ParseScript parses the script syntax described on Script.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, raw := range strings.Split(src, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		seg := scriptSegment{ticks: 1}
		actions, count, hasCount := strings.Cut(raw, ":")
		if hasCount {
			n, err := strconv.ParseUint(strings.TrimSpace(count), 10, 32)
			if err != nil || n == 0 {
				return nil, fmt.Errorf("%w: segment %q: invalid tick count", ErrBadScript, raw)
			}
			seg.ticks = n
		}
		for _, action := range strings.Split(actions, "+") {
			switch strings.ToLower(strings.TrimSpace(action)) {
			case "left":
				seg.held.MoveX = -1
			case "right":
				seg.held.MoveX = 1
			case "crouch":
				seg.held.Crouch = true
			case "jump":
				seg.edges.Jump = true
			case "shoot":
				seg.edges.Shoot = true
			case "interact":
				seg.held.Interact = true
			case "idle", "wait":
			default:
				return nil, fmt.Errorf("%w: unknown action %q", ErrBadScript, action)
			}
		}
		s.segments = append(s.segments, seg)
	}
	return s, nil
}

// Len returns the total number of ticks the script covers.
func (s *Script) Len() uint64 {
	var n uint64
	for _, seg := range s.segments {
		n += seg.ticks
	}
	return n
}

// Next returns the input for a 1-based tick.
func (s *Script) Next(tick uint64) components.InputSnapshot {
	if tick == 0 {
		return components.InputSnapshot{}
	}
	offset := tick - 1
	for _, seg := range s.segments {
		if offset < seg.ticks {
			in := seg.held
			if offset == 0 {
				in.Jump = seg.edges.Jump
				in.Shoot = seg.edges.Shoot
			}
			return in
		}
		offset -= seg.ticks
	}
	return components.InputSnapshot{}
}
