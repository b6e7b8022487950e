package core

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/adventure/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("right:3, jump ,right+shoot:2,idle,left+interact:2")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), s.Len())

	want := []components.InputSnapshot{
		{MoveX: 1},
		{MoveX: 1},
		{MoveX: 1},
		{Jump: true},
		{MoveX: 1, Shoot: true},
		{MoveX: 1},
		{},
		{MoveX: -1, Interact: true},
		{MoveX: -1, Interact: true},
	}
	for i, in := range want {
		assert.Equal(t, in, s.Next(uint64(i+1)), "tick %d", i+1)
	}
	assert.Equal(t, components.InputSnapshot{}, s.Next(100))
	assert.Equal(t, components.InputSnapshot{}, s.Next(0))
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown action", "dance:3"},
		{"bad count", "left:x"},
		{"zero count", "left:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.src)
			assert.ErrorIs(t, err, ErrBadScript)
		})
	}
}

func TestGameLoopRunFor(t *testing.T) {
	s := newTestSession(t, nil, "")
	script, err := ParseScript("right:30,jump")
	require.NoError(t, err)

	loop := NewGameLoop(s, script, 60)
	var last uint64
	loop.OnTick = func(tick uint64, res StepResult) {
		assert.Equal(t, last+1, tick)
		last = tick
	}

	assert.Equal(t, 45, loop.RunFor(45))
	assert.Equal(t, uint64(45), loop.Ticks())
	assert.Equal(t, uint64(45), last)
}

func TestScriptedInteractOpensDoor(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/a.json": levelJSON("A", "maps/b.json"),
		"maps/b.json": levelJSON("B", ""),
	}
	s := newTestSession(t, fsys, "maps/a.json")
	script, err := ParseScript("idle,interact:3")
	require.NoError(t, err)

	var transitions []string
	loop := NewGameLoop(s, script, 60)
	loop.OnTick = func(_ uint64, res StepResult) {
		if res.Transition != "" {
			transitions = append(transitions, res.Transition)
		}
	}
	loop.RunFor(4)

	assert.Equal(t, []string{"maps/b.json"}, transitions)
	assert.Equal(t, "B", s.World().Level().Name)
}
