package glimpse

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueDrainsInOrder(t *testing.T) {
	var q eventQueue

	q.push(Focused{Focused: true})
	q.push(KeyInput{Key: KeyA, Action: Pressed})
	q.push(CloseRequested{})

	events := q.drain()
	require.Len(t, events, 3)
	assert.Equal(t, Focused{Focused: true}, events[0])
	assert.Equal(t, KeyInput{Key: KeyA, Action: Pressed}, events[1])
	assert.Equal(t, CloseRequested{}, events[2])

	assert.Nil(t, q.drain())
}

func TestEventQueueDrainDoesNotAlias(t *testing.T) {
	var q eventQueue

	q.push(Resized{Width: 10, Height: 20})
	first := q.drain()

	q.push(Resized{Width: 30, Height: 40})
	second := q.drain()

	assert.Equal(t, Resized{Width: 10, Height: 20}, first[0])
	assert.Equal(t, Resized{Width: 30, Height: 40}, second[0])
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, KeyEscape, keyOf(glfw.KeyEscape))
	assert.Equal(t, KeyA, keyOf(glfw.KeyA))
	assert.Equal(t, Key7, keyOf(glfw.Key7))
	assert.Equal(t, KeyF12, keyOf(glfw.KeyF12))
	assert.Equal(t, KeyUnknown, keyOf(glfw.KeyUnknown))
	assert.Equal(t, KeyUnknown, keyOf(glfw.KeyKPAdd))
}

func TestActionOf(t *testing.T) {
	assert.Equal(t, Pressed, actionOf(glfw.Press))
	assert.Equal(t, Released, actionOf(glfw.Release))
	assert.Equal(t, Repeated, actionOf(glfw.Repeat))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "LeftShift", KeyLeftShift.String())
	assert.Equal(t, "Unknown", KeyUnknown.String())
	assert.Equal(t, "Key(999)", Key(999).String())
	assert.Equal(t, "Released", Released.String())
}
