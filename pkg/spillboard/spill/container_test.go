package spill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDuration = DefaultDuration

func TestContainerEntersFirstStep(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, true)
	assert.Empty(t, c.Layers())

	c.Sync(0, true)
	layers := c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, Layer{Key: 0, Opacity: 0, Offset: EnterSlide}, layers[0])
	assert.True(t, c.CloseTappable())

	tl.Tick(testDuration)
	layers = c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, Layer{Key: 0, Opacity: 1, Offset: 0}, layers[0])
	assert.Equal(t, 1.0, c.CloseOpacity())
}

func TestContainerSwitchesSteps(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, false)
	baseline := tl.Len()

	c.Sync(0, true)
	tl.Tick(testDuration)
	c.Sync(1, true)

	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, 0, layers[0].Key)
	assert.True(t, layers[0].Exiting, "outgoing layer paints first")
	assert.Equal(t, 1, layers[1].Key)
	assert.False(t, layers[1].Exiting)

	tl.Tick(testDuration / 2)
	layers = c.Layers()
	require.Len(t, layers, 2)
	assert.Less(t, layers[0].Opacity, 1.0)
	assert.Greater(t, layers[0].Offset, 0.0)
	assert.Greater(t, layers[1].Opacity, 0.0)

	tl.Tick(testDuration)
	layers = c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, 1, layers[0].Key)
	assert.Equal(t, baseline+2, tl.Len(), "pruned layers leave the timeline")
}

func TestContainerReturnsToIntro(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, true)
	c.Sync(0, true)
	tl.Tick(testDuration)

	c.Sync(IntroIndex, false)
	assert.False(t, c.CloseTappable())

	layers := c.Layers()
	require.Len(t, layers, 1)
	assert.True(t, layers[0].Exiting)

	tl.Tick(testDuration)
	assert.Empty(t, c.Layers())
	assert.False(t, c.CloseVisible())
}

func TestContainerReversesExitingLayer(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, false)
	c.Sync(0, true)
	tl.Tick(testDuration)

	c.Sync(1, true)
	tl.Tick(testDuration / 4)
	c.Sync(0, true)

	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, 1, layers[0].Key)
	assert.True(t, layers[0].Exiting)
	assert.Equal(t, 0, layers[1].Key)
	assert.False(t, layers[1].Exiting)

	tl.Tick(testDuration)
	layers = c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, Layer{Key: 0, Opacity: 1, Offset: 0}, layers[0])
}

func TestContainerWithoutCloseButton(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, false)
	c.Sync(0, true)
	tl.Tick(testDuration)

	assert.False(t, c.CloseVisible())
	assert.False(t, c.CloseTappable())
}

func TestContainerSyncIsStable(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	c := NewContainer(tl, testDuration, true)
	c.Sync(0, true)
	tl.Tick(testDuration / 2)
	before := c.Layers()

	c.Sync(0, true)
	assert.Equal(t, before, c.Layers())
}

func TestCloseRect(t *testing.T) {
	t.Parallel()

	r := CloseRect(400, Insets{Top: 20})
	assert.Equal(t, Rect{X: 352, Y: 36, W: 32, H: 32}, r)
}
