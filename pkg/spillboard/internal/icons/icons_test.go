package icons

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClose(t *testing.T) {
	t.Parallel()

	img, err := Render(Close, 24, color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF})
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	centre := img.RGBAAt(12, 12)
	assert.NotZero(t, centre.A, "the cross passes through the centre")

	corner := img.RGBAAt(0, 0)
	assert.Zero(t, corner.A, "corners stay transparent")
}

func TestRenderScales(t *testing.T) {
	t.Parallel()

	img, err := Render(ArrowLeft, 48, color.White)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dy())
	assert.NotZero(t, img.RGBAAt(24, 24).A)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	_, err := Render("nope", 24, color.Black)
	require.Error(t, err)

	_, err = Render(Close, 0, color.Black)
	require.Error(t, err)
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#007AFF", hex(color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}))
}
