package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) font.Face {
	t.Helper()
	face, err := NewFace(goregular.TTF)
	require.NoError(t, err)
	return face
}

func TestRenderBufferSize(t *testing.T) {
	pixels := Render("EN", testFace(t))
	assert.Len(t, pixels, Size*Size*4)
}

func TestRenderDeterministic(t *testing.T) {
	face := testFace(t)
	first := Render("RU", face)
	second := Render("RU", face)
	assert.Equal(t, first, second)
}

func TestRenderPixelLayout(t *testing.T) {
	pixels := Render("EN", testFace(t))

	// the corners stay background: B, G, R, then the unused byte
	assert.Equal(t, []byte{35, 35, 35, 0}, pixels[:4])

	for i := 3; i < len(pixels); i += 4 {
		require.Zero(t, pixels[i], "pixel %d: fourth byte must be unused", i/4)
	}
}

func TestRenderDrawsForeground(t *testing.T) {
	pixels := Render("EN", testFace(t))

	lit := false
	for i := 0; i < len(pixels); i += 4 {
		if pixels[i] > 200 && pixels[i+1] > 200 && pixels[i+2] > 200 {
			lit = true
			break
		}
	}
	assert.True(t, lit, "expected some near-white glyph pixels")
}
