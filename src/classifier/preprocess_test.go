package classifier

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformImage(t *testing.T, c color.Color, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return encodePNG(t, img)
}

func TestPrepareImage(t *testing.T) {
	t.Run("TensorShape", func(t *testing.T) {
		data := uniformImage(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, 300, 180)

		tensor, err := PrepareImage(data)
		require.NoError(t, err)
		assert.Len(t, tensor, 3*InputSize*InputSize)
	})

	t.Run("NormalizationConstants", func(t *testing.T) {
		// ภาพขาวล้วน: ทุก pixel = 1.0 ก่อน normalize
		data := uniformImage(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 64, 64)

		tensor, err := PrepareImage(data)
		require.NoError(t, err)

		plane := InputSize * InputSize
		assert.InDelta(t, (1.0-0.485)/0.229, float64(tensor[0]), 0.01)
		assert.InDelta(t, (1.0-0.456)/0.224, float64(tensor[plane]), 0.01)
		assert.InDelta(t, (1.0-0.406)/0.225, float64(tensor[2*plane]), 0.01)
	})

	t.Run("ChannelPlanesAreUniform", func(t *testing.T) {
		data := uniformImage(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, 32, 32)

		tensor, err := PrepareImage(data)
		require.NoError(t, err)

		plane := InputSize * InputSize
		for c := 0; c < 3; c++ {
			first := tensor[c*plane]
			assert.InDelta(t, float64(first), float64(tensor[c*plane+plane-1]), 0.02)
		}
	})

	t.Run("UndecodableImage", func(t *testing.T) {
		_, err := PrepareImage([]byte("this is not an image"))
		assert.ErrorIs(t, err, ErrImageDecode)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := PrepareImage(nil)
		assert.ErrorIs(t, err, ErrImageDecode)
	})
}
