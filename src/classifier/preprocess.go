package classifier

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// register the decoders the mobile client actually sends
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// InputSize ขนาด input ของโมเดล (efficientnet_b0, 224x224)
const InputSize = 224

// ค่า normalize ตาม training distribution (ImageNet)
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

var ErrImageDecode = errors.New("cannot decode image")

// PrepareImage แปลงรูปดิบเป็น tensor NCHW float32 ขนาด 1x3x224x224:
// decode → RGB → resize 224x224 → scale [0,1] → normalize ด้วย mean/std
// ต่อ channel. คืน ErrImageDecode เมื่อ decode ไม่ได้
func PrepareImage(data []byte) ([]float32, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	tensor := make([]float32, 3*InputSize*InputSize)
	plane := InputSize * InputSize
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			i := dst.PixOffset(x, y)
			// RGBA pix อยู่ในช่วง 0..255
			r := float32(dst.Pix[i]) / 255.0
			g := float32(dst.Pix[i+1]) / 255.0
			b := float32(dst.Pix[i+2]) / 255.0

			idx := y*InputSize + x
			tensor[idx] = (r - channelMean[0]) / channelStd[0]
			tensor[plane+idx] = (g - channelMean[1]) / channelStd[1]
			tensor[2*plane+idx] = (b - channelMean[2]) / channelStd[2]
		}
	}
	return tensor, nil
}
