package imagereader

import (
	"image"
	"os"
	"time"

	"github.com/pixiv/go-libjpeg/jpeg"

	"vincit.fi/image-viewer/common/logger"
)

var options = &jpeg.DecoderOptions{}

func loadJpeg(path string) (image.Image, error) {
	return loadJpegWithOptions(path, options)
}

func loadJpegWithOptions(path string, options *jpeg.DecoderOptions) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decodedImage, err := jpeg.Decode(file, options)
	if err != nil {
		return nil, err
	}
	return decodedImage, nil
}

// ConvertToRgba returns the image as *image.RGBA. JPEG files decode to
// NRGBA which carries no alpha, so the pixels can be copied over as-is.
// Other color models go through the slower generic conversion.
func ConvertToRgba(i image.Image) *image.RGBA {
	start := time.Now()

	var rgba *image.RGBA
	switch n := i.(type) {
	case *image.RGBA:
		return n
	case *image.NRGBA:
		rgba = image.NewRGBA(n.Rect)
		for x := 0; x < n.Rect.Dx(); x++ {
			for y := 0; y < n.Rect.Dy(); y++ {
				nrgbaPixOffset := n.PixOffset(x, y)
				nrgbaStride := n.Pix[nrgbaPixOffset : nrgbaPixOffset+4 : nrgbaPixOffset+4]

				rgbaPixOffset := rgba.PixOffset(x, y)
				rgbaStride := rgba.Pix[rgbaPixOffset : rgbaPixOffset+4 : rgbaPixOffset+4]

				rgbaStride[0] = nrgbaStride[0]
				rgbaStride[1] = nrgbaStride[1]
				rgbaStride[2] = nrgbaStride[2]
				rgbaStride[3] = nrgbaStride[3]
			}
		}
	default:
		bounds := i.Bounds()
		rgba = image.NewRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgba.Set(x, y, i.At(x, y))
			}
		}
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converted to RGBA in %s", time.Since(start))
	}
	return rgba
}
