package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM serializes the image as a plain-text PPM: a P3 header with the
// dimensions and max value 255, then one "R G B" triple per pixel in
// row-major order starting at the top-left.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
