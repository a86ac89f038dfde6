//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// writeSnapshot saves the presented framebuffer as a BMP file.
func writeSnapshot(path string, fb *hostFramebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.snapshotRGBA(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
