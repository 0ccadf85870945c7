package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/icza/mjpeg"
)

const animationFPS = 2

func decodeFrame(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame %s: %v", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %v", path, err)
	}
	return img, nil
}

// CreateVideoFromImages encodes the images into a motion JPEG AVI, one frame
// per image in the given order. The avi extension is appended when missing.
func CreateVideoFromImages(imagePaths []string, outputPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if !strings.HasSuffix(outputPath, ".avi") {
		outputPath += ".avi"
	}

	first, err := decodeFrame(imagePaths[0])
	if err != nil {
		return err
	}
	bounds := first.Bounds()

	writer, err := mjpeg.New(outputPath, int32(bounds.Dx()), int32(bounds.Dy()), animationFPS)
	if err != nil {
		return fmt.Errorf("failed to create video writer: %v", err)
	}
	defer writer.Close()

	for _, path := range imagePaths {
		img, err := decodeFrame(path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("failed to encode frame %s: %v", path, err)
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to add frame %s: %v", path, err)
		}
	}
	return nil
}

// CreateVideoFromDirectory animates every image in a directory, frames
// ordered by file name so date stamped names play chronologically.
func CreateVideoFromDirectory(imagesDir, outputPath string) error {
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return fmt.Errorf("failed to read images directory: %v", err)
	}

	var imagePaths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".jpeg") || strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".png") {
			imagePaths = append(imagePaths, filepath.Join(imagesDir, entry.Name()))
		}
	}
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images found in %s", imagesDir)
	}
	sort.Strings(imagePaths)

	return CreateVideoFromImages(imagePaths, outputPath)
}
