package receipt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// thumbnailMaxSize bounds both dimensions of a thumbnail in pixels.
	thumbnailMaxSize = 200

	// thumbnailQuality is the JPEG encoding quality for thumbnails.
	thumbnailQuality = 85
)

// createThumbnail decodes the image, resizes it so that neither dimension
// exceeds thumbnailMaxSize while preserving the aspect ratio, and stores
// the result in the user's thumbnails directory under the same name as
// the original.
func (s *Store) createThumbnail(data []byte, userID uuid.UUID, filename string) error {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding image failed: %w", err)
	}

	// Fit only scales down, small images are kept as they are
	thumbnail := imaging.Fit(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)

	thumbnailDir := filepath.Join(s.root, userID.String(), "thumbnails")
	err = os.MkdirAll(thumbnailDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating thumbnail directory failed: %w", err)
	}

	err = imaging.Save(thumbnail, filepath.Join(thumbnailDir, filename), imaging.JPEGQuality(thumbnailQuality))
	if err != nil {
		return fmt.Errorf("encoding thumbnail failed: %w", err)
	}

	return nil
}
