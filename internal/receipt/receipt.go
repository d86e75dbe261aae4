// Package receipt manages receipt files attached to transactions.
//
// Assets live on the filesystem under a per-user directory, with derived
// thumbnails in a "thumbnails" subdirectory next to the originals:
//
//	{root}/{userID}/{filename}
//	{root}/{userID}/thumbnails/{filename}
//
// There is no manifest. The filename recorded on the transaction row is the
// single source of truth for an asset's existence, which is why callers must
// keep row updates and Store/Delete calls in sync.
package receipt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when the requested asset does not exist.
var ErrNotFound = errors.New("there is no receipt file matching your request")

// allowedExtensions are the file types that can be stored. Everything
// else is silently not stored.
var allowedExtensions = []string{".png", ".jpg", ".jpeg", ".pdf"}

// thumbnailExtensions are the file types a thumbnail is derived for.
var thumbnailExtensions = []string{".png", ".jpg", ".jpeg"}

// unsafeCharacters matches everything that is defanged in uploaded file names.
var unsafeCharacters = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Config is the explicit configuration for a Store. There is no ambient
// process-wide state, the upload root is always passed in.
type Config struct {
	// Root is the writable directory all assets are stored under.
	Root string
}

// Store manages the lifecycle of receipt assets.
type Store struct {
	root string
}

// NewStore initializes a Store and ensures the upload root exists.
func NewStore(config Config) (*Store, error) {
	err := os.MkdirAll(config.Root, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("creating upload root failed: %w", err)
	}

	return &Store{root: config.Root}, nil
}

// Result is the outcome of storing an asset.
//
// A zero Result means nothing was stored because the file type is not
// allowed. Callers must treat this as "skip attaching", not as an error.
type Result struct {
	// Filename is the generated name of the stored asset. It is the
	// durable reference to record on the transaction.
	Filename string

	// ThumbnailErr is set when the original was stored but the thumbnail
	// could not be derived. The store operation still succeeded.
	ThumbnailErr error
}

// Stored reports whether an asset was written.
func (r Result) Stored() bool {
	return r.Filename != ""
}

// Store writes the file bytes under a freshly generated name in the user's
// asset directory and derives a thumbnail for image types.
//
// Files with an extension outside the allow-list are not stored: the
// returned Result is zero and the error is nil, no filesystem write happens.
// A thumbnail failure never fails the store, it is logged and reported in
// the Result so callers can observe the degraded state.
func (s *Store) Store(data []byte, filename string, userID uuid.UUID) (Result, error) {
	ext := strings.ToLower(filepath.Ext(sanitizeFilename(filename)))
	if !allowed(ext) {
		return Result{}, nil
	}

	name := generateFilename(userID, ext)

	userDir := filepath.Join(s.root, userID.String())
	err := os.MkdirAll(userDir, os.ModePerm)
	if err != nil {
		return Result{}, fmt.Errorf("creating user directory failed: %w", err)
	}

	err = writeFileAtomic(filepath.Join(userDir, name), data)
	if err != nil {
		return Result{}, fmt.Errorf("writing receipt file failed: %w", err)
	}

	result := Result{Filename: name}

	if hasThumbnail(ext) {
		err = s.createThumbnail(data, userID, name)
		if err != nil {
			// The original asset is kept even when thumbnailing fails
			log.Warn().Err(err).Str("filename", name).Msg("thumbnail generation failed")
			result.ThumbnailErr = err
		}
	}

	return result, nil
}

// Delete removes the asset and its thumbnail. It is idempotent: missing
// files are not an error.
func (s *Store) Delete(userID uuid.UUID, filename string) error {
	// Never allow path traversal through a tampered filename
	filename = filepath.Base(filename)

	for _, path := range []string{
		filepath.Join(s.root, userID.String(), filename),
		filepath.Join(s.root, userID.String(), "thumbnails", filename),
	} {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("deleting receipt file failed: %w", err)
		}
	}

	return nil
}

// Open returns a reader for the stored asset. The caller is responsible
// for closing it. If the asset does not exist, ErrNotFound is returned.
func (s *Store) Open(userID uuid.UUID, filename string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.root, userID.String(), filepath.Base(filename)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening receipt file failed: %w", err)
	}

	return file, nil
}

// OpenThumbnail returns a reader for the asset's thumbnail, if one exists.
func (s *Store) OpenThumbnail(userID uuid.UUID, filename string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.root, userID.String(), "thumbnails", filepath.Base(filename)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening thumbnail failed: %w", err)
	}

	return file, nil
}

// DownloadName derives the human readable attachment name for a download
// from the transaction's description and effective date.
func DownloadName(description string, date time.Time, filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return fmt.Sprintf("receipt_%s_%s.%s", description, date.Format("2006-01-02"), ext)
}

func allowed(ext string) bool {
	for _, e := range allowedExtensions {
		if e == ext {
			return true
		}
	}

	return false
}

func hasThumbnail(ext string) bool {
	for _, e := range thumbnailExtensions {
		if e == ext {
			return true
		}
	}

	return false
}

// sanitizeFilename strips path components and defangs characters that are
// unsafe in file names.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return unsafeCharacters.ReplaceAllString(name, "_")
}

// generateFilename returns a collision resistant name of the form
// {userID}_{8-hex-random}{ext}.
func generateFilename(userID uuid.UUID, ext string) string {
	random := uuid.New()
	return fmt.Sprintf("%s_%s%s", userID, hex.EncodeToString(random[:4]), ext)
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it into place. A crash mid-write never leaves a partial
// asset under the final name.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
