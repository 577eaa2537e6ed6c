// Package assets copies uploaded files (logo images, project thumbnails
// and videos) into the site's asset directories and returns the relative
// path string the document stores. The core never validates that a
// stored path exists; the website resolves it at render time.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/folio/pkg/types"
)

// Asset subdirectories below the site root. The stored path strings use
// forward slashes regardless of platform, matching the website's URLs.
const (
	assetsDirName   = "assets"
	projectsDirName = "projects"
	videosDirName   = "videos"
)

// Dirs resolves asset destinations below one site root.
type Dirs struct {
	// SiteRoot is the directory the static site is served from; asset
	// paths in the document are relative to it.
	SiteRoot string
}

// ImportLogo copies src into assets/ and returns its stored path.
// Callers switching the logo to this path must also set the logo type
// to "image".
func (d Dirs) ImportLogo(src string) (string, error) {
	return d.importInto(src, assetsDirName)
}

// ImportThumbnail copies src into assets/projects/ and returns its
// stored path.
func (d Dirs) ImportThumbnail(src string) (string, error) {
	return d.importInto(src, filepath.Join(assetsDirName, projectsDirName))
}

// ImportVideo copies src into assets/videos/ and returns its stored path.
func (d Dirs) ImportVideo(src string) (string, error) {
	return d.importInto(src, filepath.Join(assetsDirName, videosDirName))
}

// importInto copies src into the given subdirectory, keeping the source
// file name. An existing file with the same name is overwritten.
func (d Dirs) importInto(src, subdir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: asset source %s does not exist", types.ErrValidation, src)
		}
		return "", fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	destDir := filepath.Join(d.SiteRoot, subdir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", types.ErrPersistence, destDir, err)
	}

	base := filepath.Base(src)
	dest := filepath.Join(destDir, base)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", types.ErrPersistence, dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("%w: copying to %s: %v", types.ErrPersistence, dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %v", types.ErrPersistence, dest, err)
	}

	return filepath.ToSlash(filepath.Join(subdir, base)), nil
}
