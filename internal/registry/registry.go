// Package registry provides a global registry of image encoders.
// Output formats register themselves in init() functions keyed by file
// extension, allowing the renderer to pick an encoder from the output path
// without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when no encoder handles an extension.
var ErrUnknownFormat = errors.New("registry: unknown image format")

// Encoder writes an image in a specific file format.
type Encoder interface {
	// Name returns a human-readable format name (e.g., "PNG").
	Name() string

	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc struct {
	FormatName string
	Fn         func(w io.Writer, img image.Image) error
}

// Name implements Encoder.
func (e EncoderFunc) Name() string { return e.FormatName }

// Encode implements Encoder.
func (e EncoderFunc) Encode(w io.Writer, img image.Image) error { return e.Fn(w, img) }

// FormatInfo contains metadata about a registered extension.
type FormatInfo struct {
	Extension string
	Name      string
}

var (
	encoders = make(map[string]Encoder)
	mu       sync.RWMutex
)

// Register adds an encoder for a file extension such as ".png".
// Typically called from a format's init() function.
// Panics if the extension is already registered.
func Register(ext string, e Encoder) {
	mu.Lock()
	defer mu.Unlock()

	ext = normalizeExt(ext)
	if _, exists := encoders[ext]; exists {
		panic(fmt.Sprintf("registry: extension %q already registered", ext))
	}
	encoders[ext] = e
}

// List returns all registered extensions, sorted.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(encoders))
	for ext, e := range encoders {
		result = append(result, FormatInfo{
			Extension: ext,
			Name:      e.Name(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Extension < result[j].Extension
	})

	return result
}

// Lookup returns the encoder for the extension of path.
func Lookup(path string) (Encoder, error) {
	mu.RLock()
	defer mu.RUnlock()

	ext := normalizeExt(filepath.Ext(path))
	e, ok := encoders[ext]
	if !ok {
		if ext == "" {
			return nil, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	return e, nil
}

// Exists checks if an encoder handles the extension of path.
func Exists(path string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := encoders[normalizeExt(filepath.Ext(path))]
	return ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
