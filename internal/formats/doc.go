// Package formats registers the output image encoders with the registry.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tg/internal/formats"
package formats
