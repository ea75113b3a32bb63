package events

import "github.com/atomicstack/menubar/internal/logging"

type OverlayTracer struct{}

var Overlay = OverlayTracer{}

func (OverlayTracer) Place(depth int, kind, horizontal, vertical string, x, y, width, height int) {
	logging.Trace("overlay.place", map[string]interface{}{
		"depth":      depth,
		"kind":       kind,
		"horizontal": horizontal,
		"vertical":   vertical,
		"x":          x,
		"y":          y,
		"width":      width,
		"height":     height,
	})
}
