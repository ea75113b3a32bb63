package events

import "github.com/atomicstack/menubar/internal/logging"

type WatchTracer struct{}

var Watch = WatchTracer{}

func (WatchTracer) Change(path string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}

func (WatchTracer) Fallback(reason string) {
	logging.Trace("watch.fallback", map[string]interface{}{"reason": reason})
}
