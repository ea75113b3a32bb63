package events

import "github.com/atomicstack/menubar/internal/logging"

type A11yTracer struct{}

var A11y = A11yTracer{}

func (A11yTracer) Focus(index int, label string) {
	logging.Trace("a11y.focus", map[string]interface{}{"index": index, "label": label})
}

func (A11yTracer) Announce(text string) {
	logging.Trace("a11y.announce", map[string]interface{}{"text": text})
}

func (A11yTracer) Activate(index int) {
	logging.Trace("a11y.activate", map[string]interface{}{"index": index})
}
