package events

import "github.com/atomicstack/menubar/internal/logging"

type MenuTracer struct{}

type PointerTracer struct{}

var (
	Menu    = MenuTracer{}
	Pointer = PointerTracer{}
)

func (MenuTracer) Open(path []int, label string) {
	logging.Trace("menu.open", map[string]interface{}{"path": path, "label": label})
}

func (MenuTracer) Close(depth int) {
	logging.Trace("menu.close", map[string]interface{}{"depth": depth})
}

func (MenuTracer) CloseAll() {
	logging.Trace("menu.close-all", nil)
}

func (MenuTracer) Hover(depth, index int) {
	logging.Trace("menu.hover", map[string]interface{}{"depth": depth, "index": index})
}

func (MenuTracer) Activate(label, msgType string) {
	logging.Trace("menu.activate", map[string]interface{}{"label": label, "msg": msgType})
}

func (MenuTracer) Mnemonic(key rune, index int, matched bool) {
	logging.Trace("menu.mnemonic", map[string]interface{}{
		"key":     string(key),
		"index":   index,
		"matched": matched,
	})
}

func (MenuTracer) Prune(before, after int) {
	logging.Trace("menu.prune", map[string]interface{}{"before": before, "after": after})
}

func (MenuTracer) TypeAhead(depth int, query string, index int) {
	logging.Trace("menu.type-ahead", map[string]interface{}{
		"depth": depth,
		"query": query,
		"index": index,
	})
}

func (PointerTracer) ClickAway(x, y int) {
	logging.Trace("pointer.click-away", map[string]interface{}{"x": x, "y": y})
}

func (PointerTracer) Press(x, y int) {
	logging.Trace("pointer.press", map[string]interface{}{"x": x, "y": y})
}
