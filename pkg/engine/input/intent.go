package input

// Intent is the host-level meaning of a key event: what the console session
// should do, independent of which key produced it.
type Intent int

const (
	IntentNone Intent = iota

	// Line editing
	IntentInsert
	IntentErase
	IntentSubmit

	// Navigation
	IntentHistoryOlder
	IntentHistoryNewer
	IntentScrollOlder
	IntentScrollNewer
	IntentCycleTarget

	IntentQuit
)

// Bindings maps event kinds to intents. Printable runes always insert and
// are not listed here.
type Bindings map[Kind]Intent

// DefaultBindings returns the standard console key map.
func DefaultBindings() Bindings {
	return Bindings{
		KindEnter:     IntentSubmit,
		KindBackspace: IntentErase,
		KindTab:       IntentCycleTarget,
		KindArrowUp:   IntentHistoryOlder,
		KindArrowDown: IntentHistoryNewer,
		KindPageUp:    IntentScrollOlder,
		KindPageDown:  IntentScrollNewer,
		KindInterrupt: IntentQuit,
		KindEOF:       IntentQuit,
	}
}

// Translate resolves an event to its intent under these bindings. Unbound
// events resolve to IntentNone.
func (b Bindings) Translate(e Event) Intent {
	if e.Kind == KindRune {
		return IntentInsert
	}
	if intent, ok := b[e.Kind]; ok {
		return intent
	}
	return IntentNone
}
