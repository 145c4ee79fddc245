package sim

// EventKind identifies an entry in a Hart's trace.
type EventKind uint8

const (
	EvtSetMIE EventKind = iota + 1
	EvtClearMIE
	EvtRaise
	EvtTrap
	EvtReturn
	EvtMark
)

func (k EventKind) String() string {
	switch k {
	case EvtSetMIE:
		return "SET_MIE"
	case EvtClearMIE:
		return "CLEAR_MIE"
	case EvtRaise:
		return "RAISE"
	case EvtTrap:
		return "TRAP"
	case EvtReturn:
		return "MRET"
	case EvtMark:
		return "MARK"
	default:
		return "UNKNOWN"
	}
}

// Event is one entry in a Hart's trace. MIE is the enable bit after the
// event took effect.
type Event struct {
	Kind EventKind
	Line int
	Note string
	MIE  bool
}

// Mark appends a labelled event, letting tests place their own code in the
// trace.
func (h *Hart) Mark(note string) {
	h.record(Event{Kind: EvtMark, Note: note})
}

// Trace returns a copy of the recorded events.
func (h *Hart) Trace() []Event {
	out := make([]Event, len(h.trace))
	copy(out, h.trace)
	return out
}

// ResetTrace discards recorded events.
func (h *Hart) ResetTrace() {
	h.trace = h.trace[:0]
}

func (h *Hart) record(e Event) {
	e.MIE = h.mstatus.MIE()
	h.trace = append(h.trace, e)
}
