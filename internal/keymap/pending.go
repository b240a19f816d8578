package keymap

import (
	"github.com/arjunvelu/vimcore/internal/action"
)

// Operator names one of the keys that opens a pending operator+motion
// composition in Normal mode: "d", "c", "y" wait for a motion key and
// then build a Composed action out of the operator's effect and the
// motion, distinct from DeleteSelection/CopySelection which act on an
// already-present selection.
type Operator rune

// Combo is a fully resolved (operator, motion-key) pair.
type Combo struct {
	Op     Operator
	Motion rune
}

// PendingRegistry maps (operator, motion key) combos to the composed
// action they produce, and tracks the operator awaiting its motion.
type PendingRegistry struct {
	combos  map[Combo]action.Action
	pending Operator
	armed   bool
}

// NewPendingRegistry returns an empty registry.
func NewPendingRegistry() *PendingRegistry {
	return &PendingRegistry{combos: make(map[Combo]action.Action)}
}

// BindCombo registers the action produced when motion follows op.
func (p *PendingRegistry) BindCombo(op Operator, motion rune, a action.Action) {
	p.combos[Combo{op, motion}] = a
}

// IsOperator reports whether ch opens a pending composition.
func (p *PendingRegistry) IsOperator(ch rune) bool {
	_, known := p.operatorExists(Operator(ch))
	return known
}

func (p *PendingRegistry) operatorExists(op Operator) (Operator, bool) {
	for c := range p.combos {
		if c.Op == op {
			return op, true
		}
	}
	return 0, false
}

// Feed advances the pending-operator state machine by one resolved key
// (already a plain rune, e.g. from a KindChar Key). It returns
// (action, true) when an operator+motion combo completed, or (zero,
// false) when either an operator was armed (awaiting its motion) or ch
// matched nothing pending.
func (p *PendingRegistry) Feed(ch rune) (action.Action, bool) {
	if p.armed {
		op := p.pending
		p.armed = false
		p.pending = 0
		if a, ok := p.combos[Combo{op, ch}]; ok {
			return a, true
		}
		return action.Action{}, false
	}
	if _, ok := p.operatorExists(Operator(ch)); ok {
		p.pending = Operator(ch)
		p.armed = true
		return action.Action{}, false
	}
	return action.Action{}, false
}

// Armed reports whether an operator is currently awaiting its motion.
func (p *PendingRegistry) Armed() bool {
	return p.armed
}

// Reset clears any armed operator, e.g. on Esc.
func (p *PendingRegistry) Reset() {
	p.armed = false
	p.pending = 0
}
