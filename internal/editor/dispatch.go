package editor

import (
	"github.com/arjunvelu/vimcore/internal/keymap"
)

// HostAction is the payload a dispatched Action may bubble out to the
// caller (a Custom action, or a command-line Execute), exactly as
// action.Action.Execute returns it.
type HostAction = any

// Handle resolves one key against the current mode's bindings and, if a
// complete Action resolved, executes it and returns the HostAction it
// produced, if any. A key that only advances a pending multi-key
// sequence or an armed operator returns (nil, false) without mutating
// the buffer.
func (s *State) Handle(k keymap.Key) (HostAction, bool) {
	a, ok := keymap.Dispatch(s.Keys, s.Pending, s.Mode, k)
	if !ok {
		return nil, false
	}
	return a.Execute(s.context())
}
