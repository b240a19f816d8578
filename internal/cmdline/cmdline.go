// Package cmdline implements the command-line state machine: a free-text
// input line that, on execute, tokenizes on the first whitespace run and
// dispatches to a registered command by name or alias.
package cmdline

import "strings"

// HostAction is an opaque payload a command's ActionFn returns, bubbled
// out of the dispatcher unevaluated, mirroring Custom in the action
// catalog.
type HostAction any

// Command is one entry in the registry: a name, optional aliases, and a
// function invoked with the argument tail when the command is executed.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	ActionFn    func(args string) HostAction
}

func (c Command) matches(head string) bool {
	if c.Name == head {
		return true
	}
	for _, a := range c.Aliases {
		if a == head {
			return true
		}
	}
	return false
}

// State holds the in-progress command-line input and the registry it
// executes against.
type State struct {
	Input    string
	Commands []Command
}

// New returns an empty command-line state with the given registry.
func New(commands []Command) *State {
	return &State{Commands: commands}
}

// Start clears Input, entering command-line editing.
func (s *State) Start() {
	s.Input = ""
}

// PushChar appends ch to Input.
func (s *State) PushChar(ch rune) {
	s.Input += string(ch)
}

// RemoveChar removes the last rune of Input, if any.
func (s *State) RemoveChar() {
	if s.Input == "" {
		return
	}
	r := []rune(s.Input)
	s.Input = string(r[:len(r)-1])
}

// Execute tokenizes input on the first whitespace run — head is the
// command name, tail the remaining argument string — and invokes the
// first registered command whose name or alias equals head. Returns the
// resulting HostAction and true on a match; on no match, execution is a
// no-op and ok is false.
func (s *State) Execute(input string) (HostAction, bool) {
	trimmed := strings.TrimLeft(input, " \t")
	idx := strings.IndexAny(trimmed, " \t")
	var head, tail string
	if idx < 0 {
		head = trimmed
	} else {
		head = trimmed[:idx]
		tail = strings.TrimSpace(trimmed[idx+1:])
	}
	if head == "" {
		return nil, false
	}
	for _, c := range s.Commands {
		if c.matches(head) {
			return c.ActionFn(tail), true
		}
	}
	return nil, false
}
