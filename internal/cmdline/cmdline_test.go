package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCommand() Command {
	return Command{
		Name:    "write",
		Aliases: []string{"w"},
		ActionFn: func(args string) HostAction {
			return "write:" + args
		},
	}
}

func TestExecute_MatchesByName(t *testing.T) {
	s := New([]Command{writeCommand()})
	action, ok := s.Execute("write foo.txt")
	require.True(t, ok)
	assert.Equal(t, "write:foo.txt", action)
}

func TestExecute_MatchesByAlias(t *testing.T) {
	s := New([]Command{writeCommand()})
	action, ok := s.Execute("w foo.txt")
	require.True(t, ok)
	assert.Equal(t, "write:foo.txt", action)
}

func TestExecute_NoArgsTailIsEmpty(t *testing.T) {
	s := New([]Command{writeCommand()})
	action, ok := s.Execute("write")
	require.True(t, ok)
	assert.Equal(t, "write:", action)
}

func TestExecute_UnknownCommandIsNoop(t *testing.T) {
	s := New([]Command{writeCommand()})
	_, ok := s.Execute("bogus")
	assert.False(t, ok)
}

func TestExecute_EmptyInputIsNoop(t *testing.T) {
	s := New([]Command{writeCommand()})
	_, ok := s.Execute("   ")
	assert.False(t, ok)
}

func TestPushAndRemoveChar(t *testing.T) {
	s := New(nil)
	s.Start()
	s.PushChar('w')
	s.PushChar('q')
	assert.Equal(t, "wq", s.Input)
	s.RemoveChar()
	assert.Equal(t, "w", s.Input)
	s.RemoveChar()
	s.RemoveChar()
	assert.Equal(t, "", s.Input)
}
