package action

import "github.com/arjunvelu/vimcore/internal/mode"

// execStartCommand implements StartCommand, mirroring StartSearch:
// clears the command-line input and enters Command mode.
func execStartCommand(ctx *Context) {
	ctx.Cmdline.Start()
	*ctx.Mode = mode.Command
}

func execAppendCharToCommand(ctx *Context, ch rune) {
	ctx.Cmdline.PushChar(ch)
}

func execRemoveCharFromCommand(ctx *Context) {
	ctx.Cmdline.RemoveChar()
}

// execExecuteCommand implements ExecuteCommand: dispatches the current
// input, returns to Normal, and surfaces whatever HostAction the matched
// command produced.
func execExecuteCommand(ctx *Context) (any, bool) {
	result, ok := ctx.Cmdline.Execute(ctx.Cmdline.Input)
	*ctx.Mode = mode.Normal
	return result, ok
}

// execStopCommand implements StopCommand: cancels command-line entry and
// returns to Normal without executing anything.
func execStopCommand(ctx *Context) {
	ctx.Cmdline.Start()
	*ctx.Mode = mode.Normal
}
