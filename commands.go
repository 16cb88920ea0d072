package tview

// Command is a side effect returned by an event handler. The Application
// executes commands on its event loop after the handler returns, so handlers
// never call back into the Application while it holds its lock.
type Command any

// BatchCommand runs several commands in order.
type BatchCommand []Command

// AppendCommand combines two commands, either of which may be nil. Batches
// are flattened.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(flatten(current), flatten(next)...)
}

func flatten(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{cmd}
}

// SetFocusCommand focuses Target. Focusing the primitive that already has
// focus does nothing, so an armed long press survives the click that focuses
// its list.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen once the current event is handled.
type RedrawCommand struct{}

// QuitCommand stops the Application.
type QuitCommand struct{}

// SetTitleCommand sets the terminal window title.
type SetTitleCommand string

// ConsumeEventCommand marks an event as handled without any other effect.
type ConsumeEventCommand struct{}
