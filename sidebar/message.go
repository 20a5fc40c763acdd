package sidebar

import "fmt"

// Field names a control of the brush section independently of any widget toolkit.
type Field int

const (
	FieldShape Field = iota
	FieldMode
	FieldWidth
	FieldLength
	FieldRadius
)

func (f Field) String() string {
	switch f {
	case FieldShape:
		return "shape"
	case FieldMode:
		return "mode"
	case FieldWidth:
		return "width"
	case FieldLength:
		return "length"
	case FieldRadius:
		return "radius"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Message is a change reported by the UI host.
type Message interface {
	isMessage()
}

// SelectionChanged is sent when a dropdown gets a new selected index.
type SelectionChanged struct {
	Field Field
	Index int
}

// ValueChanged is sent when a numeric field gets a new value.
type ValueChanged struct {
	Field Field
	Value float32
}

func (SelectionChanged) isMessage() {}
func (ValueChanged) isMessage()     {}

// Command is an update pushed from the brush into a widget.
type Command interface {
	isCommand()
}

type SetSelection struct {
	Field Field
	Index int
}

type SetValue struct {
	Field Field
	Value float32
}

func (SetSelection) isCommand() {}
func (SetValue) isCommand()     {}

// Host applies commands to real widgets.
type Host interface {
	Send(cmd Command)
}

// HostFunc adapts a plain function to Host.
type HostFunc func(cmd Command)

func (f HostFunc) Send(cmd Command) {
	f(cmd)
}
