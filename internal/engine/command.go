package engine

// Command is a discrete player request delivered through an InputSource.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveDown
	CmdRotate
	CmdDropDown
	CmdExit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveDown:
		return "MoveDown"
	case CmdRotate:
		return "Rotate"
	case CmdDropDown:
		return "DropDown"
	case CmdExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
