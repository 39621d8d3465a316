package workspace

// Button is a mouse button as seen by the workspace.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	// ButtonWheelUp and ButtonWheelDown are single wheel notches.
	ButtonWheelUp
	ButtonWheelDown
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel up"
	case ButtonWheelDown:
		return "wheel down"
	default:
		return "none"
	}
}
