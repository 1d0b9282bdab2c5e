package render

import "github.com/gdamore/tcell/v2"

// Action is a player intent decoded from a terminal event
type Action int

const (
	ActionNone Action = iota
	ActionClick
	ActionReset
	ActionSlower     // Longer tick interval
	ActionFaster     // Shorter tick interval
	ActionMorePoints // Larger click increment
	ActionLessPoints // Smaller click increment
	ActionResize
	ActionQuit
)

// Input decodes key and mouse events; a click fires on the button press edge only
type Input struct {
	buttons tcell.ButtonMask
}

// Translate maps a terminal event to an action and, for clicks, the cell clicked
func (in *Input) Translate(ev tcell.Event) (Action, int, int) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), -1, -1

	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		wasPressed := in.buttons & tcell.Button1
		in.buttons = ev.Buttons()
		if pressed != 0 && wasPressed == 0 {
			x, y := ev.Position()
			return ActionClick, x, y
		}

	case *tcell.EventResize:
		return ActionResize, -1, -1
	}
	return ActionNone, -1, -1
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionClick
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q':
		return ActionQuit
	case ' ':
		return ActionClick
	case 'r':
		return ActionReset
	case '+', '=':
		return ActionSlower
	case '-', '_':
		return ActionFaster
	case ']':
		return ActionMorePoints
	case '[':
		return ActionLessPoints
	}
	return ActionNone
}
