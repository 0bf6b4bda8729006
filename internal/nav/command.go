package nav

// Command is one discrete navigation request from the user.
type Command int

const (
	None Command = iota
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
	ToggleHex
	Reset
	Quit
)

var commandNames = [...]string{
	None:      "none",
	PanLeft:   "pan-left",
	PanRight:  "pan-right",
	ZoomIn:    "zoom-in",
	ZoomOut:   "zoom-out",
	ToggleHex: "toggle-hex",
	Reset:     "reset",
	Quit:      "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Replay applies cmds in order starting from v.
func Replay(v Viewport, cmds ...Command) Viewport {
	for _, c := range cmds {
		v = v.Apply(c)
	}
	return v
}
