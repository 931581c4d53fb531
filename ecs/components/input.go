package components

// InputState is the player's intent for one frame.
type InputState struct {
	Up, Down, Left, Right bool

	Attack       bool
	Magic        bool
	SwitchWeapon bool
	SwitchMagic  bool
}

// Any reports whether any control is held.
func (i InputState) Any() bool {
	return i.Up || i.Down || i.Left || i.Right || i.Attack || i.Magic || i.SwitchWeapon || i.SwitchMagic
}
