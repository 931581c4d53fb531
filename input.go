package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/overworld/ecs/components"
)

const stickDeadzone = 0.2

// Input samples the keyboard and the first gamepad once per tick.
type Input struct {
	state components.InputState

	menuPressed bool
	savePressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	s := components.InputState{
		Up:           ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:         ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Attack:       ebiten.IsKeyPressed(ebiten.KeySpace),
		Magic:        ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		SwitchWeapon: ebiten.IsKeyPressed(ebiten.KeyQ),
		SwitchMagic:  ebiten.IsKeyPressed(ebiten.KeyE),
	}
	menu := inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		s.Left = s.Left || x < -stickDeadzone
		s.Right = s.Right || x > stickDeadzone
		s.Up = s.Up || y < -stickDeadzone
		s.Down = s.Down || y > stickDeadzone

		s.Attack = s.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.Magic = s.Magic || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		s.SwitchWeapon = s.SwitchWeapon || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		s.SwitchMagic = s.SwitchMagic || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		menu = menu || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	i.state = s
	i.menuPressed = menu
	i.savePressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

// State is the gameplay input for this tick.
func (i *Input) State() components.InputState {
	return i.state
}

func (i *Input) MenuPressed() bool { return i.menuPressed }

func (i *Input) SavePressed() bool { return i.savePressed }
