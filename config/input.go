package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionTurnLeft
	ActionTurnRight
	ActionJump
	ActionSprint
	ActionThrow
	ActionAim
	ActionLock
	ActionRecall
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects the keyboard half used by a player
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Keyboard bindings per control scheme; gamepad buttons are shared.
	Schemes map[ControlSchemeID]map[ActionID][]ebiten.Key
	Gamepad map[ActionID][]ebiten.StandardGamepadButton
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.2,
		Schemes: map[ControlSchemeID]map[ActionID][]ebiten.Key{
			ControlSchemeWASD: {
				ActionMoveForward: {ebiten.KeyW},
				ActionMoveBack:    {ebiten.KeyS},
				ActionMoveLeft:    {ebiten.KeyA},
				ActionMoveRight:   {ebiten.KeyD},
				ActionTurnLeft:    {ebiten.KeyQ},
				ActionTurnRight:   {ebiten.KeyE},
				ActionJump:        {ebiten.KeySpace},
				ActionSprint:      {ebiten.KeyShiftLeft},
				ActionThrow:       {ebiten.KeyF},
				ActionAim:         {ebiten.KeyR},
				ActionLock:        {ebiten.KeyT},
				ActionRecall:      {ebiten.KeyG},
			},
			ControlSchemeArrows: {
				ActionMoveForward: {ebiten.KeyArrowUp},
				ActionMoveBack:    {ebiten.KeyArrowDown},
				ActionMoveLeft:    {ebiten.KeyArrowLeft},
				ActionMoveRight:   {ebiten.KeyArrowRight},
				ActionTurnLeft:    {ebiten.KeyComma},
				ActionTurnRight:   {ebiten.KeyPeriod},
				ActionJump:        {ebiten.KeyNumpad0, ebiten.KeyEnter},
				ActionSprint:      {ebiten.KeyShiftRight},
				ActionThrow:       {ebiten.KeyNumpad1, ebiten.KeyL},
				ActionAim:         {ebiten.KeyNumpad2, ebiten.KeyK},
				ActionLock:        {ebiten.KeyNumpad3, ebiten.KeyJ},
				ActionRecall:      {ebiten.KeyNumpad4, ebiten.KeyH},
			},
		},
		// Face buttons, Xbox naming:
		// X throws, Y aims, RB locks on, LB recalls.
		Gamepad: map[ActionID][]ebiten.StandardGamepadButton{
			ActionMoveForward: {ebiten.StandardGamepadButtonLeftTop},
			ActionMoveBack:    {ebiten.StandardGamepadButtonLeftBottom},
			ActionMoveLeft:    {ebiten.StandardGamepadButtonLeftLeft},
			ActionMoveRight:   {ebiten.StandardGamepadButtonLeftRight},
			ActionJump:        {ebiten.StandardGamepadButtonRightBottom},
			ActionSprint:      {ebiten.StandardGamepadButtonRightRight},
			ActionThrow:       {ebiten.StandardGamepadButtonRightLeft},
			ActionAim:         {ebiten.StandardGamepadButtonRightTop},
			ActionLock:        {ebiten.StandardGamepadButtonFrontTopRight},
			ActionRecall:      {ebiten.StandardGamepadButtonFrontTopLeft},
		},
	}
}
