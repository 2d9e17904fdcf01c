package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CursorJustPressed returns the screen position of a click or tap that
// started this tick. This is used to handle both mouse and touch inputs.
func CursorJustPressed() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	return len(touchIDs) > 0
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsUndoJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyZ)
}

func IsRedoJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyY)
}

func IsHintJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyH)
}

func IsCheckJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func IsNewGameJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyN)
}

func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
