package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput is the pointer state sampled once per update, in surface pixels.
type PointerInput struct {
	X, Y int
	// JustPressed is true on the frame a click or touch begins.
	JustPressed bool
}

// ReadPointer samples touch first, then the mouse.
func ReadPointer() PointerInput {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerInput{X: x, Y: y, JustPressed: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerInput{X: x, Y: y}
	}
	x, y := ebiten.CursorPosition()
	return PointerInput{
		X:           x,
		Y:           y,
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}
