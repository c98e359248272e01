package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const HeaderText = "MarineGuardian - Supporting SDG 14: Life Below Water"

var oceanBlue = color.RGBA{R: 0, G: 105, B: 148, A: 255}

// NewHeader returns the title banner shown above the tabs
func NewHeader() *fyne.Container {
	background := canvas.NewRectangle(oceanBlue)
	title := canvas.NewText(HeaderText, color.White)
	title.TextSize = 18
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	return container.NewStack(background, container.NewPadded(title))
}
