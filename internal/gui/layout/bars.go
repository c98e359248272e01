package layout

import (
	"fyne.io/fyne/v2"
)

// BarLayout places one object per column and sizes its height to the
// matching fraction of the container, bottom-aligned
type BarLayout struct {
	fractions []float32
	padding   float32
	minHeight float32
}

func NewBarLayout(padding, minHeight float32) *BarLayout {
	return &BarLayout{
		padding:   padding,
		minHeight: minHeight,
	}
}

// SetFractions sets bar heights as values in [0, 1]; out of range values
// are clamped
func (bl *BarLayout) SetFractions(fractions []float32) {
	bl.fractions = make([]float32, len(fractions))
	for i, f := range fractions {
		switch {
		case f < 0:
			f = 0
		case f > 1:
			f = 1
		}
		bl.fractions[i] = f
	}
}

func (bl *BarLayout) Fractions() []float32 {
	return bl.fractions
}

func (bl *BarLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	columnWidth := containerSize.Width / float32(len(objects))
	for i, obj := range objects {
		fraction := float32(0)
		if i < len(bl.fractions) {
			fraction = bl.fractions[i]
		}

		height := containerSize.Height * fraction
		obj.Resize(fyne.NewSize(columnWidth-bl.padding*2, height))
		obj.Move(fyne.NewPos(float32(i)*columnWidth+bl.padding, containerSize.Height-height))
	}
}

func (bl *BarLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(float32(len(objects))*(bl.padding*2+1), bl.minHeight)
}
