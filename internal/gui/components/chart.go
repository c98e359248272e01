package components

import (
	"fmt"
	"image/color"

	"marine-guardian/internal/gui/layout"
	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ChartTitle     = "Species Count by Conservation Status"
	ChartMinHeight = 260
	barPadding     = 12
)

var statusColors = map[models.ConservationStatus]color.Color{
	models.StatusLeastConcern:         color.RGBA{R: 76, G: 175, B: 80, A: 255},
	models.StatusVulnerable:           color.RGBA{R: 255, G: 193, B: 7, A: 255},
	models.StatusEndangered:           color.RGBA{R: 255, G: 112, B: 67, A: 255},
	models.StatusCriticallyEndangered: color.RGBA{R: 244, G: 67, B: 54, A: 255},
	models.StatusOther:                color.RGBA{R: 158, G: 158, B: 158, A: 255},
}

// StatusChart draws one bar per conservation status
type StatusChart struct {
	container  *fyne.Container
	content    *fyne.Container
	barLayout  *layout.BarLayout
	totalLabel *widget.Label

	counts []models.StatusCount
}

func NewStatusChart() *StatusChart {
	sc := &StatusChart{
		barLayout:  layout.NewBarLayout(barPadding, ChartMinHeight),
		totalLabel: widget.NewLabel(""),
		content:    container.NewStack(),
	}

	title := widget.NewLabelWithStyle(ChartTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sc.container = container.NewBorder(title, sc.totalLabel, nil, nil, sc.content)
	sc.Update(models.Breakdown(nil))
	return sc
}

func (sc *StatusChart) GetContainer() *fyne.Container {
	return sc.container
}

// Update redraws the bars; bar heights are relative to the largest count
func (sc *StatusChart) Update(counts []models.StatusCount) {
	sc.counts = counts
	highest := models.MaxCount(counts)

	fractions := make([]float32, len(counts))
	bars := make([]fyne.CanvasObject, len(counts))
	labels := make([]fyne.CanvasObject, len(counts))

	for i, c := range counts {
		if highest > 0 {
			fractions[i] = float32(c.Count) / float32(highest)
		}

		fill, ok := statusColors[c.Status]
		if !ok {
			fill = statusColors[models.StatusOther]
		}
		bar := canvas.NewRectangle(fill)
		bar.CornerRadius = 3
		bars[i] = bar

		label := widget.NewLabelWithStyle(BarLabel(c), fyne.TextAlignCenter, fyne.TextStyle{})
		label.Wrapping = fyne.TextWrapWord
		labels[i] = label
	}
	sc.barLayout.SetFractions(fractions)

	plot := container.NewBorder(nil,
		container.NewGridWithColumns(max(len(labels), 1), labels...),
		nil, nil,
		container.New(sc.barLayout, bars...),
	)
	sc.content.Objects = []fyne.CanvasObject{plot}
	sc.content.Refresh()

	sc.totalLabel.SetText(fmt.Sprintf("Total sightings: %d", models.Total(counts)))
}

// Counts returns the data last drawn
func (sc *StatusChart) Counts() []models.StatusCount {
	return sc.counts
}

// BarHeights returns each bar's height as a fraction of the tallest
func (sc *StatusChart) BarHeights() []float32 {
	return sc.barLayout.Fractions()
}

// BarLabel is the caption under a bar
func BarLabel(c models.StatusCount) string {
	return fmt.Sprintf("%s\n%d", c.Status, c.Count)
}
