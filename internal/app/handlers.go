package app

import (
	"marine-guardian/internal/controllers"
	"marine-guardian/internal/models"
)

// Handlers routes window events to the controller
type Handlers struct {
	controller *controllers.MainController
}

func NewHandlers(controller *controllers.MainController) *Handlers {
	return &Handlers{controller: controller}
}

func (h *Handlers) HandleAdd(in models.SightingInput) {
	h.controller.Add(in)
}

func (h *Handlers) HandleUpdate(sel controllers.Selection, in models.SightingInput) {
	h.controller.Update(sel, in)
}

func (h *Handlers) HandleDelete(sel controllers.Selection) {
	h.controller.Delete(sel)
}

func (h *Handlers) HandleClear() {
	h.controller.Clear()
}

func (h *Handlers) HandleSelect(sel controllers.Selection) {
	h.controller.Select(sel)
}

func (h *Handlers) HandleSort(key models.SortKey) {
	h.controller.SetSort(key)
}

func (h *Handlers) HandleRefresh() {
	h.controller.Refresh()
}
