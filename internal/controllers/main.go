package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marine-guardian/internal/logger"
	"marine-guardian/internal/models"
	"marine-guardian/internal/services"
	"marine-guardian/internal/store"
)

// View is what the controller needs from the window
type View interface {
	ShowSightings(sightings []models.Sighting)
	ShowStatistics(counts []models.StatusCount)
	FillForm(sighting models.Sighting)
	ClearForm()
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowError(title string, err error)
	Confirm(title, message string, onConfirm func())
}

// SightingService is the subset of services.SightingService used here
type SightingService interface {
	Add(ctx context.Context, in models.SightingInput) (int64, error)
	List(ctx context.Context, key models.SortKey) ([]models.Sighting, error)
	Get(ctx context.Context, id int64) (models.Sighting, error)
	Update(ctx context.Context, id int64, in models.SightingInput) error
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) ([]models.StatusCount, error)
}

// MainController runs every user action as one service call followed by a
// refresh of the list and chart
type MainController struct {
	ctx     context.Context
	service SightingService
	view    View
	logger  logger.Logger
	sortKey models.SortKey
}

// NewMainController creates a controller; SetView must be called before use
func NewMainController(ctx context.Context, service SightingService, log logger.Logger, sortKey models.SortKey) *MainController {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &MainController{
		ctx:     ctx,
		service: service,
		logger:  log,
		sortKey: sortKey,
	}
}

// SetView associates the window with this controller
func (mc *MainController) SetView(view View) {
	mc.view = view
}

// SortKey returns the ordering currently applied to the list
func (mc *MainController) SortKey() models.SortKey {
	return mc.sortKey
}

// SetSort changes the list ordering and reloads. Reloading drops the table
// selection, so the form is cleared with it.
func (mc *MainController) SetSort(key models.SortKey) {
	mc.sortKey = key
	mc.logger.Debug("MainController", "sort changed", map[string]interface{}{
		"sort": string(key),
	})
	mc.view.ClearForm()
	mc.Refresh()
}

// Refresh reloads the list and the chart from the store
func (mc *MainController) Refresh() {
	sightings, err := mc.service.List(mc.ctx, mc.sortKey)
	if err != nil {
		mc.handleError("Database Error", err)
		return
	}
	mc.view.ShowSightings(sightings)

	stats, err := mc.service.Statistics(mc.ctx)
	if err != nil {
		mc.handleError("Database Error", err)
		return
	}
	mc.view.ShowStatistics(stats)
}

// Select loads sighting id into the form
func (mc *MainController) Select(sel Selection) {
	id, ok := sel.ID()
	if !ok {
		mc.view.ClearForm()
		return
	}

	sighting, err := mc.service.Get(mc.ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		mc.view.ShowInfo("Not Found", "The selected record no longer exists.")
		mc.view.ClearForm()
		mc.Refresh()
		return
	}
	if err != nil {
		mc.handleError("Database Error", err)
		return
	}
	mc.view.FillForm(sighting)
}

// Add creates a sighting from the form input
func (mc *MainController) Add(in models.SightingInput) {
	if _, err := mc.service.Add(mc.ctx, in); err != nil {
		mc.handleError("Error", err)
		return
	}

	mc.view.ShowInfo("Success", "Species record added successfully.")
	mc.view.ClearForm()
	mc.Refresh()
}

// Update rewrites the selected sighting with the form input
func (mc *MainController) Update(sel Selection, in models.SightingInput) {
	id, ok := sel.ID()
	if !ok {
		mc.view.ShowWarning("Selection Error", "Please select a record to update.")
		return
	}

	err := mc.service.Update(mc.ctx, id, in)
	if errors.Is(err, services.ErrNotFound) {
		mc.view.ShowInfo("Not Found", "The selected record no longer exists; nothing was updated.")
		mc.view.ClearForm()
		mc.Refresh()
		return
	}
	if err != nil {
		mc.handleError("Error", err)
		return
	}

	mc.view.ShowInfo("Success", "Record updated successfully.")
	mc.view.ClearForm()
	mc.Refresh()
}

// Delete asks for confirmation, then removes the selected sighting
func (mc *MainController) Delete(sel Selection) {
	id, ok := sel.ID()
	if !ok {
		mc.view.ShowWarning("Selection Error", "Please select a record to delete.")
		return
	}

	mc.view.Confirm("Confirm Delete", "Are you sure you want to delete this record?", func() {
		err := mc.service.Delete(mc.ctx, id)
		if errors.Is(err, services.ErrNotFound) {
			mc.view.ShowInfo("Not Found", "The selected record no longer exists; nothing was deleted.")
		} else if err != nil {
			mc.handleError("Error", err)
			return
		} else {
			mc.view.ShowInfo("Deleted", "Record removed from database.")
		}
		mc.view.ClearForm()
		mc.Refresh()
	})
}

// Clear resets the form and drops the selection
func (mc *MainController) Clear() {
	mc.view.ClearForm()
}

func (mc *MainController) handleError(title string, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		mc.view.ShowWarning("Input Error", inputErrorMessage(validationErr))
		return
	}

	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})

	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		mc.view.ShowError(title, errors.New(storageErr.UserMessage()))
		return
	}
	mc.view.ShowError(title, err)
}

// inputErrorMessage keeps the familiar wording for the common case of a
// missing required field and lists anything else
func inputErrorMessage(err *models.ValidationError) string {
	onlyRequired := true
	for _, p := range err.Problems {
		if !strings.HasSuffix(p, " is required") {
			onlyRequired = false
			break
		}
	}
	if onlyRequired {
		return "Common Name and Location are required!"
	}
	return fmt.Sprintf("Please correct the following:\n%s", strings.Join(err.Problems, "\n"))
}
