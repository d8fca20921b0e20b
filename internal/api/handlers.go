/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the REST API.
    These functions decode and validate JSON requests, forward the
    player's intent to the game session, and return JSON snapshots.

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Are required fields present?)
    - State Modification (delegated to game.Session, which owns locking)
    - Error Mapping (rejected transitions become 404/409/422)
*/

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/everforgeworks/umami-lab/internal/game"
	"github.com/everforgeworks/umami-lab/internal/history"
	"github.com/everforgeworks/umami-lab/internal/kitchen"
	"github.com/everforgeworks/umami-lab/internal/logger"
)

// Request DTOs (Data Transfer Objects)
// These structs define exactly what we expect the client to send us.

type IngredientRequest struct {
	Ingredient string `json:"ingredient" validate:"required,max=64"`
}

type UpgradeRequest struct {
	Upgrade string `json:"upgrade" validate:"required,max=64"`
}

// ServeResponse pairs the served customer's result with the state that followed.
type ServeResponse struct {
	Result game.DayResult `json:"result"`
	State  game.Snapshot  `json:"state"`
}

// CatalogResponse lists what the market sells.
type CatalogResponse struct {
	Ingredients []kitchen.Ingredient `json:"ingredients"`
	Upgrades    []game.Upgrade       `json:"upgrades"`
}

// RunsResponse lists finished runs, most recent first.
type RunsResponse struct {
	Runs  []game.RunSummary `json:"runs"`
	Stats history.Stats     `json:"stats"`
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// Handlers serves the game API for one session.
type Handlers struct {
	session  *game.Session
	runs     *history.Store
	validate *validator.Validate
}

// NewHandlers wires the handlers to a session and its run history.
func NewHandlers(session *game.Session, runs *history.Store) *Handlers {
	return &Handlers{
		session:  session,
		runs:     runs,
		validate: validator.New(),
	}
}

// decode reads and validates a JSON body. On failure the response is already written.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, req interface{}, action string) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debug("Failed to decode request", "action", action, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgValidationError,
			Fields: formatValidationError(err),
		})
		return false
	}
	return true
}

// respondAction reports the outcome of a session call.
func (h *Handlers) respondAction(w http.ResponseWriter, err error) {
	if err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleHealthz provides a basic liveness check
func (h *Handlers) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleGetState returns the current snapshot.
func (h *Handlers) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleGetCatalog returns the ingredient table and upgrade list.
func (h *Handlers) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		Ingredients: h.session.Catalog().All(),
		Upgrades:    game.Upgrades,
	})
}

// HandleBuyIngredient buys one unit in the market.
func (h *Handlers) HandleBuyIngredient(w http.ResponseWriter, r *http.Request) {
	var req IngredientRequest
	if !h.decode(w, r, &req, "buy_ingredient") {
		return
	}
	h.respondAction(w, h.session.BuyIngredient(req.Ingredient))
}

// HandleBuyUpgrade buys a one-time upgrade.
func (h *Handlers) HandleBuyUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if !h.decode(w, r, &req, "buy_upgrade") {
		return
	}
	h.respondAction(w, h.session.BuyUpgrade(game.UpgradeKey(req.Upgrade)))
}

// HandleStartService opens service for the day.
func (h *Handlers) HandleStartService(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, h.session.StartService())
}

// HandleAddIngredient stages one owned unit on the dish.
func (h *Handlers) HandleAddIngredient(w http.ResponseWriter, r *http.Request) {
	var req IngredientRequest
	if !h.decode(w, r, &req, "add_ingredient") {
		return
	}
	h.respondAction(w, h.session.AddIngredient(req.Ingredient))
}

// HandleRemoveIngredient unstages the unit at {index}.
func (h *Handlers) HandleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, ErrMsgInvalidIndex)
		return
	}
	h.respondAction(w, h.session.RemoveIngredient(index))
}

// HandleServe serves the staged dish to the current customer.
func (h *Handlers) HandleServe(w http.ResponseWriter, r *http.Request) {
	result, err := h.session.Serve()
	if err != nil {
		respondGameError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ServeResponse{Result: result, State: h.session.Snapshot()})
}

// HandleNextDay applies the end-of-day gate.
func (h *Handlers) HandleNextDay(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, h.session.NextDay())
}

// HandleRestart starts a new run.
func (h *Handlers) HandleRestart(w http.ResponseWriter, r *http.Request) {
	h.session.Restart()
	logger.FromContext(r.Context()).Info("Run restarted by player")
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleListRuns returns finished runs.
func (h *Handlers) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RunsResponse{
		Runs:  h.runs.List(),
		Stats: h.runs.GetStats(),
	})
}

// HandleClearRuns empties the run history.
func (h *Handlers) HandleClearRuns(w http.ResponseWriter, r *http.Request) {
	h.runs.Clear()
	logger.FromContext(r.Context()).Info("Run history cleared")
	respondJSON(w, http.StatusOK, RunsResponse{
		Runs:  h.runs.List(),
		Stats: h.runs.GetStats(),
	})
}

// HandleGetRun returns one finished run.
func (h *Handlers) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.runs.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgRunNotFound)
		return
	}
	respondJSON(w, http.StatusOK, run)
}
