// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/vendingworks/coffeemaker/pkg/defaults"
	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
	"github.com/vendingworks/coffeemaker/pkg/server"
)

// Handler exposes one machine over HTTP.
type Handler struct {
	machine *machine.Machine
}

// NewHandler returns a Handler for m.
func NewHandler(m *machine.Machine) *Handler {
	return &Handler{machine: m}
}

// Routes returns the handler's ServeMux patterns.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/recipes":           h.HandleListRecipes,
		"POST /v1/recipes":          h.HandleAddRecipe,
		"PUT /v1/recipes/{slot}":    h.HandleEditRecipe,
		"DELETE /v1/recipes/{slot}": h.HandleDeleteRecipe,
		"GET /v1/inventory":         h.HandleGetInventory,
		"POST /v1/inventory":        h.HandleAddInventory,
		"POST /v1/purchases":        h.HandlePurchase,
	}
}

// HandleListRecipes serves GET /v1/recipes.
func (h *Handler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, RecipesResponse{
		Capacity: h.machine.Capacity(),
		Slots:    h.machine.Recipes(),
	})
}

// HandleAddRecipe serves POST /v1/recipes. A full book or a duplicate name
// is a conflict.
func (h *Handler) HandleAddRecipe(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if !decodeBody(w, r, &req) || !checkContext(w, r) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			"Recipe name is required", false, nil)
		return
	}

	rcp, err := req.Recipe()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe", nil)
		return
	}

	if !h.machine.AddRecipe(rcp) {
		server.WriteError(w, r, http.StatusConflict, cmerrors.ErrCodeConflict,
			"Recipe book is full or name already in use", false, map[string]any{
				"name":     rcp.Name(),
				"capacity": h.machine.Capacity(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusCreated, RecipeChangeResponse{
		Name:  rcp.Name(),
		Slots: h.machine.Recipes(),
	})
}

// HandleEditRecipe serves PUT /v1/recipes/{slot}. The slot keeps its name.
func (h *Handler) HandleEditRecipe(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	var req RecipeRequest
	if !decodeBody(w, r, &req) || !checkContext(w, r) {
		return
	}

	rcp, err := req.Recipe()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe", nil)
		return
	}

	name, ok := h.machine.EditRecipe(slot, rcp)
	if !ok {
		writeSlotNotFound(w, r, slot)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, RecipeChangeResponse{
		Name:  name,
		Slot:  ptr.To(slot),
		Slots: h.machine.Recipes(),
	})
}

// HandleDeleteRecipe serves DELETE /v1/recipes/{slot}.
func (h *Handler) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok || !checkContext(w, r) {
		return
	}

	name, ok := h.machine.DeleteRecipe(slot)
	if !ok {
		writeSlotNotFound(w, r, slot)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, RecipeChangeResponse{
		Name:  name,
		Slot:  ptr.To(slot),
		Slots: h.machine.Recipes(),
	})
}

// HandleGetInventory serves GET /v1/inventory.
func (h *Handler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, h.machine.Inventory())
}

// HandleAddInventory serves POST /v1/inventory. Omitted ingredients add
// nothing; any malformed amount rejects the whole delivery.
func (h *Handler) HandleAddInventory(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if !decodeBody(w, r, &req) || !checkContext(w, r) {
		return
	}

	err := h.machine.AddInventory(amountText(req.Coffee), amountText(req.Milk),
		amountText(req.Sugar), amountText(req.Chocolate))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add inventory", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, h.machine.Inventory())
}

// HandlePurchase serves POST /v1/purchases. Refunds are reported in the
// receipt with status 200.
func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Selection == nil || req.Payment == nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			"selection and payment are required", false, nil)
		return
	}
	if !checkContext(w, r) {
		return
	}

	receipt := h.machine.Purchase(*req.Selection, *req.Payment)
	serializer.RespondJSON(w, http.StatusOK, receipt)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			"Request body is required", false, nil)
		return false
	}
	defer r.Body.Close()

	format := serializer.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = serializer.FormatYAML
	}

	rd, err := serializer.NewReader(format, http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err == nil {
		err = rd.Deserialize(v)
	}
	if err != nil {
		slog.Debug("request body rejected", "error", err, "requestID", server.RequestID(r.Context()))
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return false
	}
	return true
}

func checkContext(w http.ResponseWriter, r *http.Request) bool {
	if err := r.Context().Err(); err != nil {
		server.WriteErrorFromErr(w, r,
			cmerrors.Wrap(cmerrors.ErrCodeTimeout, "Request deadline exceeded", err), "", nil)
		return false
	}
	return true
}

func slotParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("slot")
	slot, err := strconv.Atoi(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			"Slot must be an integer", false, map[string]any{"slot": raw})
		return 0, false
	}
	return slot, true
}

func writeSlotNotFound(w http.ResponseWriter, r *http.Request, slot int) {
	server.WriteError(w, r, http.StatusNotFound, cmerrors.ErrCodeNotFound,
		fmt.Sprintf("No recipe in slot %d", slot), false, map[string]any{"slot": slot})
}
