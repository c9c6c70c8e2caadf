package http

import (
	"net/http"
	"strconv"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"

	"github.com/gorilla/mux"
)

type GearHandler struct {
	gear service.GearService
}

func NewGearHandler(gear service.GearService) *GearHandler {
	return &GearHandler{gear: gear}
}

func (h *GearHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.gear.ListGear(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logger.Error("failed to list gear", "error", err)
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GearHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid gear id")
		return
	}

	item, err := h.gear.GetGear(r.Context(), int32(id))
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
