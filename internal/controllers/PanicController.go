package controllers

import (
	"net/http"
	"respire/internal/coping"
	"respire/internal/providers"
)

type PanicController struct {
	logger   providers.Logger
	protocol coping.ProtocolInterface
	cache    providers.CacheProviderInterface
}

func NewPanicController(logger providers.Logger, protocol coping.ProtocolInterface, cache providers.CacheProviderInterface) *PanicController {
	return &PanicController{logger: logger, protocol: protocol, cache: cache}
}

type panicEventRequest struct {
	ID      string `json:"id" validate:"required"`
	Event   string `json:"event" validate:"required"`
	Trigger string `json:"trigger"`
}

func (pc *PanicController) Open(w http.ResponseWriter, r *http.Request) {
	view, err := pc.protocol.Open()
	if err != nil {
		writeError(w, pc.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (pc *PanicController) Current(w http.ResponseWriter, r *http.Request) {
	view, ok := pc.protocol.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no panic session open"})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (pc *PanicController) Event(w http.ResponseWriter, r *http.Request) {
	var req panicEventRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, pc.logger, r, err)
		return
	}
	event, err := coping.ParseEvent(req.Event)
	if err != nil {
		writeError(w, pc.logger, r, err)
		return
	}

	view, err := pc.protocol.Fire(r.Context(), req.ID, event, req.Trigger)
	if err != nil {
		writeError(w, pc.logger, r, err)
		return
	}
	if event == coping.EventArchive {
		pc.cache.Del(cacheKeyLogs)
	}
	writeJSON(w, http.StatusOK, view)
}
