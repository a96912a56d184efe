// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.services.StatusService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading status")
		http.Error(w, "status unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
