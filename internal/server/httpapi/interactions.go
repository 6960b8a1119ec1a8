package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	_, err := h.interactions.Record(r.Context(), services.InteractionInput{
		ContactID:   req.ContactID,
		ContactKind: req.ContactKind,
		Kind:        req.Kind,
		UserID:      req.UserID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		h.logError(r, "failed to record interaction", err)
		writeError(w, http.StatusInternalServerError, "Erro ao registrar interação")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
