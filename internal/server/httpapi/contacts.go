package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

const (
	msgInvalidRequest  = "Requisição inválida"
	msgInvalidID       = "ID inválido"
	msgContactNotFound = "Contato não encontrado"
)

func (h *Handler) ListNew(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListNew(r.Context())
	if err != nil {
		h.logError(r, "failed to list new contacts", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar contatos")
		return
	}

	resp := make([]NewContactResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, toNewContactResponse(c, h.loc))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AddNew(w http.ResponseWriter, r *http.Request) {
	var req newContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	c, err := h.contacts.AddNew(r.Context(), services.NewContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		UserID:  req.UserID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "Nome é obrigatório")
			return
		}
		h.logError(r, "failed to add contact", err)
		writeError(w, http.StatusInternalServerError, "Erro ao adicionar contato")
		return
	}

	writeJSON(w, http.StatusOK, toNewContactResponse(c, h.loc))
}

func (h *Handler) DeleteNew(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.contacts.DeleteNew(r.Context(), id); err != nil {
		h.logError(r, "failed to delete new contact", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Erro ao deletar contato")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListSaved(r.Context())
	if err != nil {
		h.logError(r, "failed to list saved contacts", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar contatos")
		return
	}

	resp := make([]SavedContactResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, toSavedContactResponse(c, h.loc))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Promote moves a new contact to the saved store. The body is optional.
func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req promoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	saved, err := h.contacts.Promote(r.Context(), id, req.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgContactNotFound)
			return
		}
		h.logError(r, "failed to promote contact", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Erro ao salvar contato")
		return
	}

	writeJSON(w, http.StatusOK, toSavedContactResponse(saved, h.loc))
}

func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.contacts.DeleteSaved(r.Context(), id); err != nil {
		h.logError(r, "failed to delete saved contact", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Erro ao deletar contato")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
