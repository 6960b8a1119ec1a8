package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

const (
	msgBadCredentials = "Usuário ou senha incorretos"
	msgServerError    = "Erro no servidor"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Message: "Requisição inválida"})
		return
	}

	user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Message: msgBadCredentials})
			return
		}
		h.logError(r, "login failed", err)
		writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User:    &loginUser{ID: user.ID, Username: user.UserName, Name: user.DisplayName},
	})
}
