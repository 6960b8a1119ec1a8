package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

// writeJSON marshals v and writes it with the given status. A marshal
// failure becomes a plain 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Erro no servidor"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"nome"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    *loginUser `json:"user,omitempty"`
	Message string     `json:"message,omitempty"`
}

type newContactRequest struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Message string `json:"mensagem"`
	UserID  *int64 `json:"usuario_id"`
}

type promoteRequest struct {
	UserID *int64 `json:"usuario_id"`
}

type interactionRequest struct {
	ContactID   int64  `json:"contato_id"`
	ContactKind string `json:"tipo_contato"`
	Kind        string `json:"tipo_interacao"`
	UserID      *int64 `json:"usuario_id"`
}

// NewContactResponse is the wire form of a new contact.
type NewContactResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Message string `json:"mensagem"`
	Date    string `json:"data"`
}

// SavedContactResponse is the wire form of a saved contact. Date carries
// the original received time, not the saved time.
type SavedContactResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"nome"`
	Email   string  `json:"email"`
	Phone   string  `json:"telefone"`
	Message string  `json:"mensagem"`
	Notes   *string `json:"observacoes"`
	Date    string  `json:"data"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func formatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(common.DisplayTimeLayout)
}

func toNewContactResponse(c *models.NewContact, loc *time.Location) NewContactResponse {
	return NewContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Message: c.Message,
		Date:    formatTime(c.ReceivedAt, loc),
	}
}

func toSavedContactResponse(c *models.SavedContact, loc *time.Location) SavedContactResponse {
	return SavedContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Message: c.Message,
		Notes:   c.Notes,
		Date:    formatTime(c.OriginalReceivedAt, loc),
	}
}
