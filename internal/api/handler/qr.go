package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ostapdev/teamwheel/internal/api/response"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/qr"
)

// QRHandler serves per-team QR code images
type QRHandler struct {
	baseURL string
}

// NewQRHandler creates a new QR handler. An empty baseURL derives the
// scan URL from the incoming request's host.
func NewQRHandler(baseURL string) *QRHandler {
	return &QRHandler{
		baseURL: baseURL,
	}
}

// Get handles GET /qr/{team_id}
func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID := model.TeamID(mux.Vars(r)["team_id"])
	if teamID == "" {
		WriteError(w, NewInvalidRequestError("team_id is required"))
		return
	}

	png, err := qr.ImagePNG(h.resolveBase(r), teamID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.PNG(w, png)
}

func (h *QRHandler) resolveBase(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
