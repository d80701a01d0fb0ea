package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
)

// ScanHandler handles QR code redemption
type ScanHandler struct {
	scoreService *score.Service
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(scoreService *score.Service) *ScanHandler {
	return &ScanHandler{
		scoreService: scoreService,
	}
}

// Scan handles GET /scan/{qr_id}: credits a point and redirects home
// with a flash describing the outcome
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	qrID := mux.Vars(r)["qr_id"]

	result, err := h.scoreService.Redeem(r.Context(), account.Username, qrID)
	switch {
	case err == nil:
		middleware.SetFlash(w, "success", fmt.Sprintf("✅ +1 балл команде %s", result.Name))
	case errors.Is(err, model.ErrAlreadyRedeemed):
		middleware.SetFlash(w, "warning", "⚠️ Вы уже использовали этот QR-код!")
	case errors.Is(err, model.ErrAccountNotFound):
		middleware.SetFlash(w, "danger", "❌ Пользователь не найден")
	case errors.Is(err, model.ErrValidation):
		middleware.SetFlash(w, "danger", "❌ У пользователя не указана команда")
	default:
		middleware.SetFlash(w, "danger", "❌ Не удалось засчитать QR-код")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
