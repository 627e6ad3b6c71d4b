package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/domain/gate"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
)

type GateHandler interface {
	Unlock(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type GateHandlerImpl struct {
	gateService gate.GateService
	jwtService  jwt.Service
}

func NewGateHandler(gateService gate.GateService, jwtService jwt.Service) GateHandler {
	return &GateHandlerImpl{
		gateService: gateService,
		jwtService:  jwtService,
	}
}

// Unlock implements GateHandler.
func (g *GateHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	var unlockReq gate.UnlockRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&unlockReq); err != nil {
		slog.Error("Unlock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	token, err := g.gateService.Unlock(unlockReq.Passphrase)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, g.jwtService.GateTokenCookie(token))
	response.SuccessWithMessage(w, "Employee access unlocked", gate.GateStatusResponse{Unlocked: true})
}

// Lock implements GateHandler.
func (g *GateHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, g.jwtService.ClearGateTokenCookie())
	response.SuccessWithMessage(w, "Employee access locked", gate.GateStatusResponse{Unlocked: false})
}

// Status implements GateHandler.
func (g *GateHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	unlocked := false
	if cookie, err := r.Cookie("employee_access_token"); err == nil {
		unlocked = g.gateService.IsUnlocked(cookie.Value)
	}

	response.Success(w, gate.GateStatusResponse{Unlocked: unlocked})
}
