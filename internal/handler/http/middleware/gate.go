package middleware

import (
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/domain/gate"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
)

const gateCookieName = "employee_access_token"

// EmployeeAccessRequired admits requests carrying a valid gate token cookie.
// The gate is a deterrent for the shared employee views, not an identity
// check, so there is no claims inspection beyond token validity.
func EmployeeAccessRequired(gateService gate.GateService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(gateCookieName)
			if err != nil || !gateService.IsUnlocked(cookie.Value) {
				response.HandleError(w, gate.ErrLocked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
