package http

import (
	"encoding/json"
	"net/http"

	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/handler/http/response"
	"github.com/li-cell/election-backend-go/internal/service/admin"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	adminService admin.AdminService
}

func NewAuthHandler(adminService admin.AdminService) AuthHandler {
	return &authHandlerImpl{
		adminService: adminService,
	}
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
