package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/li-cell/election-backend-go/internal/domain/role"
	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/handler/http/response"
	"github.com/li-cell/election-backend-go/internal/service/admin"
)

type AdminHandler interface {
	CreateRole(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)

	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandlerImpl{
		adminService: adminService,
	}
}

func (h *adminHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.adminService.CreateRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Role created", created)
}

func (h *adminHandlerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	found, err := h.adminService.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

func (h *adminHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.adminService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, roles)
}

func (h *adminHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.adminService.UpdateRole(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role updated", nil)
}

func (h *adminHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role deleted", nil)
}

func (h *adminHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.adminService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "User created", created)
}

func (h *adminHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	found, err := h.adminService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

func (h *adminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

func (h *adminHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.adminService.UpdateUser(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User updated", nil)
}

func (h *adminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User deleted", nil)
}
