package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	"github.com/sunfocus/erp-backend-go/internal/handler/http/response"
	"github.com/sunfocus/erp-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	// Self service
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)

	// Manager
	ListTeamRequests(w http.ResponseWriter, r *http.Request)
	DecideRequest(w http.ResponseWriter, r *http.Request)

	// HR
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.Submit(r.Context(), caller, req.ToSubmitRequest())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.ListMyLeaveRequests(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	list := leave.NewListLeaveRequestResponse(requests)
	response.SuccessWithMeta(w, list.Requests, &response.Meta{TotalItems: list.TotalCount})
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.GetMyBalance(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// CancelRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	deleted, err := l.leaveService.Cancel(r.Context(), caller, leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, "No pending leave request found to cancel")
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled successfully", nil)
}

// ListTeamRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTeamRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status := statusFilter(r)
	requests, err := l.leaveService.ListTeamLeaveRequests(r.Context(), caller, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeList(w, requests, status)
}

// DecideRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DecideRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := l.leaveService.Decide(r.Context(), caller, leaveID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+strings.ToLower(string(decided.Status))+" successfully", leave.NewLeaveRequestResponse(decided))
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := statusFilter(r)
	requests, err := l.leaveService.ListLeaveRequests(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeList(w, requests, status)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	request, err := l.leaveService.GetLeaveRequest(r.Context(), leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponse(request))
}

// GetEmployeeBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEmployeeBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	balance, err := l.leaveService.GetEmployeeBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func statusFilter(r *http.Request) *leave.LeaveRequestStatus {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil
	}
	status := leave.LeaveRequestStatus(raw)
	return &status
}

func writeList(w http.ResponseWriter, requests []leave.LeaveRequest, status *leave.LeaveRequestStatus) {
	list := leave.NewListLeaveRequestResponse(requests)
	meta := &response.Meta{TotalItems: list.TotalCount}
	if status != nil {
		meta.Status = string(*status)
	}
	response.SuccessWithMeta(w, list.Requests, meta)
}
