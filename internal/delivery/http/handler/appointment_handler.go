package handler

import (
	"net/http"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/usecase"
	"clinic-queue/pkg/response"
	"clinic-queue/pkg/validator"
)

type AppointmentHandler struct {
	addOrUpdate usecase.Command[dto.AddOrUpdateAppointmentRequest, dto.BaseResponse]
	remove      usecase.Command[dto.ByIDRequest, dto.BaseResponse]
	getAll      usecase.Command[dto.EmptyRequest, dto.AppointmentsArrayResponse]
	validator   *validator.CustomValidator
}

func NewAppointmentHandler(
	addOrUpdate usecase.Command[dto.AddOrUpdateAppointmentRequest, dto.BaseResponse],
	remove usecase.Command[dto.ByIDRequest, dto.BaseResponse],
	getAll usecase.Command[dto.EmptyRequest, dto.AppointmentsArrayResponse],
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		addOrUpdate: addOrUpdate,
		remove:      remove,
		getAll:      getAll,
		validator:   validator,
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	resp := h.getAll.Execute(r.Context(), &dto.EmptyRequest{})
	response.JSON(w, resp.Code, resp)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOrUpdateAppointmentRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = nil

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "appointment")
	if !ok {
		return
	}

	var req dto.AddOrUpdateAppointmentRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = &appointmentID

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "appointment")
	if !ok {
		return
	}

	resp := h.remove.Execute(r.Context(), &dto.ByIDRequest{ID: appointmentID})
	response.JSON(w, resp.Code, resp)
}
