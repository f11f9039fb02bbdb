package handler

import (
	"net/http"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/usecase"
	"clinic-queue/pkg/response"
	"clinic-queue/pkg/validator"
)

type DoctorHandler struct {
	addOrUpdate    usecase.Command[dto.AddOrUpdateDoctorRequest, dto.BaseResponse]
	remove         usecase.Command[dto.ByIDRequest, dto.BaseResponse]
	getAll         usecase.Command[dto.EmptyRequest, dto.DoctorsArrayResponse]
	appointmentsOf usecase.Command[dto.ByIDRequest, dto.AppointmentsArrayResponse]
	validator      *validator.CustomValidator
}

func NewDoctorHandler(
	addOrUpdate usecase.Command[dto.AddOrUpdateDoctorRequest, dto.BaseResponse],
	remove usecase.Command[dto.ByIDRequest, dto.BaseResponse],
	getAll usecase.Command[dto.EmptyRequest, dto.DoctorsArrayResponse],
	appointmentsOf usecase.Command[dto.ByIDRequest, dto.AppointmentsArrayResponse],
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		addOrUpdate:    addOrUpdate,
		remove:         remove,
		getAll:         getAll,
		appointmentsOf: appointmentsOf,
		validator:      validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	resp := h.getAll.Execute(r.Context(), &dto.EmptyRequest{})
	response.JSON(w, resp.Code, resp)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOrUpdateDoctorRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = nil

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	var req dto.AddOrUpdateDoctorRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = &doctorID

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	resp := h.remove.Execute(r.Context(), &dto.ByIDRequest{ID: doctorID})
	response.JSON(w, resp.Code, resp)
}

func (h *DoctorHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	resp := h.appointmentsOf.Execute(r.Context(), &dto.ByIDRequest{ID: doctorID})
	response.JSON(w, resp.Code, resp)
}
