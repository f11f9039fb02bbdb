package handler

import (
	"net/http"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/usecase"
	"clinic-queue/pkg/response"
	"clinic-queue/pkg/validator"
)

type PatientHandler struct {
	addOrUpdate usecase.Command[dto.AddOrUpdatePatientRequest, dto.BaseResponse]
	remove      usecase.Command[dto.ByIDRequest, dto.BaseResponse]
	getAll      usecase.Command[dto.EmptyRequest, dto.PatientsArrayResponse]
	validator   *validator.CustomValidator
}

func NewPatientHandler(
	addOrUpdate usecase.Command[dto.AddOrUpdatePatientRequest, dto.BaseResponse],
	remove usecase.Command[dto.ByIDRequest, dto.BaseResponse],
	getAll usecase.Command[dto.EmptyRequest, dto.PatientsArrayResponse],
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		addOrUpdate: addOrUpdate,
		remove:      remove,
		getAll:      getAll,
		validator:   validator,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	resp := h.getAll.Execute(r.Context(), &dto.EmptyRequest{})
	response.JSON(w, resp.Code, resp)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOrUpdatePatientRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = nil

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patient")
	if !ok {
		return
	}

	var req dto.AddOrUpdatePatientRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = &patientID

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patient")
	if !ok {
		return
	}

	resp := h.remove.Execute(r.Context(), &dto.ByIDRequest{ID: patientID})
	response.JSON(w, resp.Code, resp)
}
