package handler

import (
	"net/http"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/usecase"
	"clinic-queue/pkg/response"
	"clinic-queue/pkg/validator"
)

type SpecializationHandler struct {
	addOrUpdate usecase.Command[dto.AddOrUpdateSpecializationRequest, dto.BaseResponse]
	remove      usecase.Command[dto.ByIDRequest, dto.BaseResponse]
	getAll      usecase.Command[dto.EmptyRequest, dto.SpecializationsArrayResponse]
	validator   *validator.CustomValidator
}

func NewSpecializationHandler(
	addOrUpdate usecase.Command[dto.AddOrUpdateSpecializationRequest, dto.BaseResponse],
	remove usecase.Command[dto.ByIDRequest, dto.BaseResponse],
	getAll usecase.Command[dto.EmptyRequest, dto.SpecializationsArrayResponse],
	validator *validator.CustomValidator,
) *SpecializationHandler {
	return &SpecializationHandler{
		addOrUpdate: addOrUpdate,
		remove:      remove,
		getAll:      getAll,
		validator:   validator,
	}
}

func (h *SpecializationHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	resp := h.getAll.Execute(r.Context(), &dto.EmptyRequest{})
	response.JSON(w, resp.Code, resp)
}

func (h *SpecializationHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOrUpdateSpecializationRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = nil

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *SpecializationHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(w, r, "specialization")
	if !ok {
		return
	}

	var req dto.AddOrUpdateSpecializationRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}
	req.ID = &specializationID

	resp := h.addOrUpdate.Execute(r.Context(), &req)
	response.JSON(w, resp.Code, resp)
}

func (h *SpecializationHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(w, r, "specialization")
	if !ok {
		return
	}

	resp := h.remove.Execute(r.Context(), &dto.ByIDRequest{ID: specializationID})
	response.JSON(w, resp.Code, resp)
}
