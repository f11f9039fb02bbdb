package handler

import (
	"encoding/json"
	"net/http"

	"clinic-queue/pkg/response"
	"clinic-queue/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeRequest reads a JSON body into req and checks its validate tags.
// It writes the 400 response itself and reports false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request, kind string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+kind+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
