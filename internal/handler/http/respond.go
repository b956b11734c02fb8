package http

import (
	"net/http"

	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/utils"
	"github.com/MKhiriev/ccm-project/models"
)

func writeOK(w http.ResponseWriter, r *http.Request, payload any, status int) {
	if _, err := utils.WriteJSON(w, payload, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeOK").Msg("error writing response")
	}
}

// writeError writes the error envelope for err. reason overrides the mapped
// reason when it is not empty.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error, reason string) {
	status, mapped := mapError(err)
	if reason == "" {
		reason = mapped
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{State: models.StateError, Reason: reason}, status); writeErr != nil {
		log.Err(writeErr).Str("func", funcName).Msg("error writing error response")
	}
}
