package http

import (
	"net/http"

	"github.com/MKhiriev/ccm-project/models"
)

// getServerVersion answers with the bare app version as text/plain.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	resp := models.BuildInfoResponse{
		State:   models.StateOK,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}
	resp.Build.Version = info.BuildVersion()
	resp.Build.Date = info.BuildDate()
	resp.Build.Commit = info.BuildCommit()

	writeOK(w, r, resp, http.StatusOK)
}
