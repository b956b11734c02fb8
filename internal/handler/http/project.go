package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ccm-project/internal/service"
	"github.com/MKhiriev/ccm-project/models"
)

const projectIDKey = "p_id"

// projectID parses the {p_id} URL parameter. The route regexp admits digits
// only, so a failure here means the value overflows int64.
func projectID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, projectIDKey), 10, 64)
	if err != nil {
		return 0, service.ErrProjectNotFound
	}
	return id, nil
}

// decodeBody decodes the JSON body into dst. An empty body leaves dst at its
// zero value.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.createProject", err, "")
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.createProject", err, "")
		return
	}

	name, _ := req.Name.(string)
	project, err := h.services.ProjectService.CreateProject(r.Context(), models.NewProject{
		Name:     name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, "*Handler.createProject", err, "")
		return
	}

	writeOK(w, r, models.ProjectIDResponse{State: models.StateOK, ID: project.ID}, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listProjects", err, "")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	writeOK(w, r, models.ProjectListResponse{State: models.StateOK, Data: projects}, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, r, "*Handler.getProject", err, "")
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getProject", err, "")
		return
	}

	writeOK(w, r, models.ProjectResponse{State: models.StateOK, Data: project}, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateProject", err, "")
		return
	}

	var req models.UpdateProjectRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.updateProject", err, "")
		return
	}

	project, err := h.services.ProjectService.UpdateProjectStatus(r.Context(), models.StatusUpdate{
		ProjectID: id,
		Status:    req.RequestedStatus(),
	})
	if err != nil {
		writeError(w, r, "*Handler.updateProject", err, "")
		return
	}

	writeOK(w, r, models.ProjectStatusResponse{
		State:  models.StateOK,
		ID:     project.ID,
		Status: project.Status,
	}, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteProject", err, "")
		return
	}

	if _, err = h.services.ProjectService.DeleteProject(r.Context(), id); err != nil {
		var reason string
		if errors.Is(err, service.ErrProjectNotFound) {
			reason = fmt.Sprintf("project %d not found", id)
		}
		writeError(w, r, "*Handler.deleteProject", err, reason)
		return
	}

	writeOK(w, r, models.ProjectIDResponse{State: models.StateOK, ID: id}, http.StatusOK)
}

func (h *Handler) reopenProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, r, "*Handler.reopenProject", err, "")
		return
	}

	if err = h.services.ProjectService.ReopenProject(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.reopenProject", err, "")
		return
	}

	restart := true
	writeOK(w, r, models.ProjectIDResponse{State: models.StateOK, ID: id, Restart: &restart}, http.StatusOK)
}
