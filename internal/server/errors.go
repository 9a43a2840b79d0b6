package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/ai-recruiter/internal/pipeline"
)

// HTTPStatus maps workflow errors to response codes. Validation failures are
// the caller's fault; stage failures mean a collaborator broke mid-run.
func HTTPStatus(err error) int {
	var verr *pipeline.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	var serr *pipeline.StageError
	if errors.As(err, &serr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
