package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	notesdk.Envelope[notesdk.HealthResponse]
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteSuccess(w, http.StatusOK, notesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe including the database check.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	notesdk.Envelope[notesdk.HealthResponse]
//	@Failure		503	{object}	notesdk.Envelope[notesdk.HealthResponse]	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &notesdk.HealthChecks{Database: "ok"}
		env := httpx.Envelope{Success: true}
		statusCode := http.StatusOK
		status := "ok"

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			env.Success = false
			env.Error = "Service not ready"
		}

		env.Data = notesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, env)
	}
}
