package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/talentoapp/talento-backend/internal/domain"
	"github.com/talentoapp/talento-backend/internal/service/importer"
)

// importKinds maps the public "type" form parameter to an import kind.
var importKinds = map[string]domain.ImportKind{
	"jugadores":    domain.ImportKindPlayer,
	"entrenadores": domain.ImportKindCoach,
	"clubes":       domain.ImportKindOrganization,
	"ofertas":      domain.ImportKindOpportunity,
}

// importService defines the minimal interface needed by ImportHandler.
type importService interface {
	Run(ctx context.Context, kind domain.ImportKind, fileText string) (*importer.Report, error)
}

// ImportHandler serves the bulk CSV import endpoint.
type ImportHandler struct {
	svc            importService
	log            *slog.Logger
	maxUploadBytes int64
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, logger *slog.Logger, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		svc:            svc,
		log:            logger.With("handler", "import"),
		maxUploadBytes: maxUploadBytes,
	}
}

type importResponse struct {
	Success int      `json:"success"`
	Errors  int      `json:"errors"`
	Details []string `json:"details"`
}

// Import handles POST /import. It expects a multipart form with a "type"
// value and a "file" part containing the CSV, and always answers the whole
// job: either a 4xx that rejects it or a 200 with per-row results.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "formulario multipart inválido o archivo demasiado grande")
		return
	}

	kind, ok := importKinds[r.FormValue("type")]
	if !ok {
		writeError(w, http.StatusBadRequest, "tipo de importación desconocido")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "falta el archivo CSV")
		return
	}
	defer file.Close() //nolint:errcheck

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "no se pudo leer el archivo CSV")
		return
	}

	report, err := h.svc.Run(r.Context(), kind, string(raw))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	details := report.Details
	if details == nil {
		details = []string{}
	}
	writeJSON(w, http.StatusOK, importResponse{
		Success: report.Success,
		Errors:  report.Errors,
		Details: details,
	})
}

func (h *ImportHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		h.log.ErrorContext(r.Context(), "import failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "internal server error",
			"details": []string{},
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
