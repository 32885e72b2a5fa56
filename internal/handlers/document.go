package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=document.go -destination=document_mock_test.go -package=handlers

// DocumentGenerator defines the interface for document generation
type DocumentGenerator interface {
	GenerateDocument(ctx context.Context, user *models.AuthUser, req models.DocumentRequest) (*models.DocumentResponse, error)
}

// NewGenerateDocumentHandler generates a document schema
// @Summary Generate a document
// @Description Generates the JSON schema of a document, presentation, spreadsheet or PDF. Consumes one documents_generated credit.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.DocumentRequest true "Document Request"
// @Success 200 {object} models.DocumentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate-document-json [post]
// @Security FirebaseToken
func NewGenerateDocumentHandler(svc DocumentGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.DocumentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		resp, err := svc.GenerateDocument(r.Context(), user, req)
		if err != nil {
			writeGenerationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGenerateDocumentHandler registers the document generation route
func RegisterGenerateDocumentHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/generate-document-json", h)
}
