package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoiceqc/internal/config"
	"invoiceqc/internal/domain"
	"invoiceqc/internal/export"
	"invoiceqc/internal/loader"
	"invoiceqc/internal/service"
)

// QCHandler handles the validation and extraction endpoints.
type QCHandler struct {
	svc    *service.QCService
	upload config.UploadConfig
}

// NewQCHandler creates a new QCHandler.
func NewQCHandler(svc *service.QCService, upload config.UploadConfig) *QCHandler {
	return &QCHandler{svc: svc, upload: upload}
}

// Validate handles POST /api/v1/validate. The body is a JSON array of
// invoice objects; the response is the full report. Invalid invoices are
// not an HTTP error — only a body that is not a batch at all is.
func (h *QCHandler) Validate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "could not read request body")
		return
	}

	report, err := h.svc.ValidateJSON(body)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExtractValidate handles POST /api/v1/extract-validate. Uploaded documents
// are extracted in upload order and the combined batch is validated.
func (h *QCHandler) ExtractValidate(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "expected multipart form with a files field")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		HandleError(c, domain.ErrNoDocuments)
		return
	}
	if h.upload.MaxFiles > 0 && len(files) > h.upload.MaxFiles {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_FILES",
			fmt.Sprintf("at most %d files per request", h.upload.MaxFiles))
		return
	}

	maxSize := h.upload.MaxFileSizeMB * 1024 * 1024
	docs := make([]loader.Document, 0, len(files))
	for _, fh := range files {
		if maxSize > 0 && fh.Size > maxSize {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		f, err := fh.Open()
		if err != nil {
			docs = append(docs, loader.Document{ID: fh.Filename, Err: fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)})
			continue
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			docs = append(docs, loader.Document{ID: fh.Filename, Err: fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)})
			continue
		}
		docs = append(docs, loader.Document{ID: fh.Filename, Text: string(data)})
	}

	invoices := h.svc.ExtractDocuments(docs)
	report := h.svc.ValidateBatch(invoices)
	c.JSON(http.StatusOK, domain.ExtractionReport{
		ExtractedInvoices: invoices,
		Summary:           report.Summary,
		Results:           report.Results,
	})
}

// Export handles POST /api/v1/validate/export?format=csv|xlsx. The body is
// the same JSON batch as Validate; the response is a file attachment.
func (h *QCHandler) Export(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "could not read request body")
		return
	}

	batch, err := h.svc.DecodeBatch(body)
	if err != nil {
		HandleError(c, err)
		return
	}
	report := h.svc.ValidateBatch(batch)

	// Render into a buffer before touching the response so a failed render
	// still produces a clean error status instead of a truncated 200.
	var buf bytes.Buffer
	var contentType, filename string
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		filename = "validation_report.csv"
		err = export.WriteReportCSV(&buf, batch, &report)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "validation_report.xlsx"
		err = export.WriteReportXLSX(&buf, batch, &report)
	default:
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
