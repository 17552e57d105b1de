package handler

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prakash1256/PDF-AI-CHAT/service"
	"github.com/Prakash1256/PDF-AI-CHAT/types"
	"github.com/Prakash1256/PDF-AI-CHAT/utils"
)

const maxUploadSize = 10 << 20 // 10MB

// TextExtractor is the extraction capability the upload handler depends on.
type TextExtractor interface {
	ExtractData(r io.Reader) (*types.PDFData, error)
}

type UploadHandler struct {
	extractor TextExtractor
	store     *service.ContextStore
	uploadDir string
}

func NewUploadHandler(extractor TextExtractor, store *service.ContextStore, uploadDir string) *UploadHandler {
	return &UploadHandler{
		extractor: extractor,
		store:     store,
		uploadDir: uploadDir,
	}
}

// HandleUpload extracts text from the uploaded PDF and replaces the active
// document context. A failed extraction leaves the previous context in place
// so a broken re-upload does not erase a working session.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "Error processing PDF",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "File too large",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "Error processing PDF",
			Details: err.Error(),
		})
		return
	}

	pdfData, err := h.extractor.ExtractData(bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "Error processing PDF",
			Details: err.Error(),
		})
		return
	}

	h.store.Store(types.DocumentContext{
		Text:      pdfData.Text,
		PageCount: pdfData.NumPages,
	})

	// Keep a copy on disk for the document viewer. Not fatal if it fails.
	if _, err := utils.SaveWithTimestamp(h.uploadDir, header.Filename, data); err != nil {
		log.Printf("Warning: failed to save uploaded file: %v", err)
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		NumPages: pdfData.NumPages,
		Text:     pdfData.Text,
		Message:  "PDF uploaded successfully and ready for questions!",
	})
}
