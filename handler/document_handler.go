package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
	"github.com/Prakash1256/PDF-AI-CHAT/utils"
)

// DocumentHandler serves the most recently uploaded PDF back to the viewer.
type DocumentHandler struct {
	uploadDir string
}

func NewDocumentHandler(uploadDir string) *DocumentHandler {
	return &DocumentHandler{
		uploadDir: uploadDir,
	}
}

func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	path, err := utils.NewestFile(h.uploadDir, ".pdf")
	if err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: "No document uploaded",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
