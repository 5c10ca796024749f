package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/photo"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// maxUploadBytes caps a single photo upload at 10 MiB.
const maxUploadBytes = 10 << 20

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	p, err := h.service.Upload(c.Request.Context(), auth.GetUserID(c), facilityID, c.PostForm("caption"), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	photos, err := h.service.ListByFacility(c.Request.Context(), facilityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"photos": items})
}

func (h *Handler) File(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rc, err := h.service.Open(c.Request.Context(), id, c.Query("thumb") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
