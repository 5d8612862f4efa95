package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

// multipartOverhead is the allowance for form fields and boundaries on top of the file.
const multipartOverhead = 1 << 20

type BriefcaseHandler struct {
	briefcaseService service.BriefcaseService
}

func NewBriefcaseHandler(briefcaseService service.BriefcaseService) *BriefcaseHandler {
	return &BriefcaseHandler{briefcaseService: briefcaseService}
}

func (h *BriefcaseHandler) List(c *gin.Context) {
	briefcases, err := h.briefcaseService.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "list briefcases")
		return
	}
	c.JSON(http.StatusOK, briefcases)
}

func (h *BriefcaseHandler) Create(c *gin.Context) {
	var req dto.CreateBriefcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	briefcase, err := h.briefcaseService.Create(c.Request.Context(), userID(c), req.Name, req.Description)
	if err != nil {
		respondError(c, err, "create briefcase")
		return
	}
	c.JSON(http.StatusCreated, briefcase)
}

func (h *BriefcaseHandler) Delete(c *gin.Context) {
	briefcaseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.briefcaseService.Delete(c.Request.Context(), userID(c), briefcaseID); err != nil {
		respondError(c, err, "delete briefcase")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BriefcaseHandler) ListDocuments(c *gin.Context) {
	briefcaseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	docs, err := h.briefcaseService.ListDocuments(c.Request.Context(), userID(c), briefcaseID)
	if err != nil {
		respondError(c, err, "list documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Upload accepts a multipart form with a "file" part, optional comma separated
// "tags" and an optional JSON "metadata" field.
func (h *BriefcaseHandler) Upload(c *gin.Context) {
	briefcaseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, model.MaxDocumentSize+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the 25 MiB limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": gin.H{"file": err.Error()}})
		return
	}

	file, err := fh.Open()
	if err != nil {
		respondError(c, err, "read upload")
		return
	}
	defer file.Close()

	params := service.UploadParams{
		BriefcaseID: briefcaseID,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
		Tags:        splitTags(c.PostForm("tags")),
	}
	if raw := c.PostForm("metadata"); raw != "" {
		params.Metadata = json.RawMessage(raw)
	}

	doc, err := h.briefcaseService.Upload(c.Request.Context(), userID(c), params)
	if err != nil {
		respondError(c, err, "upload document")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *BriefcaseHandler) GetDocument(c *gin.Context) {
	documentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	doc, err := h.briefcaseService.GetDocument(c.Request.Context(), userID(c), documentID)
	if err != nil {
		respondError(c, err, "get document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *BriefcaseHandler) DeleteDocument(c *gin.Context) {
	documentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.briefcaseService.DeleteDocument(c.Request.Context(), userID(c), documentID); err != nil {
		respondError(c, err, "delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BriefcaseHandler) Search(c *gin.Context) {
	docs, err := h.briefcaseService.Search(c.Request.Context(), userID(c), c.Query("q"))
	if err != nil {
		respondError(c, err, "search documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
