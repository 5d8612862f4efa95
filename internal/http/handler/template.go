package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context(), userID(c), c.Query("category"))
	if err != nil {
		respondError(c, err, "list templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tmpl, err := h.templateService.Create(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "create template")
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tmpl, err := h.templateService.Get(c.Request.Context(), userID(c), templateID)
	if err != nil {
		respondError(c, err, "get template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tmpl, err := h.templateService.Update(c.Request.Context(), userID(c), templateID, req.Params())
	if err != nil {
		respondError(c, err, "update template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), userID(c), templateID); err != nil {
		respondError(c, err, "delete template")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) Export(c *gin.Context) {
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.templateService.Export(c.Request.Context(), userID(c), templateID, c.Query("format"))
	if err != nil {
		respondError(c, err, "export template")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(http.StatusOK, out.ContentType, out.Body)
}
