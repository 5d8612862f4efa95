package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type BrandHandler struct {
	brandService service.BrandService
}

func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

func (h *BrandHandler) Generate(c *gin.Context) {
	var req dto.GenerateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.brandService.Generate(c.Request.Context(), userID(c), req.Input())
	if err != nil {
		respondError(c, err, "generate brand")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *BrandHandler) List(c *gin.Context) {
	profiles, err := h.brandService.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "list brand profiles")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *BrandHandler) Get(c *gin.Context) {
	profileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.brandService.Get(c.Request.Context(), userID(c), profileID)
	if err != nil {
		respondError(c, err, "get brand profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	profileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), userID(c), profileID); err != nil {
		respondError(c, err, "delete brand profile")
		return
	}
	c.Status(http.StatusNoContent)
}
