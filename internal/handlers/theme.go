package handlers

import (
	"net/http"

	"github.com/RaulLuz/kanban-spec/internal/dto"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themes *service.ThemeService
}

func NewThemeHandler(themes *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Get godoc
// @Summary      Get the theme preference
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /theme [get]
func (h *ThemeHandler) Get(c *gin.Context) {
	p, err := h.themes.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeEnvelope{Theme: p.Theme})
}

// Set godoc
// @Summary      Set the theme preference
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateThemeRequest  true  "Theme body"
// @Success      200   {object}  dto.ThemeEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /theme [put]
func (h *ThemeHandler) Set(c *gin.Context) {
	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.themes.Set(c.Request.Context(), req.Theme)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeEnvelope{Theme: p.Theme})
}

// Toggle godoc
// @Summary      Toggle between light and dark
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /theme/toggle [post]
func (h *ThemeHandler) Toggle(c *gin.Context) {
	p, err := h.themes.Toggle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeEnvelope{Theme: p.Theme})
}
