package dto

type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type ThemeEnvelope struct {
	Theme string `json:"theme"`
}
