package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"lsaudio/config"
)

// SettingsHandler handles user settings endpoints.
type SettingsHandler struct{}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// GetSettings returns the current settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"libraryLocation": config.GetLibraryLocation(),
	})
}

// UpdateSettings updates the library location. The new location must be an
// existing directory; the server keeps serving its current root until
// restart.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings config.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid settings payload",
			"details": err.Error(),
		})
		return
	}

	if fi, err := os.Stat(settings.LibraryLocation); err != nil || !fi.IsDir() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "library location is not an existing directory",
		})
		return
	}

	if err := config.SaveUserSettings(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save settings",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "settings saved; restart to apply",
		"settings": settings,
	})
}
