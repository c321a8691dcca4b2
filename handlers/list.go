package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"lsaudio/services"
	"lsaudio/types"
)

// ListHandler handles listing endpoints over the configured library root.
type ListHandler struct {
	lister  services.Lister
	library string
}

// NewListHandler creates a new list handler.
func NewListHandler(lister services.Lister, library string) *ListHandler {
	return &ListHandler{
		lister:  lister,
		library: library,
	}
}

// List runs the listing engine over a library-relative path and returns the
// resulting Info sequence. Query parameters: path (relative, empty for the
// library root), sort (repeatable), reverse, recursive.
func (h *ListHandler) List(c *gin.Context) {
	relPath := strings.TrimPrefix(c.Query("path"), "/")
	if relPath != "" {
		if err := services.ValidateRelPath(relPath); err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "path security violation",
				"details": err.Error(),
			})
			return
		}
	}

	keys, err := types.ParseSortKeys(c.QueryArray("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid sort key",
			"details": err.Error(),
		})
		return
	}

	target := h.library
	if relPath != "" {
		target = filepath.Join(h.library, relPath)
	}

	results, err := h.lister.List([]string{target}, types.ListOptions{
		SortBy:    keys,
		Reverse:   c.Query("reverse") == "true",
		Recursive: c.Query("recursive") == "true",
	})
	if err != nil {
		var invalidPath *services.InvalidPathError
		if errors.As(err, &invalidPath) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "path not found",
				"path":  relPath,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list files",
			"details": err.Error(),
		})
		return
	}

	count := 0
	for _, info := range results {
		count += len(info.Entries)
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   count,
	})
}
