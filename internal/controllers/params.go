package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"users-api/internal/models"
)

// pageRequest reads page, size, sortBy and sortDir with per-endpoint sort defaults.
// On failure it writes a 400 response and returns false.
func pageRequest(c *gin.Context, defaultSortBy, defaultSortDir string) (models.PageRequest, bool) {
	page, err := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "0")))
	if err != nil {
		badParam(c, "page", c.Query("page"))
		return models.PageRequest{}, false
	}

	size, err := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("size", "10")))
	if err != nil {
		badParam(c, "size", c.Query("size"))
		return models.PageRequest{}, false
	}

	req, err := models.NewPageRequest(page, size, c.DefaultQuery("sortBy", defaultSortBy), c.DefaultQuery("sortDir", defaultSortDir))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return models.PageRequest{}, false
	}

	return req, true
}

// pathInt64 parses a numeric path parameter, writing a 400 response on failure
func pathInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badParam(c, name, raw)
		return 0, false
	}
	return value, true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		badParam(c, name, raw)
		return 0, false
	}
	return value, true
}

// requiredQueryInt parses a mandatory integer query parameter
func requiredQueryInt(c *gin.Context, name string) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		missingParam(c, name)
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		badParam(c, name, raw)
		return 0, false
	}
	return value, true
}

func requiredQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok {
		missingParam(c, name)
		return "", false
	}
	return value, true
}

func badParam(c *gin.Context, name, value string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Invalid value %q for parameter %s", value, name),
	})
}

func missingParam(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Required parameter %s is missing", name),
	})
}
