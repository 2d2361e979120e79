package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"users-api/internal/entities"
	"users-api/internal/middleware"
	"users-api/internal/repository"
	"users-api/internal/service"
)

const (
	defaultCardSize = 256
	minCardSize     = 64
	maxCardSize     = 1024
)

// CardController renders a user's contact details as a QR code
type CardController struct {
	userService service.UserService
}

func NewCardController(userService service.UserService) *CardController {
	return &CardController{
		userService: userService,
	}
}

// GenerateCard handles GET /api/users/:id/card - PNG QR code holding a MECARD contact
func (cc *CardController) GenerateCard(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	size := defaultCardSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed < minCardSize || parsed > maxCardSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "size must be between 64 and 1024 pixels",
			})
			return
		}
		size = parsed
	}

	user, err := cc.userService.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		middleware.LogError(c, "card for user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get user",
		})
		return
	}

	// Medium error recovery
	qrCode, err := qrcode.New(MeCard(user), qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=user-"+strconv.FormatInt(user.ID, 10)+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}

var meCardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// MeCard encodes the user in the MECARD contact format read by phone cameras
func MeCard(user *entities.User) string {
	var b strings.Builder
	b.WriteString("MECARD:")
	b.WriteString("N:" + meCardEscaper.Replace(user.Name) + ";")
	if user.Email != "" {
		b.WriteString("EMAIL:" + meCardEscaper.Replace(user.Email) + ";")
	}
	if user.City != "" {
		b.WriteString("ADR:" + meCardEscaper.Replace(user.City) + ";")
	}
	b.WriteString(";")
	return b.String()
}
