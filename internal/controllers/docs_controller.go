package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/models"
)

type DocsController struct {
	info models.APIInfo
}

const defaultProductionURL = "https://api.example.com"

// NewDocsController advertises the development server and productionURL
// (defaultProductionURL when empty).
func NewDocsController(productionURL string) *DocsController {
	if productionURL == "" {
		productionURL = defaultProductionURL
	}
	servers := []models.Server{
		{URL: "http://localhost:8080", Description: "Development Server"},
		{URL: productionURL, Description: "Production Server"},
	}

	return &DocsController{
		info: models.APIInfo{
			OpenAPI: "3.0.1",
			Info: models.APIDetails{
				Title:       "Users API",
				Description: "REST API for user records with paginated search by city, age, name and email domain",
				Version:     "1.0.0",
				Contact: models.Contact{
					Name:  "Users API maintainers",
					Email: "users-api@example.com",
					URL:   "https://github.com/example/users-api",
				},
				License: models.License{
					Name: "MIT License",
					URL:  "https://opensource.org/licenses/MIT",
				},
			},
			Servers: servers,
		},
	}
}

// GetAPIDocs handles GET /v3/api-docs
func (dc *DocsController) GetAPIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, dc.info)
}
