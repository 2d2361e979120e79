package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/entities"
	"users-api/internal/middleware"
	"users-api/internal/models"
	"users-api/internal/repository"
	"users-api/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes mounts the user endpoints on rg (normally /api/users)
func (uc *UserController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", uc.GetAllUsers)
	rg.POST("", uc.CreateUser)
	rg.GET("/:id", uc.GetUserByID)
	rg.PUT("/:id", uc.UpdateUser)
	rg.DELETE("/:id", uc.DeleteUser)
	rg.GET("/email/:email", uc.GetUserByEmail)
	rg.GET("/exists/email/:email", uc.UserExistsByEmail)
	rg.GET("/count/city/:city", uc.CountUsersByCity)

	search := rg.Group("/search")
	{
		search.GET("/city/:city", uc.FindUsersByCity)
		search.GET("/age", uc.FindUsersByAgeRange)
		search.GET("/older-than/:age", uc.FindUsersOlderThan)
		search.GET("/name/:name", uc.FindUsersByName)
		search.GET("/email-domain/:domain", uc.FindUsersByEmailDomain)
		search.GET("/name-city", uc.FindUsersByNameAndCity)
		search.GET("/recent/older-than/:age", uc.FindRecentUsersOlderThan)
		search.GET("/created-within/:days", uc.FindUsersCreatedWithin)
	}
}

// GetAllUsers handles GET /api/users
func (uc *UserController) GetAllUsers(c *gin.Context) {
	pageReq, ok := pageRequest(c, "id", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.GetAllUsersPage(c.Request.Context(), pageReq)
	respondPage(c, users, err)
}

// GetUserByID handles GET /api/users/:id
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	user, err := uc.userService.GetUserByID(c.Request.Context(), id)
	respondUser(c, user, err)
}

// GetUserByEmail handles GET /api/users/email/:email
func (uc *UserController) GetUserByEmail(c *gin.Context) {
	user, err := uc.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	respondUser(c, user, err)
}

// FindUsersByCity handles GET /api/users/search/city/:city
func (uc *UserController) FindUsersByCity(c *gin.Context) {
	pageReq, ok := pageRequest(c, "name", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersByCityPage(c.Request.Context(), c.Param("city"), pageReq)
	respondPage(c, users, err)
}

// FindUsersByAgeRange handles GET /api/users/search/age?minAge=&maxAge=
func (uc *UserController) FindUsersByAgeRange(c *gin.Context) {
	minAge, ok := requiredQueryInt(c, "minAge")
	if !ok {
		return
	}
	maxAge, ok := requiredQueryInt(c, "maxAge")
	if !ok {
		return
	}
	pageReq, ok := pageRequest(c, "age", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersByAgeRangePage(c.Request.Context(), minAge, maxAge, pageReq)
	respondPage(c, users, err)
}

// FindUsersOlderThan handles GET /api/users/search/older-than/:age
func (uc *UserController) FindUsersOlderThan(c *gin.Context) {
	age, ok := pathInt(c, "age")
	if !ok {
		return
	}
	pageReq, ok := pageRequest(c, "age", "desc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersOlderThanPage(c.Request.Context(), age, pageReq)
	respondPage(c, users, err)
}

// FindUsersByName handles GET /api/users/search/name/:name (case-insensitive substring)
func (uc *UserController) FindUsersByName(c *gin.Context) {
	pageReq, ok := pageRequest(c, "name", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersByNamePage(c.Request.Context(), c.Param("name"), pageReq)
	respondPage(c, users, err)
}

// FindUsersByEmailDomain handles GET /api/users/search/email-domain/:domain
func (uc *UserController) FindUsersByEmailDomain(c *gin.Context) {
	pageReq, ok := pageRequest(c, "email", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersByEmailDomainPage(c.Request.Context(), c.Param("domain"), pageReq)
	respondPage(c, users, err)
}

// FindUsersByNameAndCity handles GET /api/users/search/name-city?name=&city=
func (uc *UserController) FindUsersByNameAndCity(c *gin.Context) {
	name, ok := requiredQuery(c, "name")
	if !ok {
		return
	}
	city, ok := requiredQuery(c, "city")
	if !ok {
		return
	}
	pageReq, ok := pageRequest(c, "name", "asc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersByNameAndCityPage(c.Request.Context(), name, city, pageReq)
	respondPage(c, users, err)
}

// FindRecentUsersOlderThan handles GET /api/users/search/recent/older-than/:age.
// Results are always newest first; sortBy and sortDir are ignored.
func (uc *UserController) FindRecentUsersOlderThan(c *gin.Context) {
	age, ok := pathInt(c, "age")
	if !ok {
		return
	}
	pageReq, ok := pageRequest(c, "createdAt", "desc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersOlderThanOrderByCreatedAtPage(c.Request.Context(), age, pageReq)
	respondPage(c, users, err)
}

// FindUsersCreatedWithin handles GET /api/users/search/created-within/:days
func (uc *UserController) FindUsersCreatedWithin(c *gin.Context) {
	days, ok := pathInt(c, "days")
	if !ok {
		return
	}
	pageReq, ok := pageRequest(c, "createdAt", "desc")
	if !ok {
		return
	}

	users, err := uc.userService.FindUsersCreatedInLastDaysPage(c.Request.Context(), days, pageReq)
	respondPage(c, users, err)
}

// CountUsersByCity handles GET /api/users/count/city/:city
func (uc *UserController) CountUsersByCity(c *gin.Context) {
	count, err := uc.userService.CountUsersByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		middleware.LogError(c, "count users by city: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count users",
		})
		return
	}

	c.JSON(http.StatusOK, count)
}

// UserExistsByEmail handles GET /api/users/exists/email/:email
func (uc *UserController) UserExistsByEmail(c *gin.Context) {
	exists, err := uc.userService.UserExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		middleware.LogError(c, "check user email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check user",
		})
		return
	}

	c.JSON(http.StatusOK, exists)
}

// CreateUser handles POST /api/users. Any failure is a bare 400.
func (uc *UserController) CreateUser(c *gin.Context) {
	var user entities.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := uc.userService.CreateUser(c.Request.Context(), &user)
	if err != nil {
		middleware.LogError(c, "create user: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateUser handles PUT /api/users/:id. The path ID overrides the payload's and
// an unknown ID creates the record.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	var user entities.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	user.ID = id

	updated, err := uc.userService.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		middleware.LogError(c, "update user %d: %v", id, err)
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/users/:id. Any failure is reported as 404.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			middleware.LogError(c, "delete user %d: %v", id, err)
		}
		c.Status(http.StatusNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondUser(c *gin.Context, user *entities.User, err error) {
	if errors.Is(err, repository.ErrUserNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		middleware.LogError(c, "get user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get user",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

func respondPage(c *gin.Context, page *models.Page[entities.User], err error) {
	if err != nil {
		middleware.LogError(c, "list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get users",
		})
		return
	}

	c.JSON(http.StatusOK, page)
}
