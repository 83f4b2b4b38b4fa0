package handlers

import (
	"net/http"
	"strings"

	"carrental/internal/http/middleware"
	"carrental/internal/repositories"
	"carrental/internal/services"

	"github.com/gin-gonic/gin"
)

type carPayload struct {
	Model     string `json:"model" binding:"required"`
	DailyRate int64  `json:"dailyRate"`
}

type ratePayload struct {
	DailyRate int64 `json:"dailyRate"`
}

func catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Repo:      repositories.CatalogRepository{},
		Cache:     catalogCache,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/cars
func GetCars(c *gin.Context) {
	cars, err := catalogService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// POST /api/cars
func CreateCar(c *gin.Context) {
	var payload carPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := catalogService(c).Add(payload.Model, payload.DailyRate); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "car added", "model": strings.TrimSpace(payload.Model)})
}

// PUT /api/cars/:model
func UpdateCarRate(c *gin.Context) {
	model := c.Param("model")

	var payload ratePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := catalogService(c).UpdateRate(model, payload.DailyRate); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "daily rate updated", "model": model})
}

// DELETE /api/cars/:model
func DeleteCar(c *gin.Context) {
	model := c.Param("model")

	if err := catalogService(c).Remove(model); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car deleted", "model": model})
}
