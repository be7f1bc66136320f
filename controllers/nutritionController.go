package controllers

import (
	"net/http"

	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
)

func GetNutrition(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		entry, err := svc.GetNutrition(c.Request.Context(), userID, c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func LogNutritionManual(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.NutritionInput
		if !bindJSON(c, &body) {
			return
		}
		res, err := svc.LogNutritionManual(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func CopyNutritionFromYesterday(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		res, err := svc.CopyNutritionFromYesterday(c.Request.Context(), userID, c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func CalculateBodyComposition(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.BodyCompositionInput
		if !bindJSON(c, &body) {
			return
		}
		res, err := svc.CalculateBodyComposition(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func GetBodyComposition(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		out, err := svc.ListBodyComposition(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetStats returns the dashboard snapshot for ?date=, today by default.
func GetStats(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		stats, err := svc.Stats(c.Request.Context(), userID, c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
