package controllers

import (
	"net/http"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
)

func GetProfile(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		profile, err := svc.GetProfile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func UpdateProfile(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body models.ProfileUpdate
		if !bindJSON(c, &body) {
			return
		}
		profile, err := svc.UpdateProfile(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
