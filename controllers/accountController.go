package controllers

import (
	"net/http"

	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
)

func Register(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.RegisterInput
		if !bindJSON(c, &body) {
			return
		}
		res, err := svc.Register(c.Request.Context(), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func Login(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.LoginInput
		if !bindJSON(c, &body) {
			return
		}
		res, err := svc.Login(c.Request.Context(), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func GetMe(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		user, err := svc.Me(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func ForgotPassword(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.ForgotPasswordInput
		if !bindJSON(c, &body) {
			return
		}
		res, err := svc.ForgotPassword(c.Request.Context(), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func ResetPassword(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.ResetPasswordInput
		if !bindJSON(c, &body) {
			return
		}
		if err := svc.ResetPassword(c.Request.Context(), body); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
