package controllers

import (
	"net/http"

	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
)

// Weight logs, workouts, measurements, steps and water.

func GetWeightLogs(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		logs, err := svc.ListWeightLogs(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

func AddWeightLog(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.WeightInput
		if !bindJSON(c, &body) {
			return
		}
		entry, err := svc.AddWeight(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func GetWorkouts(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		workouts, err := svc.ListWorkouts(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

func AddWorkout(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.WorkoutInput
		if !bindJSON(c, &body) {
			return
		}
		workout, err := svc.AddWorkout(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

func DeleteWorkout(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		if err := svc.DeleteWorkout(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	}
}

func GetWorkoutHeatmap(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		grid, err := svc.Heatmap(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, grid)
	}
}

func GetMeasurements(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		out, err := svc.ListMeasurements(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func AddMeasurement(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.MeasurementInput
		if !bindJSON(c, &body) {
			return
		}
		m, err := svc.AddMeasurement(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func GetSteps(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		out, err := svc.ListSteps(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func AddSteps(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.StepsInput
		if !bindJSON(c, &body) {
			return
		}
		entry, err := svc.LogSteps(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func GetWater(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		entry, err := svc.GetWater(c.Request.Context(), userID, c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func SetWater(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.WaterInput
		if !bindJSON(c, &body) {
			return
		}
		entry, err := svc.SetWater(c.Request.Context(), userID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}
