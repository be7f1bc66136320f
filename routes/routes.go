package routes

import (
	"github.com/adityab94/FitForge/controllers"
	"github.com/adityab94/FitForge/middleware"
	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Options struct {
	CORSOrigins    []string
	MaxUploadBytes int64
}

// NewRouter builds the engine: probes at the root, the API under /api.
func NewRouter(svc *services.Services, hub *services.RealtimeHub, logger logrus.FieldLogger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), gin.Recovery(), middleware.CORS(opts.CORSOrigins))

	r.GET("/read-probe", controllers.ReadProbe())
	r.GET("/check-live", controllers.CheckLive(svc))

	api := r.Group("/api")
	SetupRoutes(api, svc, hub, opts.MaxUploadBytes)
	return r
}

func SetupRoutes(router *gin.RouterGroup, svc *services.Services, hub *services.RealtimeHub, maxUpload int64) {
	router.GET("", controllers.Banner())
	router.GET("/", controllers.Banner())
	router.POST("/auth/register", controllers.Register(svc))
	router.POST("/auth/login", controllers.Login(svc))
	router.POST("/auth/forgot-password", controllers.ForgotPassword(svc))
	router.POST("/auth/reset-password", controllers.ResetPassword(svc))
	router.GET("/files/:id", controllers.ServeFile(svc))

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		protected.GET("/auth/me", controllers.GetMe(svc))

		protected.GET("/profile", controllers.GetProfile(svc))
		protected.PUT("/profile", controllers.UpdateProfile(svc))

		protected.GET("/weight-logs", controllers.GetWeightLogs(svc))
		protected.POST("/weight-logs", controllers.AddWeightLog(svc))

		protected.GET("/workouts", controllers.GetWorkouts(svc))
		protected.POST("/workouts", controllers.AddWorkout(svc))
		protected.DELETE("/workouts/:id", controllers.DeleteWorkout(svc))
		protected.GET("/workout-heatmap", controllers.GetWorkoutHeatmap(svc))

		protected.GET("/measurements", controllers.GetMeasurements(svc))
		protected.POST("/measurements", controllers.AddMeasurement(svc))

		protected.GET("/steps", controllers.GetSteps(svc))
		protected.POST("/steps", controllers.AddSteps(svc))

		protected.GET("/water", controllers.GetWater(svc))
		protected.POST("/water", controllers.SetWater(svc))

		protected.GET("/nutrition", controllers.GetNutrition(svc))
		protected.GET("/nutrition/copy-yesterday", controllers.CopyNutritionFromYesterday(svc))
		protected.POST("/nutrition/manual", controllers.LogNutritionManual(svc))

		protected.GET("/body-composition", controllers.GetBodyComposition(svc))
		protected.POST("/body-composition", controllers.CalculateBodyComposition(svc))

		protected.GET("/progress-photos", controllers.GetProgressPhotos(svc))
		protected.POST("/progress-photos", controllers.UploadProgressPhoto(svc, maxUpload))
		protected.DELETE("/progress-photos/:id", controllers.DeleteProgressPhoto(svc))
		protected.POST("/upload/avatar", controllers.UploadAvatar(svc, maxUpload))

		protected.POST("/push/subscribe", controllers.PushSubscribe(svc))
		protected.GET("/stats", controllers.GetStats(svc))
		protected.GET("/ws", controllers.RealtimeWS(hub))
	}
}
