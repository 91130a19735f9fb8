package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	logCtl := controllers.NewLogController(services.NewLogService(db))
	analyticsCtl := controllers.NewAnalyticsController(
		services.NewAnalyticsService(db),
		services.NewComparisonService(db),
	)
	insightCtl := controllers.NewInsightController(services.NewInsightService(db))
	achievementCtl := controllers.NewAchievementController(services.NewAchievementService(db))
	goalCtl := controllers.NewGoalController(services.NewGoalService(db))
	bodyCtl := controllers.NewBodyController(services.NewBodyService(db))
	iconCtl := controllers.NewIconController(services.NewIconService(db))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Mutations require a valid token
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("", logCtl.CreateLog)
		logs.GET("", logCtl.ListLogs)
		logs.DELETE("/:id", logCtl.DeleteLog)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", goalCtl.GetGoal)
		goals.PUT("", goalCtl.UpsertGoal)
	}

	measurements := r.Group("/measurements")
	measurements.Use(middlewares.AuthMiddleware())
	{
		measurements.POST("", bodyCtl.CreateMeasurement)
		measurements.GET("", bodyCtl.ListMeasurements)
	}

	icons := r.Group("/icons")
	icons.Use(middlewares.AuthMiddleware())
	{
		icons.GET("/sport", iconCtl.ListSportMappings)
		icons.PUT("/sport", iconCtl.UpsertSportMapping)
	}

	// Analytics reads degrade to their empty state without identity instead of
	// rejecting, so a dashboard render never turns into an error banner.
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.SoftAuthMiddleware())
	{
		analytics.GET("/nutrition", analyticsCtl.GetNutritionBreakdown)
		analytics.GET("/sleep", analyticsCtl.GetSleepAnalysis)
		analytics.GET("/exercise", analyticsCtl.GetExerciseBreakdown)
		analytics.GET("/time-patterns", analyticsCtl.GetTimePatterns)
		analytics.GET("/personal-bests", analyticsCtl.GetPersonalBests)
		analytics.GET("/week-comparison", analyticsCtl.GetWeekComparison)
		analytics.GET("/monthly-summary", analyticsCtl.GetMonthlySummary)
		analytics.GET("/food-frequency", analyticsCtl.GetFoodFrequency)
		analytics.GET("/calendar", analyticsCtl.GetActivityCalendar)
		analytics.GET("/insights", insightCtl.GetInsights)
		analytics.GET("/achievements", achievementCtl.GetAchievements)
		analytics.GET("/predictions", achievementCtl.GetPredictions)
		analytics.GET("/bmi", bodyCtl.GetBMI)
		analytics.GET("/weight-trend", bodyCtl.GetWeightTrend)
	}

	return r
}
