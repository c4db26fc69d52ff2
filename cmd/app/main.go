package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	authfx "stayrooted/cmd/fx/auth_fx"
	contentfx "stayrooted/cmd/fx/content_fx"
	dbfx "stayrooted/cmd/fx/db_fx"
	eventfx "stayrooted/cmd/fx/event_fx"
	organizationfx "stayrooted/cmd/fx/organization_fx"
	prayerfx "stayrooted/cmd/fx/prayer_fx"
	"stayrooted/internal/api/controllers"
	"stayrooted/internal/infra"
	"stayrooted/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		dbfx.Module,
		fx.Invoke(infra.Migrate),

		authfx.Module,
		prayerfx.Module,
		organizationfx.Module,
		eventfx.Module,
		contentfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	prayerController *controllers.PrayerController,
	organizationController *controllers.OrganizationController,
	eventController *controllers.EventController,
	contentController *controllers.ContentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, prayerController, organizationController, eventController, contentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	prayerController *controllers.PrayerController,
	organizationController *controllers.OrganizationController,
	eventController *controllers.EventController,
	contentController *controllers.ContentController) {

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	prayerGroup := r.Group("/api/prayers")
	prayerGroup.Use(middleware.JWTAuthMiddleware())
	prayerGroup.POST("", prayerController.CreatePrayer)
	prayerGroup.GET("/my-prayers", prayerController.GetMyPrayers)
	prayerGroup.GET("/community", prayerController.GetCommunityPrayers)
	prayerGroup.GET("/praise-reports", prayerController.GetPraiseReports)
	prayerGroup.GET("/following", prayerController.GetPrayersImFollowing)
	prayerGroup.GET("/stats", prayerController.GetPrayerStats)
	prayerGroup.GET("/:prayerId", prayerController.GetPrayerByID)
	prayerGroup.PUT("/:prayerId", prayerController.UpdatePrayer)
	prayerGroup.DELETE("/:prayerId", prayerController.DeletePrayer)
	prayerGroup.POST("/:prayerId/mark-answered", prayerController.MarkPrayerAsAnswered)
	prayerGroup.POST("/:prayerId/follow", prayerController.FollowPrayer)
	prayerGroup.DELETE("/:prayerId/follow", prayerController.UnfollowPrayer)
	prayerGroup.POST("/:prayerId/updates", prayerController.AddPrayerUpdate)
	prayerGroup.GET("/:prayerId/updates", prayerController.GetPrayerUpdates)
	prayerGroup.GET("/:prayerId/followers", prayerController.GetPrayerFollowers)

	orgGroup := r.Group("/api/organizations")
	orgGroup.Use(middleware.JWTAuthMiddleware())
	orgGroup.POST("", organizationController.CreateOrganization)
	orgGroup.GET("", organizationController.GetAllOrganizations)
	orgGroup.GET("/verified", organizationController.GetVerifiedOrganizations)
	orgGroup.GET("/search", organizationController.SearchOrganizations)
	orgGroup.GET("/nearby", organizationController.FindNearbyOrganizations)
	orgGroup.GET("/my-organizations", organizationController.GetMyOrganizations)
	orgGroup.GET("/:organizationId", organizationController.GetOrganizationByID)
	orgGroup.PUT("/:organizationId", organizationController.UpdateOrganization)
	orgGroup.DELETE("/:organizationId", organizationController.DeleteOrganization)
	orgGroup.POST("/:organizationId/join", organizationController.JoinOrganization)
	orgGroup.DELETE("/:organizationId/leave", organizationController.LeaveOrganization)
	orgGroup.GET("/:organizationId/members", organizationController.GetOrganizationMembers)
	orgGroup.PUT("/:organizationId/members/:memberId/role", organizationController.UpdateMemberRole)

	eventGroup := r.Group("/api/events")
	eventGroup.GET("", eventController.GetUpcomingEvents)
	eventGroup.GET("/:eventId", eventController.GetEventByID)
	eventGroup.GET("/organization/:organizationId", eventController.GetEventsByOrganization)
	eventGroup.GET("/type/:eventType", eventController.GetEventsByType)
	eventGroup.GET("/search", eventController.SearchEvents)
	eventGroup.POST("/nearby", eventController.FindNearbyEvents)

	eventAuthGroup := r.Group("/api/events")
	eventAuthGroup.Use(middleware.JWTAuthMiddleware())
	eventAuthGroup.POST("", eventController.CreateEvent)
	eventAuthGroup.PUT("/:eventId", eventController.UpdateEvent)
	eventAuthGroup.DELETE("/:eventId", eventController.DeleteEvent)
	eventAuthGroup.GET("/my-events", eventController.GetMyCreatedEvents)

	contentGroup := r.Group("/api/content")
	contentGroup.Use(middleware.JWTAuthMiddleware())
	contentGroup.GET("/today", contentController.GetTodayContent)
	contentGroup.GET("", contentController.ListContent)
}
