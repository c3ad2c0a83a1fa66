// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"sportsfest/controllers"
	"sportsfest/middlewares"
	"sportsfest/models"
)

// Controllers bundles the handler sets built in main with their injected
// services.
type Controllers struct {
	Participation *controllers.ParticipationController
	Match         *controllers.MatchController
	Standings     *controllers.StandingsController
}

func SetupRouter(ctls Controllers) *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		eventRoutes := apiV1.Group("/events")
		eventRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			eventRoutes.GET("", controllers.GetEventList)
			eventRoutes.GET("/:id", controllers.GetEventDetail)
			eventRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateEvent)
			eventRoutes.PUT("/:id", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateEvent)
		}

		sportRoutes := apiV1.Group("/sports")
		sportRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			sportRoutes.GET("", controllers.GetSportList)
			sportRoutes.GET("/:id", controllers.GetSportDetail)
			sportRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateSport)
			sportRoutes.DELETE("/:id", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteSport)

			// Captain and coordinator sets are admin-managed.
			sportRoutes.POST("/:id/captains", middlewares.RoleAuthMiddleware(models.RoleAdmin), ctls.Participation.AssignCaptain)
			sportRoutes.DELETE("/:id/captains/:reg", middlewares.RoleAuthMiddleware(models.RoleAdmin), ctls.Participation.RemoveCaptain)
			sportRoutes.POST("/:id/coordinators", middlewares.RoleAuthMiddleware(models.RoleAdmin), ctls.Participation.AssignCoordinator)
			sportRoutes.DELETE("/:id/coordinators/:reg", middlewares.RoleAuthMiddleware(models.RoleAdmin), ctls.Participation.RemoveCoordinator)

			sportRoutes.POST("/:id/entries", ctls.Participation.Enroll)
			sportRoutes.DELETE("/:id/participants/:reg", ctls.Participation.RemoveParticipation)

			sportRoutes.GET("/:id/teams", ctls.Participation.GetTeams)
			sportRoutes.POST("/:id/teams", ctls.Participation.CreateTeam)
			sportRoutes.PUT("/:id/teams/:team_id/members", ctls.Participation.ReplaceMember)
			sportRoutes.DELETE("/:id/teams/:team_id", ctls.Participation.DeleteTeam)

			sportRoutes.GET("/:id/matches", ctls.Match.List)
			sportRoutes.POST("/:id/matches", ctls.Match.Create)
			sportRoutes.GET("/:id/active", ctls.Match.Active)
			sportRoutes.GET("/:id/standings", ctls.Standings.Get)
		}

		matchRoutes := apiV1.Group("/matches")
		matchRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			matchRoutes.PUT("/:id/status", ctls.Match.UpdateStatus)
			matchRoutes.PUT("/:id/winner", ctls.Match.DeclareWinner)
			matchRoutes.PUT("/:id/qualifiers", ctls.Match.DeclareQualifiers)
			matchRoutes.DELETE("/:id", ctls.Match.Delete)
		}
	}

	return r
}
