package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
	"github.com/Adosh74/ai-nutrition-app/controllers"
	"github.com/Adosh74/ai-nutrition-app/middlewares"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Users     *controllers.UserController
	MealPlans *controllers.MealPlanController
	Meals     *controllers.MealController
}

func SetupRouter(log zerolog.Logger, ctls Controllers) *gin.Engine {
	r := gin.New()
	r.Use(
		middlewares.RequestLogger(log),
		middlewares.Recovery(log),
		middlewares.ErrorHandler(log),
	)

	r.GET("/healthz", controllers.Health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apperrors.NewNotFound("route not found").Wire())
	})

	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("", ctls.Users.Create)
		users.POST("/login", ctls.Users.Login)
		users.GET("", ctls.Users.List)
		users.GET("/:id", ctls.Users.GetByID)
		users.PUT("/:id", ctls.Users.Update)
		users.DELETE("/:id", ctls.Users.Delete)
	}

	plans := v1.Group("/meal-plans")
	{
		plans.POST("", ctls.MealPlans.Create)
		plans.GET("", ctls.MealPlans.List)
		plans.GET("/:id", ctls.MealPlans.GetByID)
		plans.PUT("/:id", ctls.MealPlans.Update)
		plans.DELETE("/:id", ctls.MealPlans.Delete)
	}

	meals := v1.Group("/meals")
	{
		meals.POST("", ctls.Meals.Create)
		meals.GET("", ctls.Meals.List)
		meals.GET("/:id", ctls.Meals.GetByID)
		meals.PUT("/:id", ctls.Meals.Update)
		meals.DELETE("/:id", ctls.Meals.Delete)
	}

	return r
}
