// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hostelbites/internal/delivery/api/middleware"
	"hostelbites/internal/delivery/api/router/handler"
	"hostelbites/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	CatalogHandler     *handler.CatalogHandler
	PaymentHandler     *handler.PaymentHandler
	ReviewHandler      *handler.ReviewHandler
	MealRequestHandler *handler.MealRequestHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	catalogHandler     *handler.CatalogHandler
	paymentHandler     *handler.PaymentHandler
	reviewHandler      *handler.ReviewHandler
	mealRequestHandler *handler.MealRequestHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		catalogHandler:     params.CatalogHandler,
		paymentHandler:     params.PaymentHandler,
		reviewHandler:      params.ReviewHandler,
		mealRequestHandler: params.MealRequestHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/auth/token", r.userHandler.IssueToken)

	e.GET("/meals", r.catalogHandler.ListMeals)
	e.GET("/meals/:id", r.catalogHandler.GetMeal)
	e.GET("/packages", r.catalogHandler.ListPackages)
	e.GET("/packages/:name", r.catalogHandler.GetPackage)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/users/me", r.userHandler.GetProfile)

	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("/intents", r.paymentHandler.CreateIntent)
		paymentsGroup.POST("", r.paymentHandler.ApplyPurchase)
		paymentsGroup.GET("/me", r.paymentHandler.GetMyPayment)
	}

	mealsGroup := apiV1.Group("/meals")
	{
		mealsGroup.POST("/:id/likes", r.reviewHandler.LikeMeal)
		mealsGroup.DELETE("/:id/likes", r.reviewHandler.UnlikeMeal)
		mealsGroup.POST("/:id/reviews", r.reviewHandler.AddReview)
	}
	apiV1.GET("/reviews/me", r.reviewHandler.ListMyReviews)

	requestsGroup := apiV1.Group("/meal-requests")
	{
		requestsGroup.POST("", r.mealRequestHandler.Submit)
		requestsGroup.GET("/me", r.mealRequestHandler.ListMine)
		requestsGroup.DELETE("/:id", r.mealRequestHandler.Cancel)
		requestsGroup.GET("/:id/qr", r.mealRequestHandler.TicketQR)
	}

	// Admin routes
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.POST("/meals", r.catalogHandler.CreateMeal)
		adminGroup.POST("/packages", r.catalogHandler.CreatePackage)
		adminGroup.GET("/payments", r.paymentHandler.ListPayments)
		adminGroup.GET("/meal-requests", r.mealRequestHandler.List)
		adminGroup.PATCH("/meal-requests/:id", r.mealRequestHandler.UpdateStatus)
		adminGroup.POST("/meal-requests/scan", r.mealRequestHandler.Scan)
	}
}
