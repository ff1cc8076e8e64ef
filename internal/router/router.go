package router

import (
	"net/http"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListTours(c *ginext.Context)
	GetTour(c *ginext.Context)
	CreateTour(c *ginext.Context)
	UpdateTour(c *ginext.Context)
	DeleteTour(c *ginext.Context)

	BookTour(c *ginext.Context)
	GetBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	PayBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	SetBookingStatus(c *ginext.Context)

	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	ListUsers(c *ginext.Context)
	SetUserRoles(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	ListCategories(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	UpdateCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	ListReviews(c *ginext.Context)
	AddReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)
	MyWishlist(c *ginext.Context)
	AddToWishlist(c *ginext.Context)
	RemoveFromWishlist(c *ginext.Context)

	ListNotifications(c *ginext.Context)
	RunJob(c *ginext.Context)
}

// InitRouter mounts the API. authn must authenticate the caller; admin routes
// additionally require the admin role.
func InitRouter(mode string, h Handler, authn ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.GET("/tours", h.ListTours)
		api.GET("/tours/:id", h.GetTour)
		api.GET("/tours/:id/reviews", h.ListReviews)
		api.GET("/categories", h.ListCategories)
		api.POST("/users", h.Register)
		api.POST("/auth/login", h.Login)
	}

	user := api.Group("", authn)
	{
		user.GET("/me", h.Me)
		user.GET("/me/bookings", h.MyBookings)
		user.GET("/me/wishlist", h.MyWishlist)
		user.POST("/me/wishlist/:tourId", h.AddToWishlist)
		user.DELETE("/me/wishlist/:tourId", h.RemoveFromWishlist)

		user.POST("/tours/:id/book", h.BookTour)
		user.POST("/tours/:id/reviews", h.AddReview)

		user.GET("/bookings/:id", h.GetBooking)
		user.POST("/bookings/:id/pay", h.PayBooking)
		user.POST("/bookings/:id/cancel", h.CancelBooking)
	}

	admin := api.Group("/admin", authn, middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/tours", h.CreateTour)
		admin.PUT("/tours/:id", h.UpdateTour)
		admin.DELETE("/tours/:id", h.DeleteTour)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/status", h.SetBookingStatus)

		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/roles", h.SetUserRoles)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.DELETE("/reviews/:id", h.DeleteReview)
		admin.GET("/notifications", h.ListNotifications)
		admin.POST("/jobs/:name/run", h.RunJob)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
