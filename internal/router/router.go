package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	ListFeatured(c *ginext.Context)
	GetEvent(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ListCategories(c *ginext.Context)

	BookEvent(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetTicket(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)

	AdminListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Stats(c *ginext.Context)
	VerifyTicket(c *ginext.Context)
}

// Guards are the per-group middleware chains.
type Guards struct {
	Auth  ginext.HandlerFunc
	Admin ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/events", h.ListEvents)
		api.GET("/events/featured", h.ListFeatured)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.GET("/categories", h.ListCategories)
	}

	user := api.Group("", g.Auth)
	{
		// Bookings
		user.POST("/events/:id/book", h.BookEvent)
		user.GET("/me/bookings", h.ListMyBookings)
		user.POST("/bookings/:id/cancel", h.CancelBooking)
		user.GET("/bookings/:id/ticket", h.GetTicket)

		// Profile
		user.GET("/me/profile", h.GetProfile)
		user.PUT("/me/profile", h.UpdateProfile)
	}

	admin := api.Group("/admin", g.Auth, g.Admin)
	{
		admin.GET("/events", h.AdminListEvents)
		admin.POST("/events", h.CreateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)
		admin.GET("/stats", h.Stats)
		admin.POST("/tickets/verify", h.VerifyTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
