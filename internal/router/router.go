package router

import (
	"studyhive/config"
	"studyhive/internal/handler"
	"studyhive/internal/middleware"
	"studyhive/internal/repository"
	"studyhive/internal/store"
	"studyhive/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

func Setup(cfg *config.Config, client *store.Client, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Repositories
	settingRepo := repository.NewSettingRepository(client)
	slideRepo := repository.NewResource(client, "hero_slides", "order_num.asc")
	galleryRepo := repository.NewResource(client, "gallery_images", "order_num.asc")
	socialRepo := repository.NewResource(client, "social_links", "")
	pricingRepo := repository.NewPricingRepository(client)
	contactRepo := repository.NewContactRepository(client)
	adminRepo := repository.NewAdminRepository(client)

	// Handlers
	settingsHandler := handler.NewSettingsHandler(settingRepo)
	slidesHandler := handler.NewContentHandler("slides", slideRepo)
	galleryHandler := handler.NewContentHandler("gallery", galleryRepo)
	socialHandler := handler.NewContentHandler("social-links", socialRepo)
	pricingHandler := handler.NewContentHandler("pricing", pricingRepo)
	contactHandler := handler.NewContactHandler(contactRepo)
	adminHandler := handler.NewAdminHandler(adminRepo)
	uploadHandler := handler.NewUploadHandler(cloud)
	pages := handler.NewPagesHandler()

	api := r.Group("/api")
	{
		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", settingsHandler.Save)

		mountContent(api, "slides", slidesHandler)
		mountContent(api, "gallery", galleryHandler)
		mountContent(api, "social-links", socialHandler)
		mountContent(api, "pricing", pricingHandler)

		api.GET("/contact", contactHandler.List)
		api.POST("/contact", contactHandler.Submit)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)
			admin.POST("/change-password", adminHandler.ChangePassword)
			admin.POST("/upload", uploadHandler.UploadImage)
		}
	}

	r.GET("/", pages.Page("index.html"))
	r.GET("/admin", pages.Page("admin.html"))
	r.GET("/terms", pages.Page("terms.html"))
	r.GET("/privacy", pages.Page("privacy.html"))
	r.GET("/refund", pages.Page("refund.html"))
	r.GET("/contact", pages.Page("contact.html"))
	r.GET("/about", pages.Page("about.html"))
	r.GET("/shipping", pages.Page("shipping.html"))

	return r
}

func mountContent(g *gin.RouterGroup, name string, h *handler.ContentHandler) {
	g.GET("/"+name, h.List)
	g.POST("/"+name, h.Create)
	g.PUT("/"+name+"/:id", h.Update)
	g.DELETE("/"+name+"/:id", h.Delete)
}
