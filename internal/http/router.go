package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "sewamobil-backend/internal/config"
	h "sewamobil-backend/internal/http/handlers"
	"sewamobil-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.SessionRequired(env.SessionSecret), h.Me)

		// Armada publik (landing page)
		fleet := api.Group("/fleet")
		fleet.GET("", h.BrowseFleet)
		fleet.GET("/:id", h.GetFleetVehicle)

		// Pemesanan publik
		api.POST("/quotes", h.GetQuote)
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/track/:code", h.TrackOrder)
		api.POST("/uploads/proof", h.UploadProof)

		// Invoice (tautan bagikan, tanpa login)
		api.GET("/invoices/:id/share", h.GetInvoiceShare)
		api.GET("/invoices/:id/pdf", h.GetInvoicePDF)

		// Testimoni publik
		api.GET("/testimonials", h.GetTestimonials)
		api.POST("/testimonials", h.CreateTestimonial)

		// Pengaturan yang dibaca frontend publik
		api.GET("/settings/banks", h.GetBankAccounts)
		api.GET("/settings/contact", h.GetContactInfo)
		api.GET("/settings/terms", h.GetTerms)

		// Back office, dijaga cookie sesi
		dash := api.Group("/dashboard", middleware.SessionRequired(env.SessionSecret))
		{
			// Kendaraan
			vehicles := dash.Group("/vehicles")
			vehicles.GET("", h.GetVehicles)
			vehicles.POST("", h.CreateVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)
			vehicles.DELETE("/:id", h.DeleteVehicle)

			// Pesanan
			orders := dash.Group("/orders")
			orders.GET("", h.GetOrders)
			orders.GET("/:id", h.GetOrderByID)
			orders.PUT("/:id/status", h.ChangeOrderStatus)
			orders.PUT("/:id/driver", h.AssignOrderDriver)
			orders.GET("/:id/invoice", h.GetInvoiceAdmin)
			orders.POST("/:id/invoice-image", h.GenerateInvoiceImage)

			// Supir
			drivers := dash.Group("/drivers")
			drivers.GET("", h.GetDrivers)
			drivers.POST("", h.CreateDriver)
			drivers.PUT("/:id", h.UpdateDriver)
			drivers.DELETE("/:id", h.DeleteDriver)

			// Laporan
			dash.GET("/reports/finance", h.GetFinanceReport)

			// Testimoni
			dash.DELETE("/testimonials/:id", h.DeleteTestimonial)

			// Pengaturan
			settings := dash.Group("/settings")
			settings.POST("/banks", h.CreateBankAccount)
			settings.DELETE("/banks/:id", h.DeleteBankAccount)
			settings.PUT("/contact", h.UpdateContactInfo)
			settings.PUT("/terms", h.UpdateTerms)

			// Bantuan AI
			dash.POST("/promo-text", h.GeneratePromoText)
		}
	}

	h.SetRouter(r)
	return r
}
