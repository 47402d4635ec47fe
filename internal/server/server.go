// Package server assembles the FinanceBook REST API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"financebook/internal/config"
	_ "financebook/internal/docs" // swagger docs
	"financebook/internal/handlers"
	"financebook/internal/middleware"
	"financebook/internal/services"
	"financebook/internal/storage"
	"financebook/internal/validator"
)

// APIPrefix is the path every API route lives under.
const APIPrefix = "/api"

// multipartMemory is how much of an upload gin buffers before spilling to
// temporary files.
const multipartMemory = 8 << 20

// NewRouter wires services, handlers and middleware into a gin engine.
func NewRouter(db *gorm.DB, store *storage.Store, cfg *config.Config) *gin.Engine {
	validator.Register()
	config.Set(cfg)

	// Initialize services
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	categoryTypeService := services.NewCategoryTypeService(db)
	categoryService := services.NewCategoryService(db)
	recipientService := services.NewRecipientService(db)
	paymentItemService := services.NewPaymentItemService(db, store)
	importService := services.NewImportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, categoryTypeService)
	recipientHandler := handlers.NewRecipientHandler(recipientService)
	paymentItemHandler := handlers.NewPaymentItemHandler(paymentItemService, auditService)
	fileHandler := handlers.NewFileHandler(paymentItemService, store, auditService)
	importHandler := handlers.NewImportHandler(importService, auditService)

	router := gin.New()
	router.MaxMultipartMemory = multipartMemory
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(APIPrefix)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/download_static/:name", fileHandler.DownloadStatic)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authHandler.Me)

	items := protected.Group("/payment-items")
	items.GET("", paymentItemHandler.ListPaymentItems)
	items.POST("", paymentItemHandler.CreatePaymentItem)
	items.GET("/:id", paymentItemHandler.GetPaymentItem)
	items.PUT("/:id", paymentItemHandler.UpdatePaymentItem)
	items.DELETE("/:id", paymentItemHandler.DeletePaymentItem)

	recipients := protected.Group("/recipients")
	recipients.GET("", recipientHandler.ListRecipients)
	recipients.POST("", recipientHandler.CreateRecipient)
	recipients.GET("/:id", recipientHandler.GetRecipient)
	recipients.PUT("/:id", recipientHandler.UpdateRecipient)

	protected.GET("/category-types", categoryHandler.ListCategoryTypes)
	protected.POST("/category-types", categoryHandler.CreateCategoryType)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/by-type/:typeId", categoryHandler.ListCategoriesByType)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.GET("/:id/tree", categoryHandler.GetCategoryTree)
	categories.GET("/:id/descendants", categoryHandler.GetDescendants)

	// Files
	protected.POST("/uploadicon/", fileHandler.UploadIcon)
	protected.POST("/upload-invoice/:id", fileHandler.UploadInvoice)
	protected.DELETE("/invoice/:id", fileHandler.DeleteInvoice)
	protected.GET("/download-invoice/:id", fileHandler.DownloadInvoice)

	protected.POST("/import-csv", importHandler.ImportCSV)

	return router
}
