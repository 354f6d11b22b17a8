package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/invoice_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

// SetupInvoiceRoutes expects a group already behind AdminAuthMiddleware
func SetupInvoiceRoutes(protected *gin.RouterGroup, recorder services.ActivityRecorder) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.ActivityLoggingMiddleware(recorder, models.ResourceTypeInvoice))
	{
		invoices.POST("", invoice_controller.CreateInvoice)
		invoices.GET("", invoice_controller.GetInvoices)
		invoices.GET("/:id", invoice_controller.GetInvoiceByID)
		invoices.GET("/:id/pdf", invoice_controller.DownloadInvoicePDF)
		invoices.POST("/:id/send", invoice_controller.SendInvoice)
		invoices.PATCH("/:id/status", invoice_controller.UpdateInvoiceStatus)
	}
}
