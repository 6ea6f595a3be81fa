package routes

import (
	"omis_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathPublicOrders = "/public/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	assigneeHandler *handlers.AssigneeHandler,
	transitionHandler *handlers.TransitionHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)

		orders.GET("/:id/quote", orderHandler.GetCurrentQuote)
		orders.GET("/:id/invoice", orderHandler.GetCurrentInvoice)
		orders.GET("/:id/invoices", orderHandler.ListInvoices)
		orders.GET("/:id/payments", orderHandler.ListPayments)

		orders.GET("/:id/assignees", assigneeHandler.ListAssignees)
		orders.PUT("/:id/assignees", assigneeHandler.SetAssignees)
		orders.GET("/:id/subscribers", assigneeHandler.ListSubscribers)
		orders.PUT("/:id/subscribers", assigneeHandler.SetSubscribers)

		// State machine; every endpoint is a single guarded transition.
		orders.POST("/:id/generate-quote", transitionHandler.GenerateQuote)
		orders.POST("/:id/reopen", transitionHandler.Reopen)
		orders.POST("/:id/accept-quote", transitionHandler.AcceptQuote)
		orders.POST("/:id/update-invoice", transitionHandler.UpdateInvoiceDetails)
		orders.POST("/:id/mark-as-paid", transitionHandler.MarkAsPaid)
		orders.POST("/:id/complete", transitionHandler.Complete)
		orders.POST("/:id/cancel", transitionHandler.Cancel)
	}

	public := rg.Group(PathPublicOrders)
	{
		public.GET("/:token", orderHandler.GetPublicOrder)
	}
}
