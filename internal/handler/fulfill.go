package handler

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/internal/service"
	"shop-admin/pkg/errors"
)

// fulfillOrderHandler handles POST /api/fulfill
func fulfillOrderHandler(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.FulfillOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		fulfilled, err := svc.Fulfill(c.Request.Context(), &req)
		if err != nil {
			switch {
			case stderrors.Is(err, errors.ErrFieldsRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			case stderrors.Is(err, errors.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			default:
				// Includes the removal-step failure: the snapshot is saved
				// but the pending order is still in place.
				log.Printf("Error fulfilling order: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fulfill the order."})
			}
			return
		}

		c.JSON(http.StatusCreated, fulfilled)
	}
}

// listFulfilledOrdersHandler handles GET /api/fulfill
func listFulfilledOrdersHandler(repo repository.FulfilledOrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.FindAll(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching fulfilled orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fulfilled orders."})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// deleteFulfilledOrderHandler handles DELETE /api/fulfill/:id
func deleteFulfilledOrderHandler(repo repository.FulfilledOrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid order ID")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			switch err {
			case errors.ErrFulfilledOrderNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
			default:
				log.Printf("Error deleting fulfilled order: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete the order."})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully."})
	}
}
