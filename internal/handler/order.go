package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/pkg/errors"
)

// createOrderHandler handles POST /api/orders
func createOrderHandler(repo repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order model.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if missing := missingOrderFields(&order); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Please provide all required fields: " + strings.Join(missing, ", "),
			})
			return
		}

		if err := repo.Create(c.Request.Context(), &order); err != nil {
			log.Printf("Error creating order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// listOrdersHandler handles GET /api/orders
func listOrdersHandler(repo repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.FindAll(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// deleteOrderHandler handles DELETE /api/orders/:id
func deleteOrderHandler(repo repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid order ID")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			switch err {
			case errors.ErrOrderNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				log.Printf("Error deleting order: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

func missingOrderFields(o *model.Order) []string {
	var missing []string
	if o.Name == "" {
		missing = append(missing, "name")
	}
	if o.Number == "" {
		missing = append(missing, "number")
	}
	if o.Address == "" {
		missing = append(missing, "address")
	}
	if o.Pincode == "" {
		missing = append(missing, "pincode")
	}
	if o.State == "" {
		missing = append(missing, "state")
	}
	if o.Email == "" {
		missing = append(missing, "email")
	}
	if o.ProductID.IsZero() {
		missing = append(missing, "productId")
	}
	if o.ProductName == "" {
		missing = append(missing, "productName")
	}
	if o.TotalAmount == 0 {
		missing = append(missing, "totalAmount")
	}
	return missing
}
