package handler

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/repository"
	"shop-admin/internal/service"
)

// Deps carries the stores and services the route handlers close over
type Deps struct {
	Products    repository.ProductRepository
	Orders      repository.OrderRepository
	Users       repository.UserRepository
	Coupons     repository.CouponRepository
	Fulfilled   repository.FulfilledOrderRepository
	CouponSvc   *service.CouponService
	Fulfillment *service.FulfillmentService
}

// NewRouter builds the gin engine with all API routes registered
func NewRouter(deps Deps) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.POST("", createProductHandler(deps.Products))
			products.GET("", listProductsHandler(deps.Products))
			products.GET("/category/:category", productsByCategoryHandler(deps.Products))
			products.GET("/categories/unique", listCategoriesHandler(deps.Products))
			products.GET("/:id", getProductHandler(deps.Products))
			products.PUT("/:id", updateProductHandler(deps.Products))
			products.DELETE("/:id", deleteProductHandler(deps.Products))
		}

		orders := api.Group("/orders")
		{
			orders.POST("", createOrderHandler(deps.Orders))
			orders.GET("", listOrdersHandler(deps.Orders))
			orders.DELETE("/:id", deleteOrderHandler(deps.Orders))
		}

		fulfill := api.Group("/fulfill")
		{
			fulfill.POST("", fulfillOrderHandler(deps.Fulfillment))
			fulfill.GET("", listFulfilledOrdersHandler(deps.Fulfilled))
			fulfill.DELETE("/:id", deleteFulfilledOrderHandler(deps.Fulfilled))
		}

		coupons := api.Group("/coupons")
		{
			coupons.POST("/create", createCouponHandler(deps.CouponSvc))
			coupons.GET("", listCouponsHandler(deps.Coupons))
			coupons.POST("/validate", validateCouponHandler(deps.CouponSvc))
			coupons.GET("/:id", getCouponHandler(deps.Coupons))
			coupons.PUT("/:id", updateCouponHandler(deps.CouponSvc))
			coupons.DELETE("/:id", deleteCouponHandler(deps.Coupons))
		}

		users := api.Group("/users")
		{
			users.POST("", createUserHandler(deps.Users))
			users.GET("", listUsersHandler(deps.Users))
			users.DELETE("/:id", deleteUserHandler(deps.Users))
		}
	}

	return router
}

// parseID rejects malformed 24-hex ids before any store round-trip
func parseID(c *gin.Context, message string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return primitive.NilObjectID, false
	}
	return id, true
}
