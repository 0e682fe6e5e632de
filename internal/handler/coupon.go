package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/internal/service"
	"shop-admin/pkg/errors"
)

// createCouponHandler handles POST /api/coupons/create
func createCouponHandler(svc *service.CouponService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon model.Coupon
		if err := c.ShouldBindJSON(&coupon); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if coupon.Code == "" || coupon.DiscountAmount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code and discount amount are required."})
			return
		}

		if err := svc.Create(c.Request.Context(), &coupon); err != nil {
			switch err {
			case errors.ErrNegativeDiscount:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount cannot be negative."})
			case errors.ErrExpiryNotFuture:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry date must be in the future."})
			case errors.ErrCouponCodeExists:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists."})
			default:
				log.Printf("Error creating coupon: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create coupon"})
			}
			return
		}

		c.JSON(http.StatusCreated, coupon)
	}
}

// listCouponsHandler handles GET /api/coupons
func listCouponsHandler(repo repository.CouponRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		coupons, err := repo.FindAll(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching coupons: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch coupons"})
			return
		}

		c.JSON(http.StatusOK, coupons)
	}
}

// getCouponHandler handles GET /api/coupons/:id
func getCouponHandler(repo repository.CouponRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid coupon ID")
		if !ok {
			return
		}

		coupon, err := repo.FindByID(c.Request.Context(), id)
		if err != nil {
			switch err {
			case errors.ErrCouponNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			default:
				log.Printf("Error fetching coupon: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch coupon"})
			}
			return
		}

		c.JSON(http.StatusOK, coupon)
	}
}

// updateCouponHandler handles PUT /api/coupons/:id
func updateCouponHandler(svc *service.CouponService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid coupon ID")
		if !ok {
			return
		}

		var coupon model.Coupon
		if err := c.ShouldBindJSON(&coupon); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := svc.Update(c.Request.Context(), id, &coupon); err != nil {
			switch err {
			case errors.ErrNegativeDiscount:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount cannot be negative."})
			case errors.ErrExpiryNotFuture:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry date must be in the future."})
			case errors.ErrCouponCodeExists:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists."})
			case errors.ErrCouponNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			default:
				log.Printf("Error updating coupon: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update coupon"})
			}
			return
		}

		coupon.ID = id
		c.JSON(http.StatusOK, coupon)
	}
}

// deleteCouponHandler handles DELETE /api/coupons/:id
func deleteCouponHandler(repo repository.CouponRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid coupon ID")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			switch err {
			case errors.ErrCouponNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			default:
				log.Printf("Error deleting coupon: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete coupon"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
	}
}

// validateCouponHandler handles POST /api/coupons/validate
func validateCouponHandler(svc *service.CouponService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		coupon, err := svc.Validate(c.Request.Context(), req.Code)
		if err != nil {
			switch err {
			case errors.ErrCouponNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			case errors.ErrCouponExpired:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon has expired"})
			default:
				log.Printf("Error validating coupon: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate coupon"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon is valid", "coupon": coupon})
	}
}
