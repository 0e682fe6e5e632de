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

// createProductHandler handles POST /api/products
func createProductHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product model.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if missing := missingProductFields(&product); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Please provide all required fields: " + strings.Join(missing, ", "),
			})
			return
		}
		if product.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}

		if err := repo.Create(c.Request.Context(), &product); err != nil {
			log.Printf("Error creating product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// listProductsHandler handles GET /api/products
func listProductsHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.FindAll(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// getProductHandler handles GET /api/products/:id
func getProductHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid product ID")
		if !ok {
			return
		}

		product, err := repo.FindByID(c.Request.Context(), id)
		if err != nil {
			switch err {
			case errors.ErrProductNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				log.Printf("Error fetching product: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
			}
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// productsByCategoryHandler handles GET /api/products/category/:category
func productsByCategoryHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.FindByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			log.Printf("Error fetching products by category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// listCategoriesHandler handles GET /api/products/categories/unique
func listCategoriesHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repo.Categories(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// updateProductHandler handles PUT /api/products/:id
func updateProductHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid product ID")
		if !ok {
			return
		}

		var product model.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if missing := missingProductFields(&product); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Please provide all required fields: " + strings.Join(missing, ", "),
			})
			return
		}
		if product.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}

		if err := repo.Update(c.Request.Context(), id, &product); err != nil {
			switch err {
			case errors.ErrProductNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				log.Printf("Error updating product: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

// deleteProductHandler handles DELETE /api/products/:id. Deleting a product
// never cascades to coupons or orders that reference it.
func deleteProductHandler(repo repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid product ID")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			switch err {
			case errors.ErrProductNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				log.Printf("Error deleting product: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

func missingProductFields(p *model.Product) []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Price == 0 {
		missing = append(missing, "price")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}
