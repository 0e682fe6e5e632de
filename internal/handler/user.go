package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/pkg/errors"
)

// createUserHandler handles POST /api/users
func createUserHandler(repo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user model.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
			return
		}

		if err := repo.Create(c.Request.Context(), &user); err != nil {
			log.Printf("Error creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// listUsersHandler handles GET /api/users
func listUsersHandler(repo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := repo.FindAll(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// deleteUserHandler handles DELETE /api/users/:id
func deleteUserHandler(repo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Invalid user ID")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			switch err {
			case errors.ErrUserNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				log.Printf("Error deleting user: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
