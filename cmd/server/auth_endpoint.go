package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerAuthRoutes mounts register/login on the group.
func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	g.POST("/auth/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := as.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		token, err := middleware.GenerateToken(id, req.Email, "user", 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]any{"id": id, "token": token})
	})

	g.POST("/auth/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		account, err := as.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		token, err := middleware.GenerateToken(account.ID, account.Email, account.Role, 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"id":       account.ID,
			"fullName": account.FullName,
			"role":     account.Role,
			"token":    token,
		})
	})
}
