package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

type reviewRequest struct {
	Decision string `json:"decision"`
}

// registerRefundRoutes mounts refund endpoints on the group.
func registerRefundRoutes(g *echo.Group, rs *services.RefundService) {
	g.GET("/refunds", func(c echo.Context) error {
		list, err := rs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"refunds": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.PUT("/refunds/:id/review", func(c echo.Context) error {
		req := new(reviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := rs.Review(c.Request().Context(), c.Param("id"), req.Decision); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "reviewed"})
	})
}
