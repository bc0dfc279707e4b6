package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

type assignRequest struct {
	Assignee string `json:"assignee"`
}

// registerSupportRoutes mounts support ticket endpoints on the group.
func registerSupportRoutes(g *echo.Group, ss *services.SupportService) {
	g.GET("/support", func(c echo.Context) error {
		list, err := ss.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"tickets": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.PUT("/support/:id/assign", func(c echo.Context) error {
		req := new(assignRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ss.Assign(c.Request().Context(), c.Param("id"), req.Assignee); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "assigned"})
	})
}
