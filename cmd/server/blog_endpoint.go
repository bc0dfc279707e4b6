package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

// registerBlogRoutes mounts blog endpoints on the group.
func registerBlogRoutes(g *echo.Group, bs *services.BlogService) {
	g.GET("/blogs", func(c echo.Context) error {
		list, err := bs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"blogs": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.POST("/blogs", func(c echo.Context) error {
		b := new(model.Blog)
		if err := c.Bind(b); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := bs.Create(c.Request().Context(), b); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"id": b.ID})
	})

	protected.PUT("/blogs/:id", func(c echo.Context) error {
		b := new(model.Blog)
		if err := c.Bind(b); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		b.ID = c.Param("id")
		if err := bs.Update(c.Request().Context(), b); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	protected.DELETE("/blogs/:id", func(c echo.Context) error {
		if err := bs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
