package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

// registerCategoryRoutes mounts category endpoints on the group.
func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"categories": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.POST("/categories", func(c echo.Context) error {
		cat := new(model.Category)
		if err := c.Bind(cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Create(c.Request().Context(), cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"id": cat.ID})
	})

	protected.PUT("/categories/:id", func(c echo.Context) error {
		cat := new(model.Category)
		if err := c.Bind(cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cat.ID = c.Param("id")
		if err := cs.Update(c.Request().Context(), cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	protected.DELETE("/categories/:id", func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
