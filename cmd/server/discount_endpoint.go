package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

// registerDiscountRoutes mounts promotion endpoints on the group.
func registerDiscountRoutes(g *echo.Group, ds *services.DiscountService) {
	g.GET("/discounts", func(c echo.Context) error {
		list, err := ds.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"discounts": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.POST("/discounts", func(c echo.Context) error {
		d := new(model.Discount)
		if err := c.Bind(d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ds.Create(c.Request().Context(), d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"code": d.Code})
	})

	protected.PUT("/discounts/:code/toggle", func(c echo.Context) error {
		if err := ds.Toggle(c.Request().Context(), c.Param("code")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "toggled"})
	})

	protected.PUT("/discounts/:code", func(c echo.Context) error {
		d := new(model.Discount)
		if err := c.Bind(d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ds.Update(c.Request().Context(), c.Param("code"), d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	protected.DELETE("/discounts/:code", func(c echo.Context) error {
		if err := ds.Delete(c.Request().Context(), c.Param("code")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
