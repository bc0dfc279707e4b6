package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

// registerProductRoutes mounts product endpoints on the group.
// Public:
//
//	GET /products      -> list
//	GET /products/:id  -> get
//
// Protected (admin):
//
//	POST /products        -> create
//	PUT /products/:id     -> update
//	DELETE /products/:id  -> soft delete
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"products": list})
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, p)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	protected.POST("/products", func(c echo.Context) error {
		p := new(model.Product)
		if err := c.Bind(p); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := ps.Create(c.Request().Context(), p)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]any{"id": id})
	})

	protected.PUT("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		p := new(model.Product)
		if err := c.Bind(p); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		p.ID = id
		if err := ps.Update(c.Request().Context(), p); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	protected.DELETE("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
