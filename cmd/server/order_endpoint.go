package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

type updateOrderRequest struct {
	Status string `json:"status"`
}

// registerOrderRoutes mounts order endpoints on the group.
// Public:
//
//	GET /orders                     -> list (?customerId= filters)
//
// Protected (any signed-in user):
//
//	POST /orders     -> create (checkout)
//	PUT /orders/:id  -> status update (admin)
func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	g.GET("/orders", func(c echo.Context) error {
		ctx := c.Request().Context()
		if q := c.QueryParam("customerId"); q != "" {
			id, err := strconv.ParseInt(q, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid customerId"})
			}
			list, err := os.ListByCustomer(ctx, id)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, map[string]any{"orders": list})
		}
		list, err := os.List(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"orders": list})
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/orders", func(c echo.Context) error {
		o := new(model.Order)
		if err := c.Bind(o); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if claims := middleware.GetClaims(c); claims != nil && o.CustomerID == 0 {
			o.CustomerID = claims.UserID
		}
		if err := os.Create(c.Request().Context(), o); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"id": o.ID})
	})

	admin := g.Group("")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.PUT("/orders/:id", func(c echo.Context) error {
		req := new(updateOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := os.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
