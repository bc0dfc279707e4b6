package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

// registerCustomerRoutes mounts customer endpoints on the group.
// Public:
//
//	GET /customers      -> list
//	GET /customers/:id  -> get
//
// Protected:
//
//	PUT /customers/profile  -> patch own profile (signed-in user)
//	POST /customers         -> create (admin)
//	PUT /customers/:id      -> update (admin)
//	DELETE /customers/:id   -> soft delete (admin)
func registerCustomerRoutes(g *echo.Group, cs *services.CustomerService) {
	g.GET("/customers", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"customers": list})
	})

	g.GET("/customers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		cust, err := cs.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
		}
		return c.JSON(http.StatusOK, cust)
	})

	user := g.Group("")
	user.Use(middleware.JWTMiddleware())

	// profile must be registered before the :id routes bind into the group
	user.PUT("/customers/profile", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}
		fields := map[string]string{}
		if err := c.Bind(&fields); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.UpdateProfile(c.Request().Context(), claims.UserID, fields); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	admin := g.Group("")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.POST("/customers", func(c echo.Context) error {
		cust := new(model.Customer)
		if err := c.Bind(cust); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), cust)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]any{"id": id})
	})

	admin.PUT("/customers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		cust := new(model.Customer)
		if err := c.Bind(cust); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cust.ID = id
		if err := cs.Update(c.Request().Context(), cust); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	admin.DELETE("/customers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := cs.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
