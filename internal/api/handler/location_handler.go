package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/ports"
)

// LocationHandler handles HTTP requests for collection-point operations.
type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// Create handles POST /v1/locations.
//
// @Summary      Register a new collection point
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLocationRequest  true  "Collection point details"
// @Success      201   {object}  createLocationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createLocationResponse{
		Message: "location saved successfully",
		ID:      id,
	})
}

// List handles GET /v1/locations.
//
// @Summary      List all collection points
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listLocationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	locs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(locs))
}

// Update handles PUT /v1/locations.
//
// @Summary      Replace all fields of a collection point
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateLocationRequest  true  "Replacement payload"
// @Success      200   {object}  updateLocationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/locations [put]
func (h *LocationHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), toUpdateInput(req, userID))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		if errors.Is(err, domain.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "location not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, updateLocationResponse{
		Message:  "location updated successfully",
		Location: toLocationResponse(*updated),
	})
}

// Delete handles DELETE /v1/locations. Deleting an id that does not exist
// still returns 200.
//
// @Summary      Delete a collection point
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteLocationRequest  true  "Id of the collection point"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/locations [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req deleteLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteLocationInput{ID: req.ID, RequestedBy: userID}); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "location deleted successfully"})
}
