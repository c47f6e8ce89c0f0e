package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/swcatalog/film-manager/internal/core/ports"
)

type FilmHandler struct {
	filmService ports.FilmService
}

func NewFilmHandler(filmService ports.FilmService) *FilmHandler {
	return &FilmHandler{filmService: filmService}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Create adds a new film to the catalog.
//
// @Summary      Create a new film
// @Tags         films
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createFilmRequest  true  "Film details"
// @Success      201   {object}  domain.Film
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/films [post]
func (h *FilmHandler) Create(c echo.Context) error {
	var req createFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid release date")
	}

	film, err := h.filmService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, film)
}

// Sync reconciles the catalog against the external source.
//
// @Summary      Synchronize films from the external API
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ports.SyncResult
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/films/sync [post]
func (h *FilmHandler) Sync(c echo.Context) error {
	result, err := h.filmService.Sync(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// List returns all live films.
//
// @Summary      Get a list of all films
// @Tags         films
// @Produce      json
// @Success      200  {array}  domain.Film
// @Router       /api/films [get]
func (h *FilmHandler) List(c echo.Context) error {
	films, err := h.filmService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, films)
}

// Get returns one film by id.
//
// @Summary      Get a film by ID
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "ID of the film"
// @Success      200  {object}  domain.Film
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/films/{id} [get]
func (h *FilmHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	film, err := h.filmService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, film)
}

// Update applies a partial update to a film.
//
// @Summary      Update a film by ID
// @Tags         films
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "ID of the film"
// @Param        body  body      updateFilmRequest  true  "Fields to update"
// @Success      200   {object}  domain.Film
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/films/{id} [put]
func (h *FilmHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid release date")
	}

	film, err := h.filmService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, film)
}

// Remove soft-deletes a film.
//
// @Summary      Delete a film by ID
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "ID of the film"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/films/{id} [delete]
func (h *FilmHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.filmService.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Film with ID %d deleted successfully", id)})
}
