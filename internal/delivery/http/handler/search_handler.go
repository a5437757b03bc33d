package handler

import (
	"errors"

	"talent-search/internal/delivery/http/dto"
	"talent-search/internal/delivery/http/middleware"
	"talent-search/internal/pkg/response"
	"talent-search/internal/search"
	"talent-search/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	params := usecase.SearchParams{
		Type:           usecase.SearchType(req.SearchType),
		Query:          req.Query,
		JobDescription: req.JobDescription,
		Filters: search.Filters{
			Keywords:      req.Filters.Keywords,
			Location:      req.Filters.Location,
			MinExperience: req.Filters.MinExperience,
			MaxExperience: req.Filters.MaxExperience,
			Education:     req.Filters.Education,
		},
		Paginate: req.Paginate,
		Page:     req.Page,
		PerPage:  req.PerPage,
	}

	res, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapSearchError(err)
	}

	if res.Page != nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PagedSearchResponse{
			Items:   res.Page.Items,
			Total:   res.Page.Total,
			Page:    res.Page.Page,
			PerPage: res.Page.PerPage,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res.Items)
}

func mapSearchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrQueryRequired),
		errors.Is(err, usecase.ErrJobDescriptionRequired),
		errors.Is(err, usecase.ErrKeywordsRequired),
		errors.Is(err, usecase.ErrInvalidSearchType):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
