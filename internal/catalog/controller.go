package catalog

import (
	"encoding/json"
	"net/http"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	found, err := c.repo.All(r.Context())
	if err != nil {
		c.logger.Error("listing products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	dtos := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		dtos = append(dtos, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, ListProductsResponse{Products: dtos})
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	p, err := c.repo.FindByCode(r.Context(), code)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return
		}
		c.logger.Error("fetching product failed", zap.String("code", code), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, toProductDTO(*p))
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Edition:     p.Edition,
		Description: p.Description,
		Price:       p.Price,
		OfferPrice:  p.OfferPrice,
		Color:       p.Color,
		Year:        p.Year,
	}
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
