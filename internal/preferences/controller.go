package preferences

import (
	"encoding/json"
	"net/http"

	apperrors "oldenfyre/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const visitorCookie = "visitor_id"

type Controller struct {
	store  *ThemeStore
	logger *zap.Logger
}

func NewController(store *ThemeStore, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (c *Controller) GetTheme(w http.ResponseWriter, r *http.Request) {
	visitorID := c.visitorID(w, r)
	c.writeJSON(w, http.StatusOK, themeBody{Theme: c.store.Get(visitorID)})
}

func (c *Controller) PutTheme(w http.ResponseWriter, r *http.Request) {
	visitorID := c.visitorID(w, r)

	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	if err := c.store.Set(visitorID, body.Theme); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": ve.Details[0].Message,
		})
		return
	}

	c.writeJSON(w, http.StatusOK, themeBody{Theme: body.Theme})
}

// visitorID reads the visitor cookie, issuing one on first touch.
func (c *Controller) visitorID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(visitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
