package webhook

import (
	"io"
	"net/http"

	"github.com/google/go-github/v42/github"
	"github.com/labstack/echo/v5"

	"github.com/ethanwang/hookpulse/internal/apperror"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhook", h.Receive)
}

// Receive is the webhook endpoint. The event kind and signature travel in
// headers, not the body, so they are extracted here and handed to the
// pipeline together with the raw bytes.
func (h *Handler) Receive(c *echo.Context) error {
	req := c.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return apperror.BadRequest("failed to read body")
	}

	result, err := h.svc.Process(
		req.Context(),
		body,
		req.Header.Get(github.SHA256SignatureHeader),
		github.WebHookType(req),
		github.DeliveryID(req),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
