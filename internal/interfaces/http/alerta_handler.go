package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
)

// AlertaHandler maneja el envío de alertas por correo.
type AlertaHandler struct {
	uc *usecase.AlertaUseCase
}

// NewAlertaHandler construye el handler inyectando el caso de uso.
func NewAlertaHandler(uc *usecase.AlertaUseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar alerta por correo
// @Description  Sin email en el cuerpo, la alerta va al correo del llamador autenticado.
// @Tags         alertas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AlertaRequest  true  "destino y mensaje opcionales"
// @Success      200   {object}  dto.AlertaResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /alertas/ [post]
func (h *AlertaHandler) Send(c *fiber.Ctx) error {
	var in dto.AlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Send(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrUserNotFound.Error()})
		}
		// El fallo del transporte SMTP se propaga, nunca se silencia.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MAIL_FAILED", Message: err.Error()})
	}
	return c.JSON(out)
}
