package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
)

// EstudianteHandler maneja el listado de estudiantes.
type EstudianteHandler struct {
	uc *usecase.EstudianteUseCase
}

// NewEstudianteHandler construye el handler inyectando el caso de uso.
func NewEstudianteHandler(uc *usecase.EstudianteUseCase) *EstudianteHandler {
	return &EstudianteHandler{uc: uc}
}

// List godoc
// @Summary      Listar estudiantes
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UserListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Router       /estudiantes/ [get]
func (h *EstudianteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// pageParams extrae limit/offset de la query con los topes del listado.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
