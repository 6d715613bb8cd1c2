package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/application/auth"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EstudianteUC *usecase.EstudianteUseCase
	EmpresaUC    *usecase.EmpresaUseCase
	FichaUC      *usecase.FichaUseCase
	AlertaUC     *usecase.AlertaUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register/", authHandler.Register)
	app.Post("/login/", authHandler.Login)
	app.Post("/refresh/", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	estudianteHandler := NewEstudianteHandler(deps.EstudianteUC)
	protected.Get("/estudiantes/", estudianteHandler.List)

	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	protected.Get("/empresas/", empresaHandler.List)
	protected.Post("/empresas/", empresaHandler.Create)

	fichaHandler := NewFichaHandler(deps.FichaUC)
	protected.Get("/fichas-practicas/", fichaHandler.List)
	protected.Post("/fichas-practicas/", fichaHandler.Create)
	protected.Patch("/fichas-practicas/:id/estado",
		RequireRol(entity.RolCoordinador), fichaHandler.UpdateEstado)

	// Alerta como ruta propia de primer nivel, no anidada en otro recurso.
	alertaHandler := NewAlertaHandler(deps.AlertaUC)
	protected.Post("/alertas/", alertaHandler.Send)
}
