package usecase

import (
	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
)

// Asunto y mensaje por defecto de la alerta.
const (
	alertaSubject        = "Alarma"
	alertaDefaultMessage = "Aviso Alarma"
)

// AlertaUseCase envía una notificación por correo en nombre del llamador.
// El envío es síncrono y su fallo se propaga al llamador sin reintentos.
type AlertaUseCase struct {
	userRepo repository.UserRepository
	notifier domain.Notifier
}

// NewAlertaUseCase construye el caso de uso con el puerto de correo.
func NewAlertaUseCase(userRepo repository.UserRepository, notifier domain.Notifier) *AlertaUseCase {
	return &AlertaUseCase{userRepo: userRepo, notifier: notifier}
}

// Send envía la alerta. Destino vacío = correo de la cuenta autenticada.
func (uc *AlertaUseCase) Send(callerID string, in dto.AlertaRequest) (*dto.AlertaResponse, error) {
	to := in.Email
	if to == "" {
		caller, err := uc.userRepo.GetByID(callerID)
		if err != nil {
			return nil, err
		}
		if caller == nil {
			return nil, domain.ErrUserNotFound
		}
		to = caller.Email
	}
	message := in.Message
	if message == "" {
		message = alertaDefaultMessage
	}
	if err := uc.notifier.Send(to, alertaSubject, message); err != nil {
		return nil, err
	}
	return &dto.AlertaResponse{Status: "sent"}, nil
}
