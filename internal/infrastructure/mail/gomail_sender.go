package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/pkg/config"
)

var _ domain.Notifier = (*GomailSender)(nil)

// GomailSender adaptador SMTP del puerto domain.Notifier sobre gomail.
// El envío es síncrono; el error del dial/envío se devuelve tal cual al llamador.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el adaptador de correo con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo de texto plano. Falla con error si el servidor SMTP
// rechaza la conexión o el mensaje; nunca se silencia el fallo.
func (s *GomailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
