package usecase_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (n *fakeNotifier) Send(to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeUserGetter struct {
	users map[string]*entity.User
}

func (r *fakeUserGetter) Create(u *entity.User) error               { return nil }
func (r *fakeUserGetter) GetByEmail(string) (*entity.User, error)   { return nil, nil }
func (r *fakeUserGetter) UsernameExists(string) (bool, error)       { return false, nil }
func (r *fakeUserGetter) Update(*entity.User) error                 { return nil }
func (r *fakeUserGetter) ListByRol(string, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserGetter) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func setupAlertaUC(notifier *fakeNotifier) *usecase.AlertaUseCase {
	users := &fakeUserGetter{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "caller@example.com", Rol: entity.RolEstudiante},
	}}
	return usecase.NewAlertaUseCase(users, notifier)
}

func TestAlertaSend_DestinoPorDefectoEsElLlamador(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := setupAlertaUC(notifier)

	out, err := uc.Send("user-1", dto.AlertaRequest{})
	require.NoError(t, err)

	assert.Equal(t, "sent", out.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "caller@example.com", notifier.sent[0].to)
	assert.Equal(t, "Alarma", notifier.sent[0].subject)
	assert.Equal(t, "Aviso Alarma", notifier.sent[0].body, "mensaje por defecto")
}

func TestAlertaSend_DestinoExplicito(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := setupAlertaUC(notifier)

	_, err := uc.Send("user-1", dto.AlertaRequest{Email: "otro@example.com", Message: "revisar ficha"})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "otro@example.com", notifier.sent[0].to)
	assert.Equal(t, "revisar ficha", notifier.sent[0].body)
}

func TestAlertaSend_FalloDelTransporteSePropaga(t *testing.T) {
	smtpErr := errors.New("dial tcp: connection refused")
	notifier := &fakeNotifier{err: smtpErr}
	uc := setupAlertaUC(notifier)

	_, err := uc.Send("user-1", dto.AlertaRequest{Message: "hola"})

	assert.ErrorIs(t, err, smtpErr, "el fallo SMTP nunca se silencia")
}

func TestAlertaSend_LlamadorInexistente(t *testing.T) {
	uc := setupAlertaUC(&fakeNotifier{})

	_, err := uc.Send("fantasma", dto.AlertaRequest{})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
