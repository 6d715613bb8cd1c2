package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
)

func TestEmpresaDisplayName(t *testing.T) {
	conNombre := entity.Empresa{RazonSocial: "ACME Ltda."}
	assert.Equal(t, "ACME Ltda.", conNombre.DisplayName())

	sinNombre := entity.Empresa{}
	assert.Equal(t, "Empresa sin nombre", sinNombre.DisplayName(),
		"sin razón social cae al nombre por defecto")
}

func TestEstadoValido(t *testing.T) {
	for _, estado := range []string{
		entity.EstadoPendiente, entity.EstadoAprobada,
		entity.EstadoRechazada, entity.EstadoCompletada,
	} {
		assert.True(t, entity.EstadoValido(estado), estado)
	}
	assert.False(t, entity.EstadoValido("Completada"), "los estados son en minúscula")
	assert.False(t, entity.EstadoValido("archivada"))
}

func TestTipoPracticaValido(t *testing.T) {
	assert.True(t, entity.TipoPracticaValido(entity.PracticaUno))
	assert.True(t, entity.TipoPracticaValido(entity.PracticaDos))
	assert.False(t, entity.TipoPracticaValido("practica_3"))
}

func TestRefreshTokenExpired(t *testing.T) {
	now := time.Now()
	vigente := entity.RefreshToken{ExpiresAt: now.Add(time.Hour)}
	vencido := entity.RefreshToken{ExpiresAt: now.Add(-time.Hour)}

	assert.False(t, vigente.Expired(now))
	assert.True(t, vencido.Expired(now))
}
