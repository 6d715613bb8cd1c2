package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
	pkgjwt "github.com/UserBastianProboste/practicas-api/pkg/jwt"
)

// maxUsernameAttempts acota el reintento de derivación de username ante carreras
// sostenidas sobre el mismo local-part.
const maxUsernameAttempts = 100

// JWTConfig configuración para emisión del par de tokens.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
}

// ValidationError acumula fallas de validación del registro por campo.
// Todas las reglas se evalúan; no hay cortocircuito.
type ValidationError struct {
	Fields dto.FieldErrors
}

func (e *ValidationError) Error() string {
	return "registro inválido"
}

// UseCase casos de uso de autenticación: registro, login y rotación de tokens.
type UseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Register valida y crea una cuenta de estudiante. El username se deriva del
// local-part del email; ante colisión se prueba con sufijos 1, 2, … La unicidad
// la garantiza la constraint de la tabla: si otro registro gana la carrera entre
// la verificación y el insert, se reintenta con el siguiente sufijo.
// Devuelve *ValidationError con el mapa por campo cuando la entrada es inválida.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	fields := dto.FieldErrors{}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		fields.Add("email", domain.ErrEmailAlreadyExists.Error())
	}
	if len(in.Password) < 8 {
		fields.Add("password", domain.ErrPasswordTooShort.Error())
	}
	if fields.HasErrors() {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	base := strings.SplitN(in.Email, "@", 2)[0]
	suffix := 0
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		username, next, err := uc.nextFreeUsername(base, suffix)
		if err != nil {
			return nil, err
		}
		suffix = next

		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			Email:        in.Email,
			PasswordHash: string(hash),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Rol:          entity.RolEstudiante,
			Carrera:      in.Carrera,
			Telefono:     in.Telefono,
			Direccion:    in.Direccion,
			Rut:          in.Rut,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = uc.userRepo.Create(user)
		if err == nil {
			return toUserResponse(user), nil
		}
		if errors.Is(err, domain.ErrUsernameTaken) {
			// Otro registro ganó la carrera sobre este username; siguiente sufijo.
			continue
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fields.Add("email", domain.ErrEmailAlreadyExists.Error())
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}
	return nil, fmt.Errorf("derivar username para %q: intentos agotados", base)
}

// nextFreeUsername busca desde el sufijo dado el primer username libre.
// Devuelve el candidato y el sufijo desde el cual continuar si el insert falla.
func (uc *UseCase) nextFreeUsername(base string, from int) (string, int, error) {
	for suffix := from; suffix < from+maxUsernameAttempts; suffix++ {
		candidate := base
		if suffix > 0 {
			candidate = base + strconv.Itoa(suffix)
		}
		taken, err := uc.userRepo.UsernameExists(candidate)
		if err != nil {
			return "", 0, err
		}
		if !taken {
			return candidate, suffix + 1, nil
		}
	}
	return "", 0, fmt.Errorf("derivar username para %q: intentos agotados", base)
}

// Login verifica email y password y emite el par de tokens.
// Email desconocido y password incorrecta fallan con errores distintos del
// dominio, pero el handler los responde con el mismo formato genérico.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, refresh, err := uc.issueTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Refresh:     refresh,
		Access:      access,
		TipoUsuario: user.Rol,
		Username:    user.Username,
		Email:       user.Email,
	}, nil
}

// Refresh rota el par de tokens: valida el refresh recibido contra su hash
// persistido, lo revoca y emite un par nuevo. Un token revocado o vencido
// falla con domain.ErrInvalidToken.
func (uc *UseCase) Refresh(in dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	stored, err := uc.tokenRepo.GetByHash(hashToken(in.Refresh))
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrInvalidToken
	}
	if stored.Expired(time.Now()) {
		_ = uc.tokenRepo.Revoke(stored.ID)
		return nil, domain.ErrInvalidToken
	}
	if err := uc.tokenRepo.Revoke(stored.ID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	access, refresh, err := uc.issueTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Refresh: refresh, Access: access}, nil
}

// issueTokenPair emite el access JWT y un refresh opaco persistido por hash.
func (uc *UseCase) issueTokenPair(user *entity.User) (access, refresh string, err error) {
	access, err = pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return "", "", err
	}

	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}
	refresh = base64.RawURLEncoding.EncodeToString(raw)

	now := time.Now()
	token := &entity.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.RefreshDays) * 24 * time.Hour),
		CreatedAt: now,
	}
	if err = uc.tokenRepo.Create(token); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Rol:       u.Rol,
		Carrera:   u.Carrera,
		Telefono:  u.Telefono,
		Direccion: u.Direccion,
		Rut:       u.Rut,
	}
}
