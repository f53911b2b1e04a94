package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
	"github.com/jortega/comercio-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro con onboarding del
// negocio, login y verificación de sesión.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	employeeRepo repository.EmployeeRepository
	runner       usecase.TxRunner
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, businessRepo repository.BusinessRepository, employeeRepo repository.EmployeeRepository, runner usecase.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		runner:       runner,
		jwtCfg:       jwtCfg,
	}
}

// Signup crea la cuenta, el negocio y sus datos semilla en una sola
// transacción. Devuelve ErrEmailAlreadyExists si el email ya tiene cuenta.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.BusinessType {
	case entity.BusinessTypeFB, entity.BusinessTypeRetail, entity.BusinessTypeService:
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	timezone := in.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	var (
		user     *entity.User
		business *entity.Business
	)
	err = uc.runner.WithinTx(ctx, func(ctx context.Context, repos usecase.TxRepos) error {
		user = &entity.User{
			Email:        email,
			PasswordHash: string(hash),
			FullName:     in.FullName,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ErrEmailAlreadyExists
			}
			return err
		}

		business = &entity.Business{
			OwnerUID:       user.ID,
			BusinessName:   in.BusinessName,
			BusinessType:   in.BusinessType,
			TaxRate:        0,
			Currency:       currency,
			Timezone:       timezone,
			EnabledModules: entity.DefaultModules(in.BusinessType),
		}
		if err := repos.Businesses.Create(ctx, business); err != nil {
			return err
		}

		user.Businesses = []string{business.ID}
		user.DefaultBusinessID = business.ID
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}

		return usecase.SeedTenant(ctx, repos, business, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, business.ID, entity.RoleOwner, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", user.ID).
		Str("business_id", business.ID).
		Str("business_type", business.BusinessType).
		Msg("negocio registrado")

	return &dto.AuthResponse{
		User:     *toUserResponse(user),
		Business: usecase.ToBusinessResponse(business),
		Token:    token,
	}, nil
}

// Login verifica credenciales, resuelve el negocio activo y el rol del
// usuario en él, y genera el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	businessID := in.BusinessID
	if businessID == "" {
		businessID = user.DefaultBusinessID
	}
	if businessID == "" && len(user.Businesses) > 0 {
		businessID = user.Businesses[0]
	}
	if businessID != "" && !hasBusiness(user, businessID) {
		return nil, domain.ErrForbidden
	}

	role := entity.RoleStaff
	var business *entity.Business
	if businessID != "" {
		business, err = uc.businessRepo.GetByID(ctx, businessID)
		if err != nil {
			return nil, err
		}
		if business == nil || !business.IsActive {
			return nil, domain.ErrForbidden
		}
		if business.OwnerUID == user.ID {
			role = entity.RoleOwner
		} else {
			emp, err := uc.employeeRepo.GetByUserUID(ctx, businessID, user.ID)
			if err != nil {
				return nil, err
			}
			if emp == nil {
				return nil, domain.ErrForbidden
			}
			role = emp.Role
		}
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, businessID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:     *toUserResponse(user),
		Business: usecase.ToBusinessResponse(business),
		Token:    token,
	}, nil
}

// Check devuelve el estado de la sesión a partir de los claims del token.
func (uc *AuthUseCase) Check(ctx context.Context, userID, businessID, role string) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return &dto.SessionResponse{Authenticated: false}, nil
	}
	return &dto.SessionResponse{
		Authenticated: true,
		User:          toUserResponse(user),
		BusinessID:    businessID,
		Role:          role,
	}, nil
}

func hasBusiness(u *entity.User, businessID string) bool {
	for _, id := range u.Businesses {
		if id == businessID {
			return true
		}
	}
	return false
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		Phone:             u.Phone,
		AvatarURL:         u.AvatarURL,
		Businesses:        u.Businesses,
		DefaultBusinessID: u.DefaultBusinessID,
		LastLogin:         u.LastLogin,
		CreatedAt:         u.CreatedAt,
	}
}
