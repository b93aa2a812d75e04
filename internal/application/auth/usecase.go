package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
	"github.com/jhoicas/FotoStock-api/pkg/jwt"
	"github.com/jhoicas/FotoStock-api/pkg/slug"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Intentos de sufijo de slug antes de rendirse ("mi-loja", "mi-loja-2", ...).
const maxSlugAttempts = 20

// AuthUseCase casos de uso de autenticación: signup, login y resolución
// de identidad (principal autenticado -> Profile).
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	storeRepo   repository.StoreRepository
	txRunner    TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, storeRepo repository.StoreRepository, txRunner TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, storeRepo: storeRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Resolve convierte un principal autenticado (el user_id del token) en su
// Profile persistido. Retorna domain.ErrProfileNotFound si el principal está
// autenticado pero no aprovisionado; cualquier fallo del storage se propaga
// tal cual (transitorio, el caller puede reintentar). Sin efectos secundarios.
func (uc *AuthUseCase) Resolve(ctx context.Context, principalID string) (*entity.Profile, error) {
	_ = ctx
	if principalID == "" {
		return nil, domain.ErrProfileNotFound
	}
	profile, err := uc.profileRepo.GetByID(principalID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// Signup crea la tienda y su perfil owner en UNA transacción. La tienda nace
// en plan free con el límite correspondiente de la tabla de planes.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	existing, err := uc.profileRepo.GetByEmail(in.Email)
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

	now := time.Now()
	fullName := in.FullName
	if fullName == "" {
		fullName = in.Email
	}

	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.StoreName,
		Plan:      plan.TierFree,
		PlanLimit: plan.CeilingFor(plan.TierFree),
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FullName:     fullName,
		Role:         entity.RoleOwner,
		StoreID:      store.ID,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store.OwnerID = profile.ID

	base := slug.Make(in.StoreName)
	if base == "" {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.RunSignup(ctx, func(profileRepo repository.ProfileRepository, storeRepo repository.StoreRepository) error {
		// La unicidad del slug la garantiza el índice único; ante colisión se
		// reintenta con sufijo numérico dentro de la misma tx.
		var createErr error
		for n := 1; n <= maxSlugAttempts; n++ {
			store.Slug = slug.WithSuffix(base, n)
			createErr = storeRepo.Create(store)
			if createErr == nil {
				break
			}
			if !errors.Is(createErr, domain.ErrSlugAlreadyExists) {
				return createErr
			}
		}
		if createErr != nil {
			return createErr
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Profile: *ToProfileResponse(profile),
		Store:   *ToStoreResponse(store),
	}, nil
}

// Login verifica email/password contra el hash persistido, genera el JWT y
// devuelve token + perfil. El token solo transporta la identidad; el rol
// autoritativo se vuelve a resolver en cada request.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	_ = ctx
	profile, err := uc.profileRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.StoreID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *ToProfileResponse(profile),
	}, nil
}

// ToProfileResponse mapea la entidad al DTO expuesto (sin hash).
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		StoreID:   p.StoreID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToStoreResponse mapea la entidad al DTO expuesto.
func ToStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Slug:      s.Slug,
		Plan:      s.Plan,
		PlanLimit: s.PlanLimit,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
