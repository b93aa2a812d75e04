package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// TeamUseCase gestión del equipo de una tienda: invitar miembros y listarlos.
// El binding perfil->tienda se fija en la creación y es inmutable; solo un
// admin puede cambiar roles después (AdminUseCase).
type TeamUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(profileRepo repository.ProfileRepository) *TeamUseCase {
	return &TeamUseCase{profileRepo: profileRepo}
}

// Invite crea un perfil manager o employee atado a la tienda del caller.
// Requiere ActionManageTeam (manager u owner; un employee no invita).
func (uc *TeamUseCase) Invite(ctx context.Context, profile *entity.Profile, storeID string, in dto.InviteMemberRequest) (*dto.ProfileResponse, error) {
	_ = ctx
	if d := authz.Authorize(profile, storeID, authz.ActionManageTeam); !d.Allowed {
		return nil, denialError(d)
	}
	// Solo se invita dentro de la tienda: nunca owners ni admins.
	if in.Role != entity.RoleManager && in.Role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

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
	member := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FullName:     fullName,
		Role:         in.Role,
		StoreID:      storeID,
		PasswordHash: string(hash),
		CreatedBy:    profile.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Create(member); err != nil {
		return nil, err
	}
	return toProfileResponse(member), nil
}

// List lista los miembros de la tienda.
func (uc *TeamUseCase) List(profile *entity.Profile, storeID string, limit, offset int) (*dto.TeamListResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionManageTeam); !d.Allowed {
		return nil, denialError(d)
	}
	members, err := uc.profileRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(members))
	for _, m := range members {
		items = append(items, *toProfileResponse(m))
	}
	return &dto.TeamListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
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
