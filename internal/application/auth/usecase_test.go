package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FotoStock-api/internal/application/auth"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/FotoStock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProfiles struct {
	byID map[string]*entity.Profile
}

func (r *memProfiles) Create(p *entity.Profile) error {
	for _, other := range r.byID {
		if other.Email == p.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProfiles) GetByID(id string) (*entity.Profile, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProfiles) GetByEmail(email string) (*entity.Profile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProfiles) Update(p *entity.Profile) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProfiles) UpdateRole(id, role string) error {
	if p, ok := r.byID[id]; ok {
		p.Role = role
	}
	return nil
}

func (r *memProfiles) ListByStore(storeID string, limit, offset int) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.byID {
		if p.StoreID == storeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memStores struct {
	byID map[string]*entity.Store
}

func (r *memStores) Create(s *entity.Store) error {
	for _, other := range r.byID {
		if other.Slug == s.Slug {
			return domain.ErrSlugAlreadyExists
		}
	}
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *memStores) GetByID(id string) (*entity.Store, error) {
	if s, ok := r.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memStores) GetBySlug(slug string) (*entity.Store, error) {
	for _, s := range r.byID {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memStores) GetForUpdate(id string) (*entity.Store, error) { return r.GetByID(id) }

func (r *memStores) UpdatePlan(id, tier string, planLimit int) (*entity.Store, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	s.Plan = tier
	s.PlanLimit = planLimit
	cp := *s
	return &cp, nil
}

func (r *memStores) UpdateName(id, name string) error {
	if s, ok := r.byID[id]; ok {
		s.Name = name
	}
	return nil
}

func (r *memStores) List(limit, offset int) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// memTxRunner pasa los mismos repos; el signup en memoria ya es "atómico"
// porque los tests son secuenciales.
type memTxRunner struct {
	profiles *memProfiles
	stores   *memStores
}

func (t *memTxRunner) RunSignup(ctx context.Context, fn func(
	profileRepo repository.ProfileRepository,
	storeRepo repository.StoreRepository,
) error) error {
	return fn(t.profiles, t.stores)
}

func newAuthUC() (*auth.AuthUseCase, *memProfiles, *memStores) {
	profiles := &memProfiles{byID: make(map[string]*entity.Profile)}
	stores := &memStores{byID: make(map[string]*entity.Store)}
	uc := auth.NewAuthUseCase(profiles, stores, &memTxRunner{profiles: profiles, stores: stores}, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "fotostock-test",
	})
	return uc, profiles, stores
}

func signupReq(email, storeName string) dto.SignupRequest {
	return dto.SignupRequest{
		Email:     email,
		Password:  "secreta123",
		FullName:  "Ana Prueba",
		StoreName: storeName,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaTiendaFreeYPerfilOwner(t *testing.T) {
	uc, profiles, stores := newAuthUC()

	out, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Minha Loja Ótima"))
	require.NoError(t, err)

	assert.Equal(t, entity.RoleOwner, out.Profile.Role)
	assert.Equal(t, out.Store.ID, out.Profile.StoreID)
	assert.Equal(t, plan.TierFree, out.Store.Plan)
	assert.Equal(t, plan.CeilingFor(plan.TierFree), out.Store.PlanLimit, "el límite nace de la tabla de planes, nunca suelto")
	assert.Equal(t, "minha-loja-otima", out.Store.Slug)

	// persistidos ambos
	stored, _ := stores.GetByID(out.Store.ID)
	require.NotNil(t, stored)
	assert.Equal(t, out.Profile.ID, stored.OwnerID)
	p, _ := profiles.GetByID(out.Profile.ID)
	require.NotNil(t, p)
	assert.NotEqual(t, "secreta123", p.PasswordHash, "el password nunca se persiste plano")
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Loja A"))
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), signupReq("ana@example.com", "Loja B"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Colisión de slug: la segunda tienda con el mismo nombre recibe sufijo.
func TestSignup_SlugConSufijoAnteColision(t *testing.T) {
	uc, _, _ := newAuthUC()

	first, err := uc.Signup(context.Background(), signupReq("uno@example.com", "Café Central"))
	require.NoError(t, err)
	second, err := uc.Signup(context.Background(), signupReq("dos@example.com", "Café Central"))
	require.NoError(t, err)

	assert.Equal(t, "cafe-central", first.Store.Slug)
	assert.Equal(t, "cafe-central-2", second.Store.Slug)
}

func TestSignup_NombreSinSlugValido(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Signup(context.Background(), signupReq("ana@example.com", "!!!"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConIdentidad(t *testing.T) {
	uc, _, _ := newAuthUC()
	signedUp, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Loja"))
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, signedUp.Profile.ID, out.Profile.ID)

	userID, storeID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.Profile.ID, userID)
	assert.Equal(t, signedUp.Store.ID, storeID)
	assert.Equal(t, entity.RoleOwner, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Loja"))
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_PerfilExistente(t *testing.T) {
	uc, _, _ := newAuthUC()
	signedUp, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Loja"))
	require.NoError(t, err)

	p, err := uc.Resolve(context.Background(), signedUp.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, p.Role)
	assert.Equal(t, signedUp.Store.ID, p.StoreID)
}

// Autenticado pero sin perfil: caso distinguible de un fallo del storage.
func TestResolve_PrincipalNoAprovisionado(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Resolve(context.Background(), "00000000-0000-0000-0000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolve_PrincipalVacio(t *testing.T) {
	uc, _, _ := newAuthUC()
	_, err := uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

// Resolve refleja cambios recientes: tras un cambio de rol por admin, la
// próxima resolución ya ve el rol nuevo (no hay cache de sesión).
func TestResolve_VeCambiosDeRol(t *testing.T) {
	uc, profiles, _ := newAuthUC()
	signedUp, err := uc.Signup(context.Background(), signupReq("ana@example.com", "Loja"))
	require.NoError(t, err)

	require.NoError(t, profiles.UpdateRole(signedUp.Profile.ID, entity.RoleManager))

	p, err := uc.Resolve(context.Background(), signedUp.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, p.Role)
}
