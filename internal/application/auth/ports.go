package auth

import (
	"context"

	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El signup crea tienda + perfil owner de
// forma atómica: o existen ambos o ninguno.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		profileRepo repository.ProfileRepository,
		storeRepo repository.StoreRepository,
	) error) error
}
