package credentials

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

type Repository interface {
	SelectByUser(ctx context.Context, userID string) ([]*models.Credential, error)
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error
	Delete(ctx context.Context, id, userID string) error
}
