package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
)

// CredentialService is the gateway for credential records. It enforces
// owner scoping on every operation and converts secrets between plaintext
// (wire) and ciphertext (store) with the injected cipher. Ownership is never
// checked with a separate fetch: the repository scopes each statement by
// both id and owner, so one storage call authorizes and performs the
// operation.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      *cryptox.Cipher
}

// NewCredentialService constructs a CredentialService.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cipher *cryptox.Cipher) *CredentialService {
	return &CredentialService{db: db, repomanager: m, cipher: cipher}
}

// List returns all credentials owned by userID with secrets decrypted.
func (s *CredentialService) List(ctx context.Context, userID string) ([]*models.Credential, error) {
	repo := s.repomanager.Credentials(s.db)
	items, err := repo.SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error selecting credentials: %w", err)
	}

	for _, item := range items {
		plaintext, err := s.cipher.Decrypt(item.Secret)
		if err != nil {
			return nil, fmt.Errorf("error decrypting credential %s: %w", item.ID, err)
		}
		item.Secret = plaintext
	}

	return items, nil
}

// Create validates the fields, encrypts the secret, and persists a new
// record. The returned record carries the original plaintext secret: the
// caller already has it, so a decrypt round-trip would be redundant.
func (s *CredentialService) Create(ctx context.Context, userID, appName, username, secret string) (*models.Credential, error) {
	if appName == "" || username == "" || secret == "" {
		return nil, common.ErrValidation
	}

	ciphertext, err := s.cipher.Encrypt(secret)
	if err != nil {
		return nil, fmt.Errorf("error encrypting secret: %w", err)
	}

	cred := &models.Credential{
		UserID:   userID,
		AppName:  appName,
		Username: username,
		Secret:   ciphertext,
	}

	repo := s.repomanager.Credentials(s.db)
	created, err := repo.Create(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	created.Secret = secret
	return created, nil
}

// Update applies a partial update scoped by id and owner. An empty update
// yields common.ErrValidation without touching the store; a supplied secret
// is re-encrypted first. A missing record or an owner mismatch both yield
// common.ErrNotFound.
func (s *CredentialService) Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error {
	if upd == nil || upd.Empty() {
		return common.ErrValidation
	}

	if upd.Secret != nil {
		ciphertext, err := s.cipher.Encrypt(*upd.Secret)
		if err != nil {
			return fmt.Errorf("error encrypting secret: %w", err)
		}
		upd = &models.CredentialUpdate{
			AppName:  upd.AppName,
			Username: upd.Username,
			Secret:   &ciphertext,
		}
	}

	repo := s.repomanager.Credentials(s.db)
	return repo.Update(ctx, id, userID, upd)
}

// Delete removes a credential scoped by id and owner. A missing record or an
// owner mismatch both yield common.ErrNotFound.
func (s *CredentialService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repomanager.Credentials(s.db)
	return repo.Delete(ctx, id, userID)
}
