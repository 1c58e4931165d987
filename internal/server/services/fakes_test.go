package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	credsrepo "github.com/dmitrijs2005/passkeeper/internal/server/repositories/credentials"
	usersrepo "github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
)

// --- fakes shared by the service tests ---

type fakeUsersRepo struct {
	createdUser *models.User
	createErr   error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createdUser != nil {
		return f.createdUser, nil
	}
	u.ID = "u1"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeCredentialsRepo struct {
	selectOut []*models.Credential
	selectErr error

	createErr   error
	lastCreated *models.Credential

	updateErr  error
	lastUpdate *models.CredentialUpdate
	updateN    int

	deleteErr error
	deleteN   int
}

func (f *fakeCredentialsRepo) SelectByUser(ctx context.Context, userID string) ([]*models.Credential, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.selectOut, nil
}

func (f *fakeCredentialsRepo) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	f.lastCreated = cred
	if f.createErr != nil {
		return nil, f.createErr
	}
	cred.ID = "c1"
	return cred, nil
}

func (f *fakeCredentialsRepo) Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error {
	f.updateN++
	f.lastUpdate = upd
	return f.updateErr
}

func (f *fakeCredentialsRepo) Delete(ctx context.Context, id, userID string) error {
	f.deleteN++
	return f.deleteErr
}

type fakeRepoManager struct {
	users       *fakeUsersRepo
	credentials *fakeCredentialsRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return f.users }

func (f *fakeRepoManager) Credentials(db dbx.DBTX) credsrepo.Repository { return f.credentials }
