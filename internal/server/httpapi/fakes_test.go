package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- fakes ----

type fakeUserSvc struct {
	regOut *models.User
	regErr error

	loginOut string
	loginErr error
}

func (f *fakeUserSvc) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	return f.regOut, nil
}

func (f *fakeUserSvc) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginOut, f.loginErr
}

type fakeCredSvc struct {
	listOut []*models.Credential
	listErr error

	createOut *models.Credential
	createErr error

	updateErr  error
	lastUpdate *models.CredentialUpdate

	deleteErr error

	lastUserID string
	lastID     string
}

func (f *fakeCredSvc) List(ctx context.Context, userID string) ([]*models.Credential, error) {
	f.lastUserID = userID
	return f.listOut, f.listErr
}

func (f *fakeCredSvc) Create(ctx context.Context, userID, appName, username, secret string) (*models.Credential, error) {
	f.lastUserID = userID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeCredSvc) Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error {
	f.lastID, f.lastUserID, f.lastUpdate = id, userID, upd
	if upd == nil || upd.Empty() {
		return common.ErrValidation
	}
	return f.updateErr
}

func (f *fakeCredSvc) Delete(ctx context.Context, id, userID string) error {
	f.lastID, f.lastUserID = id, userID
	return f.deleteErr
}

// ---- helpers ----

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddr:            "127.0.0.1:0",
		SessionSecret:           "test-session-secret",
		SessionValidityDuration: time.Hour,
		EncryptionKey:           "test-encryption-key",
	}
}

func newTestServer(us userService, cs credentialService) *Server {
	return NewServer(testConfig(), nopLogger{}, us, cs)
}
