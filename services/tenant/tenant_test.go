package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	tenantRepo "davi/database/repository/tenant"
	"davi/models"
	"davi/utils"
)

type fakeTenantRepo struct {
	tenants    map[string]*models.Tenant // by id
	tokenHash  map[string]string         // id -> last stored hash
	qual       *models.QualificationConfig
	class      *models.ClassificationConfig
	settingsID string
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*models.Tenant{}, tokenHash: map[string]string{}}
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	if t, ok := f.tenants[id]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrNotFound
}

func (f *fakeTenantRepo) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, tenantRepo.ErrNotFound
}

func (f *fakeTenantRepo) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.Phone == phone {
			return t, nil
		}
	}
	return nil, tenantRepo.ErrNotFound
}

func (f *fakeTenantRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Tenant, error) {
	for id, h := range f.tokenHash {
		if h == tokenHash {
			return f.tenants[id], nil
		}
	}
	return nil, tenantRepo.ErrNotFound
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	if _, ok := f.tenants[id]; !ok {
		return tenantRepo.ErrNotFound
	}
	f.tokenHash[id] = tokenHash
	return nil
}

func (f *fakeTenantRepo) UpdateSettings(ctx context.Context, id string, qual *models.QualificationConfig, class *models.ClassificationConfig) error {
	if _, ok := f.tenants[id]; !ok {
		return tenantRepo.ErrNotFound
	}
	f.settingsID = id
	f.qual = qual
	f.class = class
	return nil
}

func seedAccount(t *testing.T, repo *fakeTenantRepo, password string) *models.Tenant {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	acc := &models.Tenant{
		ID:           "t1",
		Name:         "Dra. Ana Ribeiro",
		Email:        "ana@demo.contabil.br",
		Phone:        "+5511999990000",
		PasswordHash: string(hash),
	}
	repo.tenants[acc.ID] = acc
	return acc
}

func init() {
	// A dead client keeps session caching a silent no-op in tests; the cache
	// path swallows transport errors.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func TestAuthenticateIssuesToken(t *testing.T) {
	repo := newFakeTenantRepo()
	seedAccount(t, repo, "demo1234")
	svc := &DefaultTenantService{Repo: repo}

	acc, token, err := svc.Authenticate(context.Background(), "ana@demo.contabil.br", "demo1234")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if repo.tokenHash[acc.ID] != utils.HashToken(token) {
		t.Fatal("stored token hash does not match issued token")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newFakeTenantRepo()
	seedAccount(t, repo, "demo1234")
	svc := &DefaultTenantService{Repo: repo}

	if _, _, err := svc.Authenticate(context.Background(), "ana@demo.contabil.br", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Authenticate(context.Background(), "nobody@demo.contabil.br", "demo1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	repo := newFakeTenantRepo()
	seedAccount(t, repo, "demo1234")
	svc := &DefaultTenantService{Repo: repo}

	settings, err := svc.GetSettings(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Classification == nil || settings.Classification.Tier1 == "" {
		t.Fatalf("expected default classification tiers, got %+v", settings.Classification)
	}
	if settings.Questions == nil {
		t.Fatal("questions must never be nil")
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	repo := newFakeTenantRepo()
	seedAccount(t, repo, "demo1234")
	svc := &DefaultTenantService{Repo: repo}
	ctx := context.Background()

	if err := svc.UpdateSettings(ctx, "t1", models.TenantSettings{Questions: []string{"", ""}}); err == nil {
		t.Fatal("expected error for empty questions")
	}
	if err := svc.UpdateSettings(ctx, "t1", models.TenantSettings{
		Classification: &models.ClassificationConfig{Tier1: "a", Tier2: "b", Tier3: "c"},
	}); err == nil {
		t.Fatal("expected error for missing tier4")
	}
	if err := svc.UpdateSettings(ctx, "t1", models.TenantSettings{}); err == nil {
		t.Fatal("expected error for empty update")
	}

	if err := svc.UpdateSettings(ctx, "t1", models.TenantSettings{
		Questions: []string{"Qual o faturamento mensal?", ""},
	}); err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	if repo.qual == nil || len(repo.qual.Questions) != 1 {
		t.Fatalf("expected one cleaned question stored, got %+v", repo.qual)
	}
}
