package user

import (
	"context"
	"testing"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/dto"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	count   int64

	created        *model.User
	createdProfile *model.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User, profile *model.Profile) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.created = user
	f.createdProfile = profile
	f.count++
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User, profile *model.Profile) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) { return f.count, nil }

func TestRegisterGrantsEarlyAdopterWhileSeatsRemain(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Asha", Email: "asha@devpath.in", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)

	require.NotNil(t, repo.createdProfile)
	assert.Contains(t, []string(repo.createdProfile.Achievements), badgeService.EarlyAdopter)
}

func TestRegisterNoEarlyAdopterOnceSeatsFilled(t *testing.T) {
	repo := newFakeUserRepo()
	repo.count = 100 // default seat limit reached

	svc := NewAuthService(repo, "test-secret")
	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Late", Email: "late@devpath.in", Password: "secret123",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.createdProfile)
	assert.Empty(t, []string(repo.createdProfile.Achievements))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["asha@devpath.in"] = &model.User{Email: "asha@devpath.in"}

	svc := NewAuthService(repo, "test-secret")
	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Asha", Email: "asha@devpath.in", Password: "secret123",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeUserRepo()
	repo.byEmail["asha@devpath.in"] = &model.User{
		ID:           uuid.New(),
		Email:        "asha@devpath.in",
		PasswordHash: string(hashed),
	}
	svc := NewAuthService(repo, "test-secret")

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "asha@devpath.in", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.PasswordHash)

	_, err = svc.Login(context.Background(), dto.LoginInput{Email: "asha@devpath.in", Password: "wrong"})
	require.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginInput{Email: "ghost@devpath.in", Password: "secret123"})
	require.Error(t, err)
}
