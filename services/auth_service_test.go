package services

import (
	"context"
	"strings"
	"testing"

	"style-shop/config"
	"style-shop/models"
	"style-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	m.Run()
}

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[int]*models.User), nextID: 1}
	for _, u := range users {
		store.users[u.ID] = u
		if u.ID >= store.nextID {
			store.nextID = u.ID + 1
		}
	}
	return store
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	user := f.users[id]
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	return user, nil
}

func (f *fakeUserStore) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	f.users[id].Avatar = avatarURL
	return nil
}

func signupRequest() models.SignupRequest {
	return models.SignupRequest{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "correct-horse",
		FirstName: "Jordan",
		LastName:  "Doe",
		Phone:     "555-0101",
	}
}

func TestSignup_CreatesUserWithHashedPassword(t *testing.T) {
	store := newFakeUserStore()
	service := &AuthService{userStore: store}

	user, err := service.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "correct-horse", user.Password)

	valid, err := utils.VerifyPassword(user.Password, "correct-horse")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	store := newFakeUserStore()
	service := &AuthService{userStore: store}
	ctx := context.Background()

	_, err := service.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, err = service.Signup(ctx, signupRequest())
	appErr := requireKind(t, err, models.KindConflict)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestSignin_ReturnsTokenForValidCredentials(t *testing.T) {
	store := newFakeUserStore()
	service := &AuthService{userStore: store}
	ctx := context.Background()

	_, err := service.Signup(ctx, signupRequest())
	require.NoError(t, err)

	resp, err := service.Signin(ctx, models.SigninRequest{Email: "jdoe@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "jdoe@example.com", resp.User.Email)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "jdoe@example.com", claims.Email)
}

func TestSignin_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	service := &AuthService{userStore: store}
	ctx := context.Background()

	_, err := service.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, err = service.Signin(ctx, models.SigninRequest{Email: "nobody@example.com", Password: "correct-horse"})
	appErr := requireKind(t, err, models.KindAuth)
	assert.Equal(t, "Invalid email or password", appErr.Message)

	_, err = service.Signin(ctx, models.SigninRequest{Email: "jdoe@example.com", Password: "wrong-password"})
	appErr = requireKind(t, err, models.KindAuth)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}
