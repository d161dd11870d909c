package user

import (
	"context"
	"strings"
	"testing"

	"homestay/models"
	"homestay/policy"
	"homestay/services/booking"
	"homestay/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return utils.NewDuplicateKeyError("This email is already registered")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("user", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.NewNotFoundError("user", email)
}

func (r *fakeUserRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return utils.NewNotFoundError("user", id)
	}
	delete(r.users, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile // keyed by userId
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.NewNotFoundError("profile", userID)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	delete(r.profiles, userID)
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]*models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string]*models.Favorite{}}
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, f *models.Favorite) error {
	cp := *f
	r.favorites[f.ID] = &cp
	return nil
}

func (r *fakeFavoriteRepo) GetByUserAndListing(ctx context.Context, userID, listingID string) (*models.Favorite, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.ListingID == listingID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, utils.NewNotFoundError("favorite", listingID)
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.favorites[id]; !ok {
		return utils.NewNotFoundError("favorite", id)
	}
	delete(r.favorites, id)
	return nil
}

func (r *fakeFavoriteRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	var removed int64
	for id, f := range r.favorites {
		if f.UserID == userID {
			delete(r.favorites, id)
			removed++
		}
	}
	return removed, nil
}

// lifecycleStub records cascade calls without touching any store.
type lifecycleStub struct {
	cascaded []string
	err      error
}

func (f *lifecycleStub) Create(ctx context.Context, actor policy.Principal, input booking.CreateInput) (*models.Booking, error) {
	return nil, nil
}

func (f *lifecycleStub) Accept(ctx context.Context, actor policy.Principal, bookingID string, input booking.AcceptInput) (*models.Booking, error) {
	return nil, nil
}

func (f *lifecycleStub) Advance(ctx context.Context, actor policy.Principal, bookingID, nextStatus string) (*models.Booking, error) {
	return nil, nil
}

func (f *lifecycleStub) AttachReview(ctx context.Context, actor policy.Principal, bookingID string, ratingValue int, comment string) (*models.Review, error) {
	return nil, nil
}

func (f *lifecycleStub) RemoveReview(ctx context.Context, actor policy.Principal, reviewID string) error {
	return nil
}

func (f *lifecycleStub) GetByID(ctx context.Context, actor policy.Principal, bookingID string) (*models.Booking, error) {
	return nil, nil
}

func (f *lifecycleStub) CascadeDeleteUser(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.cascaded = append(f.cascaded, userID)
	return nil
}

type userTestEnv struct {
	svc       *DefaultUserService
	users     *fakeUserRepo
	profiles  *fakeProfileRepo
	favorites *fakeFavoriteRepo
	lifecycle *lifecycleStub
}

func newUserTestEnv() *userTestEnv {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	favorites := newFakeFavoriteRepo()
	lifecycle := &lifecycleStub{}

	return &userTestEnv{
		svc: &DefaultUserService{
			Repo:      users,
			Profiles:  profiles,
			Favorites: favorites,
			Lifecycle: lifecycle,
		},
		users:     users,
		profiles:  profiles,
		favorites: favorites,
		lifecycle: lifecycle,
	}
}

func TestRegister(t *testing.T) {
	env := newUserTestEnv()

	created, err := env.svc.Register(context.Background(), RegisterInput{
		Name:     "Jane",
		Email:    "Jane@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", created.Email, "email is stored lowercased")
	assert.Equal(t, models.RoleCustomer, created.Role, "role defaults to customer")
	assert.True(t, created.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	profile, err := env.profiles.GetByUserID(context.Background(), created.ID)
	require.NoError(t, err, "a profile is auto-created at signup")
	assert.Equal(t, "Jane", profile.Name)
}

func TestRegisterValidation(t *testing.T) {
	env := newUserTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "secret123"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "bad email: %v", err)

	_, err = env.svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "short"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "short password: %v", err)

	_, err = env.svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "secret123", Role: "superuser"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "bad role: %v", err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newUserTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, RegisterInput{Email: "JANE@example.com", Password: "secret456"})
	require.True(t, utils.IsCode(err, utils.CodeDuplicateKey), "got %v", err)
	assert.Equal(t, "This email is already registered", utils.AsAppError(err).Message)
}

func TestDeleteCascades(t *testing.T) {
	env := newUserTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	env.favorites.favorites["f1"] = &models.Favorite{ID: "f1", UserID: created.ID, ListingID: "l1"}

	actor := policy.Principal{ID: created.ID, Role: models.RoleCustomer}
	require.NoError(t, env.svc.Delete(ctx, actor, created.ID))

	assert.Equal(t, []string{created.ID}, env.lifecycle.cascaded)
	_, err = env.profiles.GetByUserID(ctx, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Empty(t, env.favorites.favorites)
	_, err = env.users.GetByID(ctx, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestDeleteAuthorization(t *testing.T) {
	env := newUserTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	stranger := policy.Principal{ID: "someone-else", Role: models.RoleCustomer}
	err = env.svc.Delete(ctx, stranger, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)

	admin := policy.Principal{ID: "admin-1", Role: models.RoleAdmin}
	assert.NoError(t, env.svc.Delete(ctx, admin, created.ID))
}

func TestToggleFavorite(t *testing.T) {
	env := newUserTestEnv()
	ctx := context.Background()
	actor := policy.Principal{ID: "u1", Role: models.RoleCustomer}

	saved, err := env.svc.ToggleFavorite(ctx, actor, "l1")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = env.svc.ToggleFavorite(ctx, actor, "l1")
	require.NoError(t, err)
	assert.False(t, saved, "second toggle removes the favorite")

	list, err := env.favorites.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
