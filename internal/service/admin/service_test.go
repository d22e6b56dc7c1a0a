package admin

import (
	"context"
	"strconv"
	"testing"

	"github.com/li-cell/election-backend-go/internal/domain/role"
	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRoleRepo struct {
	roles map[string]role.Role
	seq   int
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string]role.Role)}
}

func (f *fakeRoleRepo) Create(ctx context.Context, r role.Role) (role.Role, error) {
	f.seq++
	r.ID = "role-" + strconv.Itoa(f.seq)
	f.roles[r.ID] = r
	return r, nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (role.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) List(ctx context.Context) ([]role.Role, error) {
	out := make([]role.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	r, ok := f.roles[id]
	if !ok {
		return role.ErrRoleNotFound
	}
	if v, ok := fields["name"].(string); ok {
		r.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		r.Description = v
	}
	if v, ok := fields["permissions"].([]string); ok {
		r.Permissions = v
	}
	f.roles[id] = r
	return nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.roles[id]; !ok {
		return role.ErrRoleNotFound
	}
	delete(f.roles, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]user.AppUser
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.AppUser)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.AppUser) (user.AppUser, error) {
	f.seq++
	u.ID = "user-" + strconv.Itoa(f.seq)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.AppUser, error) {
	u, ok := f.users[id]
	if !ok {
		return user.AppUser{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.AppUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.AppUser{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.AppUser, error) {
	out := make([]user.AppUser, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if v, ok := fields["displayName"].(string); ok {
		u.DisplayName = v
	}
	if v, ok := fields["password"].(string); ok {
		u.PasswordHash = v
	}
	if v, ok := fields["roleId"].(string); ok {
		u.RoleID = v
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestService() (AdminService, *fakeRoleRepo, *fakeUserRepo) {
	roleRepo := newFakeRoleRepo()
	userRepo := newFakeUserRepo()
	svc := NewAdminService(roleRepo, userRepo, jwt.NewJWTService("test-secret", "1h"))
	return svc, roleRepo, userRepo
}

func TestCreateRole_RejectsDuplicateName(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRole(context.Background(), role.CreateRoleRequest{Name: "অপারেটর"})
	require.NoError(t, err)

	_, err = svc.CreateRole(context.Background(), role.CreateRoleRequest{Name: "অপারেটর"})
	assert.ErrorIs(t, err, role.ErrRoleNameExists)
}

func TestUpdateRole_PatchesOnlyProvidedFields(t *testing.T) {
	svc, roleRepo, _ := newTestService()

	created, err := svc.CreateRole(context.Background(), role.CreateRoleRequest{
		Name:        "অপারেটর",
		Description: "ফলাফল এন্ট্রি",
		Permissions: []string{"results:write"},
	})
	require.NoError(t, err)

	name := "সুপারভাইজার"
	require.NoError(t, svc.UpdateRole(context.Background(), role.UpdateRoleRequest{
		ID:   created.ID,
		Name: &name,
	}))

	updated := roleRepo.roles[created.ID]
	assert.Equal(t, "সুপারভাইজার", updated.Name)
	assert.Equal(t, "ফলাফল এন্ট্রি", updated.Description)
	assert.Equal(t, []string{"results:write"}, updated.Permissions)
}

func TestCreateUser_HashesPasswordAndChecksEmail(t *testing.T) {
	svc, _, userRepo := newTestService()

	created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	stored := userRepo.users[created.ID]
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))

	_, err = svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "করিম মিয়া",
		Email:       "rahim@example.com",
		Password:    "another-pass",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "s3cret-pass",
		RoleID:      "missing",
	})
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestCreateUser_RejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "short",
	})
	assert.Error(t, err)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	svc, _, userRepo := newTestService()

	created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	next := "n3w-password"
	require.NoError(t, svc.UpdateUser(context.Background(), user.UpdateUserRequest{
		ID:       created.ID,
		Password: &next,
	}))

	stored := userRepo.users[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(next)))
}

func TestLogin_IssuesTokenWithAdminClaim(t *testing.T) {
	svc, _, _ := newTestService()

	adminRole, err := svc.CreateRole(context.Background(), role.CreateRoleRequest{
		Name:        "প্রশাসক",
		Permissions: []string{role.PermissionAdmin},
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "s3cret-pass",
		RoleID:      adminRole.ID,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "rahim@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.True(t, resp.IsAdmin)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "rahim@example.com", resp.User.Email)
}

func TestLogin_NonAdminRole(t *testing.T) {
	svc, _, _ := newTestService()

	operator, err := svc.CreateRole(context.Background(), role.CreateRoleRequest{
		Name:        "অপারেটর",
		Permissions: []string{"results:write"},
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "করিম মিয়া",
		Email:       "karim@example.com",
		Password:    "s3cret-pass",
		RoleID:      operator.ID,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "karim@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		DisplayName: "রহিম উদ্দিন",
		Email:       "rahim@example.com",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "rahim@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
