package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

type UserAPI struct{ c *APIClient }

// GetProfile needs a valid token; without one the backend answers 401.
func (a *UserAPI) GetProfile(ctx context.Context) (*api.Response[domain.User], error) {
	return get[domain.User](ctx, a.c, "/user/profile", nil)
}

// AdminAPI manages accounts. Every call needs an admin token.
type AdminAPI struct{ c *APIClient }

func (a *AdminAPI) ListUsers(ctx context.Context) (*api.Response[[]domain.User], error) {
	return get[[]domain.User](ctx, a.c, "/admin/users", nil)
}

func (a *AdminAPI) CreateAdmin(ctx context.Context, data api.RegisterRequest) (*api.Response[domain.User], error) {
	return post[domain.User](ctx, a.c, "/admin/users/create-admin", data)
}

func (a *AdminAPI) UpdateRole(ctx context.Context, id domain.UserId, role string) (*api.Response[domain.User], error) {
	path := "/admin/users/" + strconv.FormatInt(id, 10) + "/role"
	return call[domain.User](ctx, a.c, http.MethodPut, path, url.Values{"role": {role}}, nil)
}

func (a *AdminAPI) DeleteUser(ctx context.Context, id domain.UserId) (*api.Response[api.Empty], error) {
	return call[api.Empty](ctx, a.c, http.MethodDelete, "/admin/users/"+strconv.FormatInt(id, 10), nil, nil)
}
