package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

// Category filters and blog search run on the backend.

type MenuAPI struct{ c *APIClient }

func (a *MenuAPI) GetAll(ctx context.Context) (*api.Response[[]domain.MenuItem], error) {
	return get[[]domain.MenuItem](ctx, a.c, "/menu", nil)
}

func (a *MenuAPI) GetByID(ctx context.Context, id int64) (*api.Response[domain.MenuItem], error) {
	return get[domain.MenuItem](ctx, a.c, "/menu/"+strconv.FormatInt(id, 10), nil)
}

func (a *MenuAPI) GetByCategory(ctx context.Context, category string) (*api.Response[[]domain.MenuItem], error) {
	return get[[]domain.MenuItem](ctx, a.c, "/menu/category/"+segment(category), nil)
}

type GalleryAPI struct{ c *APIClient }

func (a *GalleryAPI) GetAll(ctx context.Context) (*api.Response[[]domain.GalleryImage], error) {
	return get[[]domain.GalleryImage](ctx, a.c, "/gallery", nil)
}

func (a *GalleryAPI) GetByID(ctx context.Context, id int64) (*api.Response[domain.GalleryImage], error) {
	return get[domain.GalleryImage](ctx, a.c, "/gallery/"+strconv.FormatInt(id, 10), nil)
}

func (a *GalleryAPI) GetByCategory(ctx context.Context, category string) (*api.Response[[]domain.GalleryImage], error) {
	return get[[]domain.GalleryImage](ctx, a.c, "/gallery/category/"+segment(category), nil)
}

type BlogAPI struct{ c *APIClient }

func (a *BlogAPI) GetAll(ctx context.Context) (*api.Response[[]domain.BlogPost], error) {
	return get[[]domain.BlogPost](ctx, a.c, "/blog", nil)
}

func (a *BlogAPI) GetByID(ctx context.Context, id int64) (*api.Response[domain.BlogPost], error) {
	return get[domain.BlogPost](ctx, a.c, "/blog/"+strconv.FormatInt(id, 10), nil)
}

func (a *BlogAPI) Search(ctx context.Context, title string) (*api.Response[[]domain.BlogPost], error) {
	return get[[]domain.BlogPost](ctx, a.c, "/blog/search", url.Values{"title": {title}})
}
