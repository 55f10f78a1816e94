package apiclient

import (
	"context"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

type FeedbackAPI struct{ c *APIClient }

func (a *FeedbackAPI) GetAll(ctx context.Context) (*api.Response[[]domain.Feedback], error) {
	return get[[]domain.Feedback](ctx, a.c, "/feedback", nil)
}

// Create submits a review. Rating bounds are the backend's call; an out of
// range rating comes back as success:false, not as an error.
func (a *FeedbackAPI) Create(ctx context.Context, data api.CreateFeedbackRequest) (*api.Response[domain.Feedback], error) {
	return post[domain.Feedback](ctx, a.c, "/feedback", data)
}

func (a *FeedbackAPI) GetAverageRating(ctx context.Context) (*api.Response[float64], error) {
	return get[float64](ctx, a.c, "/feedback/average-rating", nil)
}

type ContactAPI struct{ c *APIClient }

func (a *ContactAPI) GetInfo(ctx context.Context) (*api.Response[domain.ContactInfo], error) {
	return get[domain.ContactInfo](ctx, a.c, "/contact", nil)
}

func (a *ContactAPI) SubmitForm(ctx context.Context, data api.ContactFormRequest) (*api.Response[api.Empty], error) {
	return post[api.Empty](ctx, a.c, "/contact", data)
}
