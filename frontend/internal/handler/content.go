package handler

import (
	"net/http"
	"strings"

	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MenuGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.MenuPageData{Selected: strings.TrimSpace(r.URL.Query().Get("category"))}

	resp, err := h.APIClient.Menu.GetAll(r.Context())
	logBackendError("fetching menu", err)
	items, errMsg := result(resp, err)
	data.Categories = categories(items, func(m domain.MenuItem) string { return m.Category })
	data.Items = items

	if data.Selected != "" && errMsg == "" {
		resp, err := h.APIClient.Menu.GetByCategory(r.Context(), data.Selected)
		logBackendError("fetching menu category", err)
		data.Items, errMsg = result(resp, err)
	}
	h.renderTemplateWithError(w, r, http.StatusOK, "menu.html", data, errMsg)
}

func (h *Handler) GalleryGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.GalleryPageData{Selected: strings.TrimSpace(r.URL.Query().Get("category"))}

	resp, err := h.APIClient.Gallery.GetAll(r.Context())
	logBackendError("fetching gallery", err)
	images, errMsg := result(resp, err)
	data.Categories = categories(images, func(g domain.GalleryImage) string { return g.Category })
	data.Images = images

	if data.Selected != "" && errMsg == "" {
		resp, err := h.APIClient.Gallery.GetByCategory(r.Context(), data.Selected)
		logBackendError("fetching gallery category", err)
		data.Images, errMsg = result(resp, err)
	}
	h.renderTemplateWithError(w, r, http.StatusOK, "gallery.html", data, errMsg)
}

// BlogGetHandler lists posts, or searches titles with ?q=.
func (h *Handler) BlogGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.BlogListPageData{Query: strings.TrimSpace(r.URL.Query().Get("q"))}

	var (
		posts  []domain.BlogPost
		errMsg string
	)
	if data.Query != "" {
		resp, err := h.APIClient.Blog.Search(r.Context(), data.Query)
		logBackendError("searching blog", err)
		posts, errMsg = result(resp, err)
	} else {
		resp, err := h.APIClient.Blog.GetAll(r.Context())
		logBackendError("fetching blog", err)
		posts, errMsg = result(resp, err)
	}

	data.Posts = make([]frontend_domain.BlogCard, len(posts))
	for i, post := range posts {
		data.Posts[i] = frontend_domain.BlogCard{Post: post, Excerpt: h.Markdown.Excerpt(post, excerptLength)}
	}
	h.renderTemplateWithError(w, r, http.StatusOK, "blog.html", data, errMsg)
}

func (h *Handler) BlogPostGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.renderError(w, r, sharedErrors.NotFound("Post not found"))
		return
	}

	resp, err := h.APIClient.Blog.GetByID(r.Context(), id)
	logBackendError("fetching blog post", err)
	post, errMsg := result(resp, err)
	if errMsg != "" {
		h.renderFetchError(w, r, err, errMsg, "Post not found")
		return
	}
	h.renderTemplate(w, r, "blog_post.html", frontend_domain.BlogPostPageData{
		Post: post,
		Body: h.Markdown.Render(post.Content),
	})
}
