package handler

import (
	"html/template"
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/markdown"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
)

const excerptLength = 160

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	Markdown  *markdown.Renderer
	APIClient *apiclient.APIClient
}

func New(templates map[string]*template.Template, publicCfg config.Public, renderer *markdown.Renderer, apiClient *apiclient.APIClient) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		Markdown:  renderer,
		APIClient: apiClient,
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
