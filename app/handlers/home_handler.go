package handlers

import (
	"net/http"

	"github.com/cookingblog/go-cookingblog/app/helpers"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render  *render.Render
	service services.RecipeServiceImpl
}

func NewHomeHandler(r *render.Render, s services.RecipeServiceImpl) *HomeHandler {
	return &HomeHandler{render: r, service: s}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Homepage(r.Context())
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      helpers.PageTitle("Home"),
		"Categories": data.Categories,
		"Latest":     data.Latest,
		"Featured":   data.Featured,
	}))
}
