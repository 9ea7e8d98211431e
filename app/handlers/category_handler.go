package handlers

import (
	"net/http"

	"github.com/cookingblog/go-cookingblog/app/helpers"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render  *render.Render
	service services.RecipeServiceImpl
}

func NewCategoryHandler(r *render.Render, s services.RecipeServiceImpl) *CategoryHandler {
	return &CategoryHandler{render: r, service: s}
}

func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.CategoriesIndex(r.Context())
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "categories", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      helpers.PageTitle("Categories"),
		"Categories": categories,
	}))
}

// CategoryByID lists recipes for one category. The path id is the
// category label itself; a label nobody uses renders an empty list.
func (h *CategoryHandler) CategoryByID(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["id"]

	recipes, err := h.service.CategoryDetail(r.Context(), label)
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "categories", helpers.GetBaseData(r, map[string]interface{}{
		"Title":    helpers.PageTitle("Categories"),
		"Category": label,
		"Recipes":  recipes,
	}))
}
