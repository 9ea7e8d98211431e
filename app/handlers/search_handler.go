package handlers

import (
	"net/http"

	"github.com/cookingblog/go-cookingblog/app/helpers"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	render  *render.Render
	service services.RecipeServiceImpl
}

func NewSearchHandler(r *render.Render, s services.RecipeServiceImpl) *SearchHandler {
	return &SearchHandler{render: r, service: s}
}

// Search takes the raw form term as-is: no minimum length, no
// sanitization. An empty result set is a normal page, not an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}
	term := r.PostFormValue("searchTerm")

	recipes, err := h.service.SearchRecipes(r.Context(), term)
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "search", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      helpers.PageTitle("Search"),
		"SearchTerm": term,
		"Recipes":    recipes,
	}))
}
