package handlers

import (
	"net/http"
	"strconv"

	"github.com/cookingblog/go-cookingblog/app/helpers"
	"github.com/cookingblog/go-cookingblog/app/models"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ExploreHandler struct {
	render  *render.Render
	service services.RecipeServiceImpl
}

func NewExploreHandler(r *render.Render, s services.RecipeServiceImpl) *ExploreHandler {
	return &ExploreHandler{render: r, service: s}
}

// Recipe shows a single recipe. Unknown and malformed ids both render
// the page with no recipe; the template handles the absence.
func (h *ExploreHandler) Recipe(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	var recipe *models.Recipe
	if id, err := strconv.ParseUint(idStr, 10, 32); err == nil {
		recipe, err = h.service.RecipeDetail(r.Context(), uint(id))
		if err != nil {
			helpers.ServerError(h.render, w, err)
			return
		}
	}

	_ = h.render.HTML(w, http.StatusOK, "recipe", helpers.GetBaseData(r, map[string]interface{}{
		"Title":  helpers.PageTitle("Recipe"),
		"Recipe": recipe,
	}))
}

func (h *ExploreHandler) Latest(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.Latest(r.Context())
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "explore-latest", helpers.GetBaseData(r, map[string]interface{}{
		"Title":   helpers.PageTitle("Explore Latest"),
		"Recipes": recipes,
	}))
}

func (h *ExploreHandler) Random(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.service.Random(r.Context())
	if err != nil {
		helpers.ServerError(h.render, w, err)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "explore-random", helpers.GetBaseData(r, map[string]interface{}{
		"Title":  helpers.PageTitle("Explore Random"),
		"Recipe": recipe,
	}))
}
