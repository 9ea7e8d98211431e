package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cookingblog/go-cookingblog/app/helpers"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/cookingblog/go-cookingblog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const maxUploadSize = 32 << 20

type SubmitHandler struct {
	render  *render.Render
	service services.RecipeServiceImpl
	flash   sessions.FlashStore
}

func NewSubmitHandler(r *render.Render, s services.RecipeServiceImpl, f sessions.FlashStore) *SubmitHandler {
	return &SubmitHandler{render: r, service: s, flash: f}
}

// SubmitPage renders the form together with any notices left by the
// previous submission. Popping the notices clears them.
func (h *SubmitHandler) SubmitPage(w http.ResponseWriter, r *http.Request) {
	submits, errNotices := h.flash.PopNotices(w, r)

	_ = h.render.HTML(w, http.StatusOK, "submit-recipe", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      helpers.PageTitle("Submit Recipe"),
		"InfoSubmit": submits,
		"InfoErrors": errNotices,
	}))
}

// SubmitPost runs the submission workflow. Success and failure both
// redirect back to the form; the difference is which notice the next
// render shows. Failures stay user-recoverable, never a 500.
func (h *SubmitHandler) SubmitPost(w http.ResponseWriter, r *http.Request) {
	form, upload, err := parseSubmitForm(r)
	if err != nil {
		log.Printf("SubmitPost: failed to parse form: %v", err)
		h.redirectWithError(w, r, err)
		return
	}

	if _, err := h.service.Submit(r.Context(), form, upload); err != nil {
		log.Printf("SubmitPost: submission failed: %v", err)
		h.redirectWithError(w, r, err)
		return
	}

	if err := h.flash.AddSubmitNotice(w, r, "Recipe has been added."); err != nil {
		log.Printf("SubmitPost: failed to set notice: %v", err)
	}
	http.Redirect(w, r, "/submit-recipe", http.StatusSeeOther)
}

func (h *SubmitHandler) redirectWithError(w http.ResponseWriter, r *http.Request, cause error) {
	for _, notice := range errorNotices(cause) {
		if err := h.flash.AddErrorNotice(w, r, notice); err != nil {
			log.Printf("SubmitPost: failed to set error notice: %v", err)
		}
	}
	http.Redirect(w, r, "/submit-recipe", http.StatusSeeOther)
}

// errorNotices picks what the user gets to see. Validation failures
// become per-field messages; everything else shows its error text.
func errorNotices(cause error) []string {
	var validationErrs validator.ValidationErrors
	if errors.As(cause, &validationErrs) {
		return helpers.ValidationMessages(validationErrs)
	}
	return []string{cause.Error()}
}

// parseSubmitForm accepts multipart posts (the normal form) as well as
// plain urlencoded ones without a file field.
func parseSubmitForm(r *http.Request) (services.SubmitRecipeForm, *services.RecipeUpload, error) {
	var upload *services.RecipeUpload

	err := r.ParseMultipartForm(maxUploadSize)
	switch {
	case err == nil:
		file, header, ferr := r.FormFile("image")
		if ferr == nil {
			upload = &services.RecipeUpload{Filename: header.Filename, File: file}
		} else if !errors.Is(ferr, http.ErrMissingFile) {
			return services.SubmitRecipeForm{}, nil, ferr
		}
	case errors.Is(err, http.ErrNotMultipart):
		if perr := r.ParseForm(); perr != nil {
			return services.SubmitRecipeForm{}, nil, perr
		}
	default:
		return services.SubmitRecipeForm{}, nil, err
	}

	// Multipart values land in r.Form, urlencoded ones in both; read
	// from r.Form so either encoding works.
	form := services.SubmitRecipeForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Email:       r.FormValue("email"),
		Ingredients: r.Form["ingredients"],
		Category:    r.FormValue("category"),
	}
	return form, upload, nil
}
