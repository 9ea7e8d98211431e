package helpers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

const siteName = "Cooking Blog"

// GetBaseData fills the keys every template expects. The CSRF field is
// part of the base set because the layout's search form posts on every
// page.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = siteName
	}
	if _, exists := pageSpecificData["Query"]; !exists {
		pageSpecificData["Query"] = r.URL.Query()
	}
	if _, exists := pageSpecificData[csrf.TemplateTag]; !exists {
		pageSpecificData[csrf.TemplateTag] = csrf.TemplateField(r)
	}

	return pageSpecificData
}

// ValidationMessages turns validator errors into notices fit for the
// submission form; the raw validator text stays in the logs.
func ValidationMessages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.Tag() {
		case "required":
			messages = append(messages, err.Field()+" is required.")
		default:
			messages = append(messages, err.Field()+" is invalid.")
		}
	}
	return messages
}

func PageTitle(page string) string {
	return siteName + " - " + page
}

// ServerError reports a read-path failure as a generic 500 payload.
// The caller gets the message and nothing else; no partial page.
func ServerError(rnd *render.Render, w http.ResponseWriter, err error) {
	message := "Error Occurred"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
		"message": message,
	})
}
