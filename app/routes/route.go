package routes

import (
	"net/http"

	"github.com/cookingblog/go-cookingblog/app/configs"
	"github.com/cookingblog/go-cookingblog/app/handlers"
	"github.com/cookingblog/go-cookingblog/app/middlewares"
	"github.com/cookingblog/go-cookingblog/app/repositories"
	"github.com/cookingblog/go-cookingblog/app/services"
	"github.com/cookingblog/go-cookingblog/app/utils/renderer"
	"github.com/cookingblog/go-cookingblog/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) http.Handler {
	rnd := renderer.New("views")

	categoryRepo := repositories.NewCategoryRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	images := services.NewDiskImageStore(env.UploadDir)
	service := services.NewRecipeService(categoryRepo, recipeRepo, images, env.FeaturedCategories)

	flash := sessions.NewCookieFlashStore(keys.AuthKey, keys.EncKey)

	home := handlers.NewHomeHandler(rnd, service)
	category := handlers.NewCategoryHandler(rnd, service)
	explore := handlers.NewExploreHandler(rnd, service)
	search := handlers.NewSearchHandler(rnd, service)
	submit := handlers.NewSubmitHandler(rnd, service, flash)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	router.HandleFunc("/", home.Home).Methods("GET")
	router.HandleFunc("/categories", category.Categories).Methods("GET")
	router.HandleFunc("/categories/{id}", category.CategoryByID).Methods("GET")
	router.HandleFunc("/recipe/{id}", explore.Recipe).Methods("GET")
	router.HandleFunc("/search", search.Search).Methods("POST")
	router.HandleFunc("/explore-latest", explore.Latest).Methods("GET")
	router.HandleFunc("/explore-random", explore.Random).Methods("GET")
	router.HandleFunc("/submit-recipe", submit.SubmitPage).Methods("GET")
	router.HandleFunc("/submit-recipe", submit.SubmitPost).Methods("POST")

	router.PathPrefix("/public/").Handler(
		http.StripPrefix("/public/", http.FileServer(http.Dir("public"))),
	)

	csrfKey := []byte(env.CSRFKey)
	if len(csrfKey) == 0 {
		csrfKey = keys.AuthKey
	}
	csrfProtect := csrf.Protect(csrfKey, csrf.Secure(false))
	return csrfProtect(router)
}
