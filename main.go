package main

import (
	"log"
	"net/http"
	"os"

	"github.com/cookingblog/go-cookingblog/app/cmd"
	"github.com/cookingblog/go-cookingblog/app/configs"
	"github.com/cookingblog/go-cookingblog/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing. Run `generate-keys` first:", err)
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("server stopped:", err)
	}
}
