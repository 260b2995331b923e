package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/apopescu/daily-journal/internal/config"
	"github.com/apopescu/daily-journal/internal/database"
	"github.com/apopescu/daily-journal/internal/handlers"
	"github.com/apopescu/daily-journal/internal/middleware"
	"github.com/apopescu/daily-journal/internal/routes"
	"github.com/apopescu/daily-journal/internal/services"
	"github.com/apopescu/daily-journal/internal/views"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET not set; session cookies are signed with an empty key")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Google sign-in credentials not set; /auth/google will redirect to the login page")
	}

	log.Println("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect()

	log.Println("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer database.DisconnectRedis()

	userService := services.NewUserService(database.NewUsers(database.DB))
	postService := services.NewPostService(database.NewPosts(database.DB))
	sessionService := services.NewSessionService(database.NewRedisKV(database.RedisClient), cfg.SessionSecret)

	h := handlers.New(userService, postService, sessionService, views.New(), handlers.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Session(sessionService, userService))

	routes.Setup(r, h)

	log.Printf("Server started on port %s.", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
