package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/sebuszqo/WalletAPI/internal/db"
	"github.com/sebuszqo/WalletAPI/internal/finance/application"
	"github.com/sebuszqo/WalletAPI/internal/finance/infrastructure"
	"github.com/sebuszqo/WalletAPI/internal/finance/interfaces"
	"github.com/sebuszqo/WalletAPI/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(dbService *database.DBService, userHandler *user.Handler, transactionHandler *interfaces.TransactionHandler) *Server {
	return &Server{
		dbService:          dbService,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Wallet API is running",
	})
}

func (s *Server) handleDBHealth(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondError(w, http.StatusServiceUnavailable, health["error"])
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))
	router.Handle("GET /health/db", http.HandlerFunc(s.handleDBHealth))

	router.Handle("POST /api/users", http.HandlerFunc(s.userHandler.HandleRegister))
	router.Handle("GET /api/users/{email}", http.HandlerFunc(s.userHandler.HandleGetUser))
	router.Handle("GET /api/users", http.HandlerFunc(s.userHandler.HandleGetUsers))

	router.Handle("POST /api/transactions", http.HandlerFunc(s.transactionHandler.CreateTransaction))
	router.Handle("GET /api/transactions", http.HandlerFunc(s.transactionHandler.GetTransactions))
	router.Handle("GET /api/transactions/amount", http.HandlerFunc(s.transactionHandler.GetTransactionSum))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	log.Println("Running database migrations...")
	if err := dbService.RunMigrations(); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, userService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(dbService, userHandler, transactionHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(corsMiddleware(server.router))
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
