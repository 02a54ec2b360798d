package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/finware/FinanceTracker/db"
	"github.com/finware/FinanceTracker/internal/auth"
	"github.com/finware/FinanceTracker/internal/finance/application"
	"github.com/finware/FinanceTracker/internal/finance/infrastructure"
	"github.com/finware/FinanceTracker/internal/finance/interfaces"
	"github.com/finware/FinanceTracker/internal/user"
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
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	accountHandler     *interfaces.AccountHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	summaryHandler     *interfaces.SummaryHandler
	dbService          *database.DBService
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

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	withAuth := s.authService.JWTAccessTokenMiddleware()
	protectedRoutes := http.NewServeMux()

	protectedRoutes.Handle("GET /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))

	// FINANCIAL ACCOUNTS API
	protectedRoutes.Handle("GET /api/protected/financial-accounts", withAuth(http.HandlerFunc(s.accountHandler.GetAccounts)))
	protectedRoutes.Handle("POST /api/protected/financial-accounts", withAuth(http.HandlerFunc(s.accountHandler.CreateAccount)))
	protectedRoutes.Handle("DELETE /api/protected/financial-accounts/{id}", withAuth(http.HandlerFunc(s.accountHandler.DeleteAccount)))
	protectedRoutes.Handle("GET /api/protected/financial-accounts/{id}/balance", withAuth(http.HandlerFunc(s.summaryHandler.GetAccountBalance)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))
	protectedRoutes.Handle("GET /api/protected/categories/{month}/spending", withAuth(http.HandlerFunc(s.summaryHandler.GetCategorySpending)))

	// TRANSACTIONS API
	protectedRoutes.Handle("GET /api/protected/transactions", withAuth(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions", withAuth(http.HandlerFunc(s.transactionHandler.CreateTransaction)))

	// SUMMARY AND BALANCE API
	protectedRoutes.Handle("GET /api/protected/summary", withAuth(http.HandlerFunc(s.summaryHandler.GetMonthlySummary)))
	protectedRoutes.Handle("GET /api/protected/total-balance", withAuth(http.HandlerFunc(s.summaryHandler.GetTotalBalance)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager, auth.BcryptVerifier{})
	authHandler := auth.NewHandler(authService)

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	accountService := application.NewAccountService(accountRepo)
	accountHandler := interfaces.NewAccountHandler(accountService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, accountService, categoryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	summaryHandler := interfaces.NewSummaryHandler(transactionService, respondJSON, respondError)

	server := &Server{
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		accountHandler:     accountHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		summaryHandler:     summaryHandler,
		dbService:          dbService,
	}
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
