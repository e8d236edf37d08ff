package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"xetasuite/internal/config"
	"xetasuite/internal/handlers"
	"xetasuite/internal/repositories"
	"xetasuite/internal/services"
	"xetasuite/utils"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	hub      *Hub

	authService  *services.AuthService
	auditService *services.AuditService

	authHandler         *handlers.AuthHandler
	siteHandler         *handlers.SiteHandler
	supplierHandler     *handlers.SupplierHandler
	itemCategoryHandler *handlers.ItemCategoryHandler
	itemHandler         *handlers.ItemHandler
	userHandler         *handlers.UserHandler
	cleaningHandler     *handlers.CleaningHandler
	maintenanceHandler  *handlers.MaintenanceHandler
	auditLogHandler     *handlers.AuditLogHandler
}

func initializeApp(db *sql.DB, redisClient *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	siteRepo := &repositories.SiteRepository{DB: db}
	userRepo := &repositories.UserRepository{DB: db}
	supplierRepo := &repositories.SupplierRepository{DB: db}
	itemCategoryRepo := &repositories.ItemCategoryRepository{DB: db}
	itemRepo := &repositories.ItemRepository{DB: db}
	cleaningRepo := &repositories.CleaningRepository{DB: db}
	maintenanceRepo := &repositories.MaintenanceRepository{DB: db}
	auditRepo := &repositories.AuditLogRepository{DB: db}
	sessionRepo := &repositories.SessionRepository{Client: redisClient}

	storage, err := utils.NewStorage(
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
	)
	if err != nil {
		errorLog.Fatal(err)
	}
	tickets, err := utils.NewManager(cfg.Auth.TicketKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	authService := &services.AuthService{
		UserRepo:      userRepo,
		SessionRepo:   sessionRepo,
		TicketManager: tickets,
		SessionTTL:    time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
	}
	auditService := &services.AuditService{AuditRepo: auditRepo}
	siteService := &services.SiteService{SiteRepo: siteRepo}
	supplierService := &services.SupplierService{SupplierRepo: supplierRepo}
	itemCategoryService := &services.ItemCategoryService{ItemCategoryRepo: itemCategoryRepo}
	itemService := &services.ItemService{
		ItemRepo:    itemRepo,
		Storage:     storage,
		ScanBaseURL: cfg.Server.ConsoleURL,
	}
	userService := &services.UserService{UserRepo: userRepo}
	cleaningService := &services.CleaningService{CleaningRepo: cleaningRepo, ItemRepo: itemRepo}
	maintenanceService := &services.MaintenanceService{MaintenanceRepo: maintenanceRepo, ItemRepo: itemRepo}

	hub := NewHub(infoLog)

	return &application{
		cfg:          cfg,
		errorLog:     errorLog,
		infoLog:      infoLog,
		db:           db,
		hub:          hub,
		authService:  authService,
		auditService: auditService,

		authHandler: &handlers.AuthHandler{
			AuthService:   authService,
			AuditService:  auditService,
			SecureCookies: cfg.Auth.SecureCookies,
		},
		siteHandler:         &handlers.SiteHandler{SiteService: siteService, AuditService: auditService},
		supplierHandler:     &handlers.SupplierHandler{SupplierService: supplierService, AuditService: auditService},
		itemCategoryHandler: &handlers.ItemCategoryHandler{ItemCategoryService: itemCategoryService, AuditService: auditService},
		itemHandler:         &handlers.ItemHandler{ItemService: itemService, AuditService: auditService, Notifier: hub},
		userHandler:         &handlers.UserHandler{UserService: userService, AuditService: auditService},
		cleaningHandler:     &handlers.CleaningHandler{CleaningService: cleaningService, AuditService: auditService},
		maintenanceHandler:  &handlers.MaintenanceHandler{MaintenanceService: maintenanceService, AuditService: auditService},
		auditLogHandler:     &handlers.AuditLogHandler{AuditService: auditService},
	}
}
