package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/li-cell/election-backend-go/internal/config"
	appHTTP "github.com/li-cell/election-backend-go/internal/handler/http"
	"github.com/li-cell/election-backend-go/internal/pkg/database"
	"github.com/li-cell/election-backend-go/internal/pkg/jwt"
	"github.com/li-cell/election-backend-go/internal/repository/mongodb"
	adminService "github.com/li-cell/election-backend-go/internal/service/admin"
	reportService "github.com/li-cell/election-backend-go/internal/service/report"
	resultsService "github.com/li-cell/election-backend-go/internal/service/results"
	seatService "github.com/li-cell/election-backend-go/internal/service/seat"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close(context.Background())

	seatRepo := mongodb.NewSeatRepository(db)
	partyRepo := mongodb.NewPartyRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	cache := resultsService.NewCache(seatRepo)

	resultsSvc := resultsService.NewResultsService(cache, partyRepo)
	seatSvc := seatService.NewSeatService(seatRepo, partyRepo, cache, cfg.Election)
	reportSvc := reportService.NewReportService(cache)
	adminSvc := adminService.NewAdminService(roleRepo, userRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(adminSvc)
	resultsHandler := appHTTP.NewResultsHandler(resultsSvc)
	seatHandler := appHTTP.NewSeatHandler(seatSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	adminHandler := appHTTP.NewAdminHandler(adminSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		resultsHandler,
		seatHandler,
		reportHandler,
		adminHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
