package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4/middleware"

	"github.com/rajputritesh1907/attendanceFrontend/internal/config"
	"github.com/rajputritesh1907/attendanceFrontend/internal/mockapi"
)

func main() {
	cfg, err := config.LoadMockAPI()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	srv, err := mockapi.New(cfg)
	if err != nil {
		log.Fatalf("mockapi init: %v", err)
	}
	srv.Echo.Use(middleware.Logger())

	log.Printf("mock attendance API listening on :%s (admin: %s)", cfg.Port, cfg.Admin.Email)
	if err := srv.Echo.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
