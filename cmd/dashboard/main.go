package main

import (
	"context"
	"log"
	"os"

	"github.com/rajputritesh1907/attendanceFrontend/internal/app"
	"github.com/rajputritesh1907/attendanceFrontend/internal/config"
)

func main() {
	cfg, err := config.LoadDashboard()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dashboard := app.New(cfg, os.Stdin, os.Stdout)
	if err := dashboard.Run(context.Background()); err != nil {
		log.Fatalf("dashboard: %v", err)
	}
}
