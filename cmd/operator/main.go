package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/operator"
	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	"github.com/dmitrijs2005/contactdesk/internal/server/database"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)
	app := operator.NewApp(services.NewAuthService(db, rm, logger), os.Stdout)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		db.Close()
		log.Fatalf("%v", err)
	}

}
