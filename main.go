package main

import (
	"fmt"
	"os"

	"bid-market/internal/auction"
	"bid-market/internal/config"
	"bid-market/internal/favorites"
	"bid-market/internal/identity"
	"bid-market/internal/query"
	"bid-market/internal/repository"
	"bid-market/internal/repository/sqlite"
	"bid-market/internal/server"
	handler "bid-market/services/market/handler"
	"bid-market/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open record store: %v\n", err)
		os.Exit(1)
	}

	provider := identity.NewProvider(db, cfg.JWTSecret, cfg.TokenTTL)
	engine := auction.NewEngine(db)
	ledger := favorites.NewLedger(db, engine)
	queries := query.NewService(db, engine)

	authHandler := handler.NewAuthHandler(provider)
	marketHandler := handler.NewMarketHandler(engine, ledger, queries)

	router := server.SetupRouter(authHandler, marketHandler, provider)

	utils.Info("starting marketplace server", map[string]any{
		"addr":    cfg.Addr,
		"durable": cfg.DBPath != "",
	})
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore selects the record store backend: SQLite when DB_PATH is set,
// otherwise the in-memory store.
func openStore(cfg config.Config) (repository.MarketDB, error) {
	if cfg.DBPath == "" {
		return repository.NewMemoryRepo(), nil
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(db), nil
}
