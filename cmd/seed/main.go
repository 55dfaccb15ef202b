package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatbot_mcp/internal/config"
	"chatbot_mcp/internal/logging"
	"chatbot_mcp/internal/repository"
	"chatbot_mcp/internal/seed"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed, color.Bold)

	fail := func(msg string, err error) {
		red.Fprintf(os.Stderr, "✘ %s: %v\n", msg, err)
		os.Exit(1)
	}

	db, err := config.LoadDatabase()
	if err != nil {
		fail("invalid database config", err)
	}
	dsn, _ := db.DSN()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, "warn", "text")
	pool, err := config.ConnectDB(ctx, dsn, logger)
	if err != nil {
		fail("failed to connect to database", err)
	}
	defer pool.Close()

	if err := config.Migrate(ctx, pool); err != nil {
		fail("failed to migrate database", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		fail("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	res, err := seed.New(repository.NewUserRepository(tx), repository.NewDebtRepository(tx), nil).Run(ctx)
	if err != nil {
		fail("seed failed", err)
	}
	if err := tx.Commit(ctx); err != nil {
		fail("failed to commit seed", err)
	}

	if res.Deleted > 0 {
		cyan.Printf("• Removed %d existing users\n", res.Deleted)
	}
	green.Printf("✔ Created %d users\n", len(res.Users))
	for _, u := range res.Users {
		cyan.Printf("    %-24s %-36s %s\n", u.Name, u.Email, u.Status)
	}
	green.Printf("✔ Created %d debts\n", res.Debts)
	green.Println("✔ Database seeded successfully")
	cyan.Printf("Log in with phoneNumber %s\n", seed.DemoPhone)
}
