package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"lendingapi/internal/catalog"
	apphttp "lendingapi/internal/http"
	"lendingapi/internal/lending"
	"lendingapi/internal/loan"
	"lendingapi/internal/member"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const storeTimeout = 3 * time.Second

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	databaseDSN := os.Getenv("DB_DSN")
	sweepInterval := getDurationEnv("SWEEP_INTERVAL", time.Hour)

	var (
		books   catalog.Store
		members member.Store
		loans   loan.Store
		dbPool  *pgxpool.Pool
	)

	if databaseDSN != "" {
		dbPool = mustOpenDB(databaseDSN)
		defer dbPool.Close()
		books = catalog.NewPostgresRepo(dbPool, storeTimeout)
		members = member.NewPostgresRepo(dbPool, storeTimeout)
		loans = loan.NewPostgresRepo(dbPool, storeTimeout)
	} else {
		log.Println("DB_DSN not set, using in-memory stores")
		books = catalog.NewMemoryRepo()
		members = member.NewMemoryRepo()
		loans = loan.NewMemoryRepo()
	}

	ledger := loan.NewLedger(loans, members, books)
	coordinator := lending.NewCoordinator(books, ledger)
	sweeper := lending.NewSweeper(loans)

	router := apphttp.NewRouter(
		apphttp.NewBookHandler(books),
		apphttp.NewMemberHandler(members),
		apphttp.NewLoanHandler(coordinator, ledger),
	)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := dbPool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweeper.Run(ctx, sweepInterval)
	log.Printf("overdue sweeper running every %s", sweepInterval)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
