// Package server assembles shared dependencies and the echo instance used by
// the HTTP entrypoints and background jobs.
package server

import (
	"fmt"
	"log"

	"hotbray.GO/api"
	"hotbray.GO/config"
	"hotbray.GO/core/cache"
	"hotbray.GO/service/contact"
	"hotbray.GO/service/search"
)

// NewDeps connects to the database (required), Redis and the search index
// (both optional) and configures outbound mail.
func NewDeps() (*api.Deps, error) {
	cfg := config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB instance: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	log.Println("Database connection successful.")

	deps := &api.Deps{DB: db, Config: cfg}
	deps.Search = newSearchGateway()

	mail := config.MailConfig()
	if mail.User != "" {
		deps.Mailer = contact.NewSMTPMailer(mail)
		deps.Inbox = mail.Inbox
	} else {
		log.Println("MAIL_USER not set, contact notifications disabled.")
	}
	return deps, nil
}

func initRedis() {
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)
}

func newSearchGateway() *search.Gateway {
	initRedis()
	sc := config.SearchConfig()
	es, err := config.NewSearchClient(sc)
	if err != nil {
		log.Printf("search client not configured: %v", err)
		return nil
	}
	return search.NewGateway(es, sc.Index, cache.New(config.RedisClient, "search:"+sc.Index), sc.SuggestTTL)
}
