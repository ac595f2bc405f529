package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/cache"
	"github.com/suncoopng/internal/config"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/handler"
	"github.com/suncoopng/internal/router"
	"github.com/suncoopng/internal/service"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureAdmin(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}

	pages, err := cache.New(cache.Options{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("failed to initialize page cache: %v", err)
	}

	var mailer service.Mailer
	if cfg.SMTPHost != "" {
		mailer = service.NewSMTPMailer(service.SMTPConfig{
			Host:          cfg.SMTPHost,
			Port:          cfg.SMTPPort,
			User:          cfg.SMTPUser,
			Pass:          cfg.SMTPPass,
			From:          cfg.SMTPFrom,
			To:            cfg.InquiryTo,
			SkipTLSVerify: cfg.SMTPSkipTLS,
		})
	} else {
		log.Println("SMTP_HOST not set, inquiry mail disabled")
	}

	api := handler.NewAPI(db.DB, pages, mailer, cfg.AdminUserName, cfg.UploadDir, cfg.UploadURLPath)

	r := router.Setup(api, pages, cfg.SessionSecret, "")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
