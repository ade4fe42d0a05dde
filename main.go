package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"popin/config"
	"popin/db"
	"popin/middlewares"
	"popin/models"
	"popin/routes"
	"popin/services"
	"popin/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load error: ", err)
	}
	utils.SetSecret(cfg.JWTSecret)

	sqldb, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("database error: ", err)
	}
	defer sqldb.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	inv := utils.NewCacheInvalidator(rdb)

	events := models.NewSQLEventRepository(sqldb)
	regs := models.NewSQLRegistrationRepository(sqldb)

	server := gin.New()
	server.Use(middlewares.RequestID(), gin.Recovery())
	server.Use(middlewares.ResponseCache(rdb, cfg.CacheTTL))

	routes.RegisterRoutes(server, routes.Deps{
		Users:         models.NewSQLUserRepository(sqldb),
		Events:        events,
		Regs:          regs,
		Reports:       models.NewSQLReportRepository(sqldb),
		Registrations: services.NewRegistrationService(events, regs),
		Redis:         rdb,
		Invalidator:   inv,
		QuotaLimit:    cfg.QuotaLimit,
	})

	log.WithField("addr", cfg.Addr).Info("listening")
	if err := server.Run(cfg.Addr); err != nil {
		log.Fatal("server error: ", err)
	}
}
