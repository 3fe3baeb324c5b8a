package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pawnledger/internal/adapter/http"
	"pawnledger/internal/adapter/middleware"
	"pawnledger/internal/adapter/repository/mysql"
	"pawnledger/internal/config"
	"pawnledger/internal/infrastructure/cache"
	"pawnledger/internal/infrastructure/db"
	closureUC "pawnledger/internal/usecase/closure"
	pledgeUC "pawnledger/internal/usecase/pledge"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	pledges := mysql.NewPledgeRepository(gdb)
	rates := mysql.NewRateConfigRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	pledgeSvc := pledgeUC.NewUsecase(pledges, rates, tx, log)
	closureSvc := closureUC.NewUsecase(pledges, tx, log)

	base := http.NewHandler()
	pledgeH := http.NewPledgeHandler(pledgeSvc)
	closureH := http.NewClosureHandler(closureSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Validator = http.NewValidator()

	idemp := middleware.Idempotency(rdb, cfg.IdempotencyTTL, log)

	e.GET("/health", base.Health)

	e.POST("/pledges", pledgeH.CreatePledge, idemp)
	e.POST("/pledges/preview-financials", pledgeH.PreviewFinancials)
	e.GET("/pledges/:pledge_id", pledgeH.GetPledge)
	e.POST("/pledges/:pledge_id/approve", pledgeH.ApprovePledge, idemp)
	e.POST("/pledges/:pledge_id/reject", pledgeH.RejectPledge, idemp)
	e.POST("/pledges/:pledge_id/extras", pledgeH.AddExtra, idemp)
	e.POST("/pledges/:pledge_id/payments", pledgeH.AddPayment, idemp)

	e.POST("/loans/:loan_id/preview-closure", closureH.PreviewClosure)
	e.POST("/loans/:loan_id/close", closureH.CloseLoan, idemp)

	log.Info("listening", zap.String("port", cfg.AppPort))
	if err := e.Start(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
