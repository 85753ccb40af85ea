package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shophq/opscore/internal/app"
	"github.com/shophq/opscore/internal/config"
	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/engine"
	"github.com/shophq/opscore/internal/export"
	"github.com/shophq/opscore/internal/jobs"
	"github.com/shophq/opscore/internal/logging"
	"github.com/shophq/opscore/internal/observability"
	"go.uber.org/zap"
)

const release = "opscore@dev"

func main() {
	// .env is optional; containers get env from the orchestrator
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logg.Closer()
	log := logg.Base

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		log.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		log.Fatal("db migrate", zap.Error(err))
	}

	eng := engine.New(database, log, cfg.Location)

	app.StartHTTP(ctx, cfg.HTTPAddr, database)

	runner := jobs.New(ctx)
	runner.Every(30*time.Second, "db_ping", jobs.DBPing(database))
	runner.Every(time.Hour, "ledger_audit", jobs.LedgerAudit(database, log, cfg.Location))
	runner.Every(24*time.Hour, "monthly_export", monthlyExport(database, eng, log, cfg.Location))

	log.Info("opscore engine started",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("tz", cfg.Location.String()))

	<-ctx.Done()
	log.Info("shutting down")
}

// monthlyExport drops the current month's leaderboard + payroll workbook into
// /tmp for the dashboard sidecar to pick up.
func monthlyExport(database *sql.DB, eng *engine.Engine, log *zap.Logger, loc *time.Location) jobs.Job {
	return func(ctx context.Context) error {
		month := time.Now().In(loc).Format("2006-01")

		res := eng.ComputeMonthlyRankings(ctx, month, engine.PrecomputedLedgerScoring)
		if !res.Success {
			return res.Err
		}
		payroll, err := db.ListPayrollForMonth(ctx, database, month)
		if err != nil {
			return err
		}

		wb, err := export.NewMonthlyWorkbook(month, []export.SheetSpec{
			export.RankingSheet(res.Data),
			export.PayrollSheet(payroll),
		})
		if err != nil {
			return err
		}
		path, err := wb.SaveTemp()
		if err != nil {
			return err
		}
		log.Info("monthly workbook exported", zap.String("path", path))
		return nil
	}
}
