package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/username/isdayoff/internal/calendar"
	"github.com/username/isdayoff/internal/config"
	"github.com/username/isdayoff/pkg/isdayoff"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app carries what every subcommand needs once config is loaded
type app struct {
	configPath string
	logger     *zap.Logger
	client     *isdayoff.Client
	cal        *calendar.IsDayOffCalendar
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "isdayoff",
		Short:         "Production calendar lookups via isdayoff.ru",
		Long:          "Query isdayoff.ru for workdays, days off and shortened pre-holiday days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search ., $HOME/.isdayoff, /etc/isdayoff)")

	rootCmd.AddCommand(
		todayCmd(a),
		dateCmd(a),
		monthCmd(a),
		yearCmd(a),
		periodCmd(a),
		checkCmd(a),
	)

	return rootCmd
}

func (a *app) init() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cfg.Log.File != "" {
		a.logger = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
	} else {
		a.logger, err = initLogger(cfg.Log.GetLevel())
		if err != nil {
			return err
		}
	}

	a.client = isdayoff.NewClient(isdayoff.Options{
		BaseURL:    cfg.API.BaseURL,
		Contact:    cfg.API.Contact,
		Country:    cfg.API.Country,
		PreHoliday: cfg.API.PreHoliday,
		SixDayWeek: cfg.API.SixDayWeek,
		Transport: isdayoff.NewHTTPTransport(&http.Client{
			Timeout: cfg.API.GetTimeout(),
		}),
		Logger: a.logger,
	})
	a.cal = calendar.NewIsDayOffCalendar(a.client, a.logger)

	a.logger.Debug("Client initialized",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("country", cfg.API.Country),
		zap.Bool("pre_holiday", cfg.API.PreHoliday),
		zap.Bool("six_day_week", cfg.API.SixDayWeek),
		zap.Duration("timeout", cfg.API.GetTimeout()))

	return nil
}

func initLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
