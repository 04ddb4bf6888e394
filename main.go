package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taya-finance/backend/internal/config"
	"github.com/taya-finance/backend/pkg/models"
	"github.com/taya-finance/backend/pkg/router"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	cfgFile string
	cfg     config.Config
	rootCmd = &cobra.Command{
		Use:               "taya",
		Short:             "Taya tracks income and expenses by category",
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              serve,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, values from the environment take precedence")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the API (default)",
		RunE:  serve,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := connect()
			if err != nil {
				return err
			}

			log.Info().Str("driver", cfg.DBDriver).Msg("Database migrated")
			return closeDB(db)
		},
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) (err error) {
	cfg, err = config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := zerolog.InfoLevel
	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}

	if cfg.LogLevel != "" {
		level, err = zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return nil
}

// connect connects to the database and migrates the schema.
func connect() (*gorm.DB, error) {
	// Create the directory for the sqlite database
	if cfg.DBDriver == models.DriverSQLite {
		err := os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err != nil {
			return nil, err
		}
	}

	db, err := models.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	// Migrate all models so that the schema is correct
	err = models.Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func serve(cmd *cobra.Command, _ []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(db); err != nil {
			log.Error().Err(err).Msg("Closing the database failed")
		}
	}()

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group(cfg.APIURL.Path), db, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	// Shut down when the command context is cancelled, e.g. on SIGTERM
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
