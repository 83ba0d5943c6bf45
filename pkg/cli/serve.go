package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/cli/config"
	httpctrl "github.com/secmon-lab/slackvoice/pkg/controller/http"
	"github.com/secmon-lab/slackvoice/pkg/usecase"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var skillCfg config.Skill
	var slackCfg config.Slack
	var locationCfg config.Location
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SLACKVOICE_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, skillCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, locationCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the skill HTTP endpoint",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Configuration",
				"skill", skillCfg,
				"slack", slackCfg,
				"location", locationCfg,
				"sentry", sentryCfg,
			)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer flush()

			if err := skillCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid skill configuration")
			}
			table, err := skillCfg.StatusTable()
			if err != nil {
				return goerr.Wrap(err, "failed to load status table")
			}
			offset, err := skillCfg.FallbackOffset()
			if err != nil {
				return err
			}

			slackClient, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack client")
			}

			ucOpts := []usecase.Option{
				usecase.WithStatusTable(table),
				usecase.WithFallbackOffset(offset),
			}

			locationOpt, err := locationCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure location lookup")
			}
			if locationOpt != nil {
				ucOpts = append(ucOpts, locationOpt)
				logger.Info("Device timezone lookup enabled")
			} else {
				logger.Info("Google Maps API key not configured, using fallback UTC offset", "offset", offset.String())
			}

			uc := usecase.New(slackClient, ucOpts...)

			httpHandler := httpctrl.New(uc.Skill,
				httpctrl.WithAppID(skillCfg.AppID()),
				httpctrl.WithRequestTolerance(skillCfg.RequestTolerance()),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Shut down on SIGINT/SIGTERM, or when the server itself fails
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})

			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown completed")
			return nil
		},
	}
}
