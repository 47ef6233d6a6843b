package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/crowdfund-escrow/config"
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/QuangTung97/crowdfund-escrow/pkg/memtable"
	"github.com/QuangTung97/crowdfund-escrow/pkg/otellib"
	"github.com/QuangTung97/crowdfund-escrow/pkg/payout"
	"github.com/QuangTung97/crowdfund-escrow/repository"
	"github.com/QuangTung97/crowdfund-escrow/service/escrow"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
)

const serviceName = "crowdfund-escrow"

type app struct {
	conf    config.Config
	logger  *zap.Logger
	tracer  trace.Tracer
	service escrow.IService

	load     func(ctx context.Context) error
	shutdown func()
}

func newApp() *app {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel(serviceName, "local", conf.Jaeger)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	tracer := tracerProvider.Tracer(serviceName)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaignWrapper(repository.NewCampaign(), tracer, "repo::")
	eventRepo := repository.NewEventWrapper(repository.NewEvent(), tracer, "repo::")

	svc := escrow.NewService(
		provider, campaignRepo, eventRepo,
		payout.New(conf.Payout),
		escrow.NewMetrics(prometheus.DefaultRegisterer),
		escrow.WithBaseUnitExponent(conf.Campaign.BaseUnitExponent),
	)

	return &app{
		conf:    conf,
		logger:  logger,
		tracer:  tracer,
		service: escrow.NewIServiceWrapper(svc, tracer, "escrow::"),

		load: svc.Load,
		shutdown: func() {
			shutdown()
			_ = db.Close()
			_ = logger.Sync()
		},
	}
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		createCampaignCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			defer a.shutdown()

			return startServer(a)
		},
	}
}

func createCampaignCommand() *cobra.Command {
	var owner string
	var goal string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create the campaign, a running server loads it on the next request",
		RunE: func(cmd *cobra.Command, args []string) error {
			fundingGoal, err := decimal.NewFromString(goal)
			if err != nil {
				return fmt.Errorf("invalid goal: %w", err)
			}

			a := newApp()
			defer a.shutdown()

			ctx := otellib.ToContext(context.Background(), a.logger)
			output, err := a.service.Create(ctx, escrow.CreateInput{
				Owner:       ledger.Identity(owner),
				FundingGoal: fundingGoal,
				Duration:    duration,
			})
			if err != nil {
				return err
			}

			a.logger.Info("campaign created",
				zap.String("owner", string(output.Owner)),
				zap.String("funding_goal", output.FundingGoal.String()),
				zap.Time("deadline", output.Deadline),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "identity of the campaign owner")
	cmd.Flags().StringVar(&goal, "goal", "", "funding goal in whole units")
	cmd.Flags().DurationVar(&duration, "duration", 0, "campaign duration, e.g. 720h")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func startServer(a *app) error {
	err := a.load(context.Background())
	if err != nil {
		return err
	}

	server := escrow.NewServer(
		a.service,
		memtable.New(a.conf.Campaign.IdempotencyCacheSize),
		a.logger, a.tracer,
	)

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/", server)

	httpServer := &http.Server{
		Addr:    a.conf.Server.HTTP.ListenString(),
		Handler: router,
	}

	fmt.Println("HTTP:", a.conf.Server.HTTP.ListenString())

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	<-done
	return nil
}
