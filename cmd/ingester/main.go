package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/smart-price-analytics/staging-ingester/cmd/ingester/config"
	"github.com/smart-price-analytics/staging-ingester/internal/decoder"
	"github.com/smart-price-analytics/staging-ingester/internal/handler"
	"github.com/smart-price-analytics/staging-ingester/internal/ingester"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/rabbitmq"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	ingesterOptions := []ingester.Option{
		ingester.WithDefaultCurrencyCode(cfg.DefaultCurrencyCode),
		ingester.WithLogger(logger),
	}
	if cfg.SkipDuplicates {
		ingesterOptions = append(ingesterOptions, ingester.WithSkipDuplicates())
	}

	ing := ingester.NewIngester(
		decoder.Decoder{},
		storage.NewPostgres(pgDB),
		cfg.BatchSize,
		ingesterOptions...,
	)

	han := handler.NewHandler(conn, ing, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("staging ingester up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
