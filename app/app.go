// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/crossmesh/spoke-relayer/chains/spoke"
	spokeConfig "github.com/crossmesh/spoke-relayer/chains/spoke/config"
	"github.com/crossmesh/spoke-relayer/chains/spoke/executor"
	"github.com/crossmesh/spoke-relayer/chains/spoke/listener"
	"github.com/crossmesh/spoke-relayer/chains/spoke/vault"
	"github.com/crossmesh/spoke-relayer/config"
	"github.com/crossmesh/spoke-relayer/flags"
	"github.com/crossmesh/spoke-relayer/health"
	"github.com/crossmesh/spoke-relayer/logger"
	"github.com/crossmesh/spoke-relayer/lvldb"
	"github.com/crossmesh/spoke-relayer/metrics"
	"github.com/crossmesh/spoke-relayer/store"
	"github.com/crossmesh/spoke-relayer/transport"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logger.ConfigureLogger(configuration.RelayerConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	// wait until the previous instance releases the store lock
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(viper.GetString(flags.BlockstoreFlagName))
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to blockstore file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to blockstore file")
			break
		}
	}
	defer db.Close()
	spokeStore := store.NewSpokeStore(db)
	nonceStore := store.NewNonceStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	meter, err := defaultMeter(ctx, configuration.RelayerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	spokeMetrics, err := metrics.NewSpokeMetrics(meter, configuration.RelayerConfig.Env, configuration.RelayerConfig.Id)
	panicOnError(err)

	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort)

	msgChan := make(chan [][]byte, 1)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "spoke":
			{
				config, err := spokeConfig.NewSpokeConfig(chainConfig)
				panicOnError(err)

				domainID := *config.GeneralChainConfig.Id
				log.Info().Str("domain", config.GeneralChainConfig.String()).Msg("Registering spoke domain")

				err = spoke.InitializeState(spokeStore, domainID, config.CrossDomainAdmin)
				panicOnError(err)

				provisioner := vault.NewDeterministicProvisioner(config.VaultSeed)
				l := log.With().Str("chain", config.GeneralChainConfig.Name).Uint32("domainID", domainID)
				spokeExecutor := executor.NewExecutor(l, spokeStore, provisioner, domainID, config.RemoteDomain)
				adminHandler := listener.NewAdminMessageHandler(l, spokeExecutor, nonceStore, spokeMetrics, msgChan)

				chain := spoke.NewSpokeChain(adminHandler, domainID)
				go chain.Listen(ctx)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	t := transport.NewHTTPTransport(log.With(), nonceStore, msgChan)
	go t.Start(configuration.RelayerConfig.TransportPort)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	relayerName := viper.GetString("name")
	log.Info().Msgf("Started relayer: %s", relayerName)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func defaultMeter(ctx context.Context, collectorURL string) (api.Meter, error) {
	if collectorURL == "" {
		return noop.NewMeterProvider().Meter("spoke-relayer"), nil
	}

	collector, err := url.Parse(collectorURL)
	if err != nil {
		return nil, err
	}

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(collector.Host)}
	if collector.Scheme != "https" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	return provider.Meter("spoke-relayer"), nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
