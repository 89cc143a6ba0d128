// cmd/parkdemo/main.go

// parkdemo is a small exploration command for the parking operations API. It
// registers an operator locally, resolves an authenticated client for the
// operator's environment, lists zones and active parking rights, and simulates a
// parking session lifecycle by publishing start and stop events.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/apiclient"
	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/deploymenttheory/go-parking-api-client/parking"
	"github.com/deploymenttheory/go-parking-api-client/registry"
	"github.com/deploymenttheory/go-parking-api-client/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// demoConfig is the YAML configuration of the demo command.
type demoConfig struct {
	LogLevel          string `yaml:"log_level"`
	LogOutputFormat   string `yaml:"log_output_format"`
	HideSensitiveData bool   `yaml:"hide_sensitive_data"`
	DatabasePath      string `yaml:"database_path"`
	BundledSecrets    string `yaml:"bundled_secrets"`
	Operator          string `yaml:"operator"`
	OperatorEnv       string `yaml:"operator_environment"`
	ZoneCode          string `yaml:"zone_code"`
	VehicleID         string `yaml:"vehicle_id"`
}

func loadConfig(path string) (*demoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &demoConfig{
		LogLevel:          "LogLevelInfo",
		LogOutputFormat:   "pretty",
		HideSensitiveData: true,
		DatabasePath:      "parkdemo.db",
		Operator:          "demo-operator",
		OperatorEnv:       "staging",
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

func main() {
	configPath := flag.String("config", "parkdemo.yaml", "path to the demo configuration file")
	flag.Parse()

	// Optional .env for local development overrides.
	_ = godotenv.Load()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(logLevel, config.LogOutputFormat)
	log.SetLevel(logLevel)

	if err := run(config, log); err != nil {
		log.Fatal("parkdemo failed", zap.Error(err))
	}
}

func run(config *demoConfig, log logger.Logger) error {
	ctx := context.Background()

	// Secret sources: per-device vault first, bundled secrets as fallback.
	var vault credentials.Source
	if v, err := credentials.NewVaultSource(); err != nil {
		log.Warn("Vault unavailable, using bundled secrets only", zap.Error(err))
	} else {
		vault = v
	}

	var bundled credentials.Source
	if config.BundledSecrets != "" {
		b, err := credentials.NewBundledSourceFromFile(config.BundledSecrets)
		if err != nil {
			return err
		}
		bundled = b
	}

	resolver := credentials.NewResolver(vault, bundled, log)

	reg := registry.NewRegistry(resolver, apiclient.ClientConfig{
		LogLevel:          config.LogLevel,
		LogOutputFormat:   config.LogOutputFormat,
		HideSensitiveData: config.HideSensitiveData,
	}, log)

	db, err := store.Open(config.DatabasePath)
	if err != nil {
		return err
	}

	operator, err := db.OperatorByName(config.Operator)
	if err != nil {
		return err
	}
	if operator == nil {
		operator = &parking.Operator{
			Name:        config.Operator,
			Environment: config.OperatorEnv,
			Description: "registered by parkdemo",
		}
		if err := db.CreateOperator(operator); err != nil {
			return err
		}
		log.Info("Registered operator", zap.String("name", operator.Name), zap.String("environment", operator.Environment))
	}

	client := reg.ClientForOperator(operator)
	if client == nil {
		return fmt.Errorf("environment %q needs configuration: no usable credentials", operator.Environment)
	}

	svc := parking.NewService(client)

	zones, err := svc.Zones(ctx)
	if err != nil {
		return err
	}
	log.Info("Fetched zones", zap.Int("count", len(zones)))
	for _, zone := range zones {
		fmt.Printf("zone %s (%s) %s\n", zone.Code, zone.Name, zone.City)
	}

	rights, err := svc.ParkingRights(ctx, config.ZoneCode)
	if err != nil {
		return err
	}
	log.Info("Fetched parking rights", zap.Int("count", len(rights)))

	if config.ZoneCode != "" && config.VehicleID != "" {
		start := time.Now().UTC()
		receipt, err := svc.StartSession(ctx, config.ZoneCode, config.VehicleID, start, start.Add(time.Hour))
		if err != nil {
			return err
		}
		log.Info("Session started", zap.String("eventID", receipt.EventID))

		receipt, err = svc.StopSession(ctx, config.ZoneCode, config.VehicleID)
		if err != nil {
			return err
		}
		log.Info("Session stopped", zap.String("eventID", receipt.EventID))
	}

	return nil
}
