package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/tableproxy/config"
	"github.com/prognoshealth/tableproxy/dispatcher"
	"github.com/prognoshealth/tableproxy/tablestore"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed loading configuration")
	}

	logger.SetLevel(cfg.LogLevel)

	store, err := tablestore.NewDynamoStore(cfg.Region, cfg.Table, cfg.Endpoint)
	if err != nil {
		logger.WithError(err).Fatal("failed creating table store")
	}

	mapper, err := cfg.StatusMapper()
	if err != nil {
		logger.WithError(err).Fatal("failed selecting status mapping")
	}

	d, err := dispatcher.New(store, dispatcher.WithLogger(logger), dispatcher.WithStatusMapper(mapper))
	if err != nil {
		logger.WithError(err).Fatal("failed building dispatcher")
	}

	logger.WithFields(logrus.Fields{
		"region":         cfg.Region,
		"table":          cfg.Table,
		"status_mapping": cfg.StatusMapping,
	}).Debug("starting table proxy")

	lambda.Start(d.Handle)
}
