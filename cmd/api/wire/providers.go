package wire

import (
	"os"
	"time"

	"greenhouse-server/cmd/config"
	checklistDomain "greenhouse-server/internal/checklist/domain"
	"greenhouse-server/internal/infra/cache"
	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	reportingDomain "greenhouse-server/internal/reporting/domain"
)

const _defaultSnapshotSchedule = "0 3 * * *"

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       env,
		KafkaBrokers:      cfg.Kafka.Brokers,
		ConsumerGroup:     cfg.Kafka.Group,
		SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	if env == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPosgreDatabase(cfg.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func provideSummaryCache(cfg config.AppConfig) (cache.Cache, error) {
	if cfg.Redis.Addr == "" {
		return cache.New(nil)
	}

	redisConfig := cache.DefaultRedisConfig()
	redisConfig.Addr = cfg.Redis.Addr
	redisConfig.Password = cfg.Redis.Password
	redisConfig.DB = cfg.Redis.DB
	return cache.NewRedisCache(redisConfig)
}

func provideReportOptions(cfg config.AppConfig) reportingDomain.Options {
	options := reportingDomain.Options{CostRatio: cfg.Reports.CostRatio}
	if options.CostRatio <= 0 {
		options.CostRatio = reportingDomain.DefaultCostRatio
	}

	return options
}

func provideSnapshotSchedule(cfg config.AppConfig) string {
	if cfg.Reports.SnapshotSchedule == "" {
		return _defaultSnapshotSchedule
	}

	return cfg.Reports.SnapshotSchedule
}

func provideSnapshotTicker() *time.Ticker {
	return time.NewTicker(30 * time.Second)
}

func provideMergePolicy(cfg config.AppConfig) checklistDomain.MergePolicy {
	if cfg.Checklists.MergePolicy == string(checklistDomain.MergePolicyArchive) {
		return checklistDomain.MergePolicyArchive
	}

	return checklistDomain.MergePolicyDrop
}
