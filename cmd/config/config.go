package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("greenhouse_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers:        viper.GetStringSlice("kafka.brokers"),
				Group:          viper.GetString("kafka.group"),
				SchemaRegistry: viper.GetString("kafka.schema_registry"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Checklists: ChecklistsConfig{
				MergePolicy: viper.GetString("checklists.merge_policy"),
			},
			Reports: ReportsConfig{
				SnapshotSchedule: viper.GetString("reports.snapshot_schedule"),
				CostRatio:        viper.GetFloat64("reports.cost_ratio"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Checklists ChecklistsConfig
	Reports    ReportsConfig
}

type GeneralConfig struct {
	LogLevel string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

// RedisConfig is optional. When Addr is empty report snapshots stay in the
// in-process cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ChecklistsConfig struct {
	MergePolicy string
}

type ReportsConfig struct {
	SnapshotSchedule string
	CostRatio        float64
}
