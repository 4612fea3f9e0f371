package config

// Config is the configuration root.
type Config struct {
	Server                   ServerConfig             `mapstructure:"server"`
	DB                       DBConfig                 `mapstructure:"database"`
	Redis                    RedisConfig              `mapstructure:"redis"`
	Logstash                 LogstashConfig           `mapstructure:"logstash"`
	Wildberries              WildberriesConfig        `mapstructure:"wildberries"`
	Stats                    StatsConfig              `mapstructure:"stats"`
	Sync                     SyncConfig               `mapstructure:"sync"`
	Kafka                    KafkaConfig              `mapstructure:"kafka"`
	KafkaCampaignStatConsumer KafkaCampaignStatConsumer `mapstructure:"kafka_campaign_stat_consumer"`
	KafkaProductStatConsumer  KafkaProductStatConsumer  `mapstructure:"kafka_product_stat_consumer"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// WildberriesConfig holds the marketplace API connection settings.
type WildberriesConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryCount     int    `mapstructure:"retry_count"`
}

// StatsConfig carries the business date windows for reporting. Defaults are
// set in LoadConfig so tests can override them.
type StatsConfig struct {
	DashboardWindowDays int `mapstructure:"dashboard_window_days"`
	DetailWindowDays    int `mapstructure:"detail_window_days"`
	RetentionDays       int `mapstructure:"retention_days"`
	TopProductsDefault  int `mapstructure:"top_products_default"`
	RollupWorkers       int `mapstructure:"rollup_workers"`
}

type SyncConfig struct {
	LogRetentionDays int `mapstructure:"log_retention_days"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaCampaignStatConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type KafkaProductStatConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
