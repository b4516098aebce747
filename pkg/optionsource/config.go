package optionsource

import "time"

// PostgresConfig holds pool settings for option tables.
type PostgresConfig struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`
	MaxConns         int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MinConns         int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"2"`
	MaxConnIdleTime  time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"1s"`
}

// RedisConfig holds the connection settings of the search cache.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// OpenSearchConfig holds the cluster settings of search-as-you-type sources.
type OpenSearchConfig struct {
	Addresses  []string `env:"OPENSEARCH_ADDRESSES,required"`
	Username   string   `env:"OPENSEARCH_USERNAME"`
	Password   string   `env:"OPENSEARCH_PASSWORD"`
	MaxRetries int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
}
