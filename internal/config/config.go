package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"txplan.db"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string   `envconfig:"TXPLAN_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"TXPLAN_METRICS_ADDRESS" default:":8080"`
	BaseUrl        string   `envconfig:"TXPLAN_BASE_URL" default:"http://localhost:3443"`
	LogLevel       string   `envconfig:"TXPLAN_LOG_LEVEL" default:"info"`
	CorsOrigins    []string `envconfig:"TXPLAN_CORS_ORIGINS" default:"*"`
	Sensitivity    sensitivityConfig
}

// sensitivityConfig carries the absolute cost perturbations used for the
// reported low/base/high ranges, tunable per deployment.
type sensitivityConfig struct {
	DialysisDelta        float64 `envconfig:"TXPLAN_DELTA_DIALYSIS" default:"15000"`
	TransplantYear1Delta float64 `envconfig:"TXPLAN_DELTA_TX_YEAR1" default:"10000"`
	TransplantMaintDelta float64 `envconfig:"TXPLAN_DELTA_TX_MAINT" default:"2500"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
