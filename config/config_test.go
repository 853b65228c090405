package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather/internal/providers"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := loadConfig(s.dir)
	s.Require().NoError(err)

	s.Equal("city-weather", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal("info", conf.LogLevel)
	s.Equal("./searches.json", conf.HistoryFile)
	s.Equal(providers.DefaultGeocodingURL, conf.GeocodingBaseURL)
	s.Equal(providers.DefaultForecastURL, conf.ForecastBaseURL)
	s.Equal(10*time.Second, conf.ProviderTimeout)
	s.Equal(uint32(5), conf.BreakerMaxFailures)
	s.Equal(30*time.Second, conf.BreakerOpenTimeout)
	s.Equal(time.Hour, conf.GeocodeCacheTTL)
	s.Equal(15*time.Second, conf.HTTPTimeoutDuration())
	s.False(conf.LookupLogEnabled())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("HISTORY_FILE", "/tmp/other.json")
	s.T().Setenv("PROVIDER_TIMEOUT", "3s")
	s.T().Setenv("BREAKER_MAX_FAILURES", "2")
	s.T().Setenv("GEOCODE_CACHE_TTL", "0")
	s.T().Setenv("DATABASE_HOST", "localhost")

	conf, err := loadConfig(s.dir)
	s.Require().NoError(err)

	s.Equal("/tmp/other.json", conf.HistoryFile)
	s.Equal(3*time.Second, conf.ProviderTimeout)
	s.Equal(providers.BreakerSettings{MaxFailures: 2, OpenTimeout: 30 * time.Second}, conf.BreakerSettings())
	s.Equal(time.Duration(0), conf.GeocodeCacheTTL)
	s.True(conf.LookupLogEnabled())
}

func (s *ConfigTestSuite) TestEnvFile() {
	content := "SERVER_ADDRESS=127.0.0.1:8080\nHTTP_TIMEOUT=30\n"
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, ".env"), []byte(content), 0o600))

	conf, err := loadConfig(s.dir)
	s.Require().NoError(err)

	s.Equal("127.0.0.1:8080", conf.ServerAddress)
	s.Equal(30*time.Second, conf.HTTPTimeoutDuration())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
