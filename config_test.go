/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/acronis/go-appkit/config"
)

type AppConfig struct {
	LRUCache *Config `mapstructure:"lruCache" json:"lruCache" yaml:"lruCache"`
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfgDataType config.DataType
		cfgData     string
		expectedCfg func() *Config
	}{
		{
			name:        "yaml config",
			cfgDataType: config.DataTypeYAML,
			cfgData: `
lruCache:
  maxEntries: 500
  initialCapacity: 64
`,
			expectedCfg: func() *Config {
				cfg := NewDefaultConfig()
				cfg.MaxEntries = 500
				cfg.InitialCapacity = 64
				return cfg
			},
		},
		{
			name:        "json config",
			cfgDataType: config.DataTypeJSON,
			cfgData: `
{
	"lruCache": {
		"maxEntries": 500,
		"initialCapacity": 64
	}
}`,
			expectedCfg: func() *Config {
				cfg := NewDefaultConfig()
				cfg.MaxEntries = 500
				cfg.InitialCapacity = 64
				return cfg
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Load config using config.Loader.
			appCfg := AppConfig{LRUCache: NewDefaultConfig()}
			expectedAppCfg := AppConfig{LRUCache: tt.expectedCfg()}
			cfgLoader := config.NewLoader(config.NewViperAdapter())
			err := cfgLoader.LoadFromReader(bytes.NewBuffer([]byte(tt.cfgData)), tt.cfgDataType, appCfg.LRUCache)
			require.NoError(t, err)
			require.Equal(t, expectedAppCfg, appCfg)

			// Load config using viper unmarshal.
			appCfg = AppConfig{LRUCache: NewDefaultConfig()}
			expectedAppCfg = AppConfig{LRUCache: tt.expectedCfg()}
			vpr := viper.New()
			vpr.SetConfigType(string(tt.cfgDataType))
			require.NoError(t, vpr.ReadConfig(bytes.NewBuffer([]byte(tt.cfgData))))
			require.NoError(t, vpr.Unmarshal(&appCfg))
			require.Equal(t, expectedAppCfg, appCfg)

			// Load config using yaml/json unmarshal.
			appCfg = AppConfig{LRUCache: NewDefaultConfig()}
			expectedAppCfg = AppConfig{LRUCache: tt.expectedCfg()}
			switch tt.cfgDataType {
			case config.DataTypeYAML:
				require.NoError(t, yaml.Unmarshal([]byte(tt.cfgData), &appCfg))
				require.Equal(t, expectedAppCfg, appCfg)
			case config.DataTypeJSON:
				require.NoError(t, json.Unmarshal([]byte(tt.cfgData), &appCfg))
				require.Equal(t, expectedAppCfg, appCfg)
			default:
				t.Fatalf("unsupported config data type: %s", tt.cfgDataType)
			}
		})
	}
}

func TestNewDefaultConfig(t *testing.T) {
	var cfg *Config

	// Empty config, all defaults for the data provider should be used
	cfg = NewConfig()
	require.NoError(t, config.NewDefaultLoader("").LoadFromReader(bytes.NewBuffer(nil), config.DataTypeYAML, cfg))
	require.Equal(t, NewDefaultConfig(), cfg)

	// viper.Unmarshal
	cfg = NewDefaultConfig()
	vpr := viper.New()
	vpr.SetConfigType("yaml")
	require.NoError(t, vpr.Unmarshal(&cfg))
	require.Equal(t, NewDefaultConfig(), cfg)

	// yaml.Unmarshal
	cfg = NewDefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(""), &cfg))
	require.Equal(t, NewDefaultConfig(), cfg)

	// json.Unmarshal
	cfg = NewDefaultConfig()
	require.NoError(t, json.Unmarshal([]byte("{}"), &cfg))
	require.Equal(t, NewDefaultConfig(), cfg)
}

func TestWithKeyPrefix(t *testing.T) {
	cfgData := `
customLruCache:
  maxEntries: 42
`
	expectedCfg := NewDefaultConfig(WithKeyPrefix("customLruCache"))
	expectedCfg.MaxEntries = 42

	cfg := NewConfig(WithKeyPrefix("customLruCache"))
	err := config.NewDefaultLoader("").LoadFromReader(bytes.NewBuffer([]byte(cfgData)), config.DataTypeYAML, cfg)
	require.NoError(t, err)
	require.Equal(t, expectedCfg, cfg)
}

func TestConfigValidationErrors(t *testing.T) {
	tests := []struct {
		name           string
		yamlData       string
		expectedErrMsg string
	}{
		{
			name: "error, negative maxEntries",
			yamlData: `
lruCache:
  maxEntries: -1
`,
			expectedErrMsg: `lruCache.maxEntries: must not be negative`,
		},
		{
			name: "error, negative initialCapacity",
			yamlData: `
lruCache:
  initialCapacity: -100
`,
			expectedErrMsg: `lruCache.initialCapacity: must not be negative`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := config.NewDefaultLoader("").LoadFromReader(bytes.NewBuffer([]byte(tt.yamlData)), config.DataTypeYAML, cfg)
			require.EqualError(t, err, tt.expectedErrMsg)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cache, err := NewFromConfig[string, string](&Config{MaxEntries: 2, InitialCapacity: 2}, nil)
	require.NoError(t, err)

	cache.Insert("a", "value:a")
	cache.Insert("b", "value:b")
	cache.Insert("c", "value:c")

	require.Equal(t, 2, cache.Len())
	require.Equal(t, 2, cache.Cap())
	_, found := cache.Get("a")
	require.False(t, found)

	_, err = NewFromConfig[string, string](&Config{MaxEntries: -1}, nil)
	require.Error(t, err)
}
