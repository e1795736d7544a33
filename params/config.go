package params

import (
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/crosspay/ledgercodec/log"
)

// ProtocolConfig holds the tunable limits of the serialization layer.
// It is loaded at most once, before any decoding starts, and is
// immutable afterwards.
type ProtocolConfig struct {
	// MaxPathElements bounds the total number of hops accepted in a
	// single path set.
	MaxPathElements int
	// MaxVariableLength bounds the payload of a length-prefixed field.
	MaxVariableLength int
	// MaxNativeNetwork is the largest native amount accepted from the
	// network.
	MaxNativeNetwork uint64
}

const (
	defaultMaxPathElements   = 100
	defaultMaxVariableLength = 918744
	defaultMaxNativeNetwork  = 100000000000000000
)

var (
	protocolConfig    *ProtocolConfig
	loadConfigStarter sync.Once
)

func defaultConfig() *ProtocolConfig {
	return &ProtocolConfig{
		MaxPathElements:   defaultMaxPathElements,
		MaxVariableLength: defaultMaxVariableLength,
		MaxNativeNetwork:  defaultMaxNativeNetwork,
	}
}

// GetConfig returns the active configuration, falling back to the
// defaults when none has been loaded.
func GetConfig() *ProtocolConfig {
	if protocolConfig == nil {
		return defaultConfig()
	}
	return protocolConfig
}

// LoadConfig decodes a TOML file of overrides. Missing keys keep their
// defaults. Only the first call has any effect.
func LoadConfig(configFile string) *ProtocolConfig {
	loadConfigStarter.Do(func() {
		config := defaultConfig()
		if configFile == "" {
			log.Debug("no protocol config file, using defaults")
		} else if _, err := toml.DecodeFile(configFile, config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile %v): %v", configFile, err)
		}
		protocolConfig = config
		log.Info("load protocol config success",
			"configFile", configFile,
			"maxPathElements", config.MaxPathElements,
			"maxVariableLength", config.MaxVariableLength)
	})
	return protocolConfig
}
