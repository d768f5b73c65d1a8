package config

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// RemoteConfiguration describes the host on which the trainer is executed
// when the sweep is not run locally.
type RemoteConfiguration struct {
	Host       string `json:"Host"`
	Username   string `json:"Username"`
	WorkingDir string `json:"WorkingDir"`
}

type SweepConfiguration struct {
	TrainerPath string   `json:"TrainerPath"`
	TrainerArgs []string `json:"TrainerArgs"`

	// The numeric lists stay json.Number so the derived experiment name
	// reproduces the configured literal exactly (an error rate of 0.0
	// must appear as "error_0.0", not "error_0").
	Runs         []int         `json:"Runs"`
	Models       []string      `json:"Models"`
	DatasetSizes []json.Number `json:"DatasetSizes"`
	ErrorRates   []json.Number `json:"ErrorRates"`

	OutputPathPrefix string `json:"OutputPathPrefix"`
	HaltOnFailure    bool   `json:"HaltOnFailure"`

	Remote *RemoteConfiguration `json:"Remote,omitempty"`
}

func ReadConfigurationFile(path string) SweepConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var config SweepConfiguration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		log.Fatal(err)
	}

	return config
}
