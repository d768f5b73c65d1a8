package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfigParser(t *testing.T) {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}
	pathToConfigFile += "cmd/config.json"

	config := ReadConfigurationFile(pathToConfigFile)

	if config.TrainerPath != "python3" ||
		len(config.TrainerArgs) != 1 ||
		config.TrainerArgs[0] != "finetune.py" ||
		len(config.Runs) != 1 ||
		config.Runs[0] != 1 ||
		len(config.Models) != 1 ||
		config.Models[0] != "resnet101" ||
		len(config.DatasetSizes) != 1 ||
		config.DatasetSizes[0].String() != "75" ||
		len(config.ErrorRates) != 3 ||
		config.OutputPathPrefix != "data/out/sweep" ||
		config.HaltOnFailure != false ||
		config.Remote != nil {

		t.Error("Unexpected configuration read.")
	}

	// the literal numeric text ends up in the experiment names
	expectedRates := []string{"0.0", "0.095", "0.269"}
	for i, rate := range config.ErrorRates {
		if rate.String() != expectedRates[i] {
			t.Errorf("Expected error rate %s, got %s", expectedRates[i], rate.String())
		}
	}
}
