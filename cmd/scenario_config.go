package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Probs []float64 `yaml:"probs"`
}

// GetScenarioConfig loads the named probability preset from a YAML scenario
// file, or nil if the file has no such preset.
func GetScenarioConfig(scenarioFilePath string, scenarioName string) *Scenario {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		logrus.Fatalf("Could not read scenario file %s: %v", scenarioFilePath, err)
	}

	// Parse YAML
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("Could not parse scenario file %s: %v", scenarioFilePath, err)
	}

	if preset, exists := cfg.Scenarios[scenarioName]; exists {
		logrus.Infof("Using preset scenario %v\n", scenarioName)
		return &preset
	}
	return nil
}
