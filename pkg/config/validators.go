package config

import (
	log "github.com/sirupsen/logrus"
)

// Check general sweep configuration before any trainer is launched
func CheckSweepConfig(cfg SweepConfiguration) {
	log.Debug("Checking sweep configuration")

	if cfg.TrainerPath == "" {
		log.Fatal("TrainerPath not found in sweep configuration")
	}
	if len(cfg.Runs) == 0 {
		log.Fatal("No run indices found in sweep configuration")
	}
	if len(cfg.Models) == 0 {
		log.Fatal("No models found in sweep configuration")
	}
	if len(cfg.DatasetSizes) == 0 {
		log.Fatal("No dataset sizes found in sweep configuration")
	}
	if len(cfg.ErrorRates) == 0 {
		log.Fatal("No error rates found in sweep configuration")
	}
	if cfg.OutputPathPrefix == "" {
		log.Fatal("Missing OutputPathPrefix in sweep configuration")
	}
	if cfg.Remote != nil {
		if cfg.Remote.Host == "" {
			log.Fatal("Remote execution requires a host")
		}
		if cfg.Remote.Username == "" {
			log.Fatal("Remote execution requires a username")
		}
	}

	log.Debug("Sweep configuration is valid")
}
