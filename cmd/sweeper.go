package main

import (
	"flag"
	"os"
	"path"
	"time"

	"github.com/eth-easl/sweeper/pkg/config"
	"github.com/eth-easl/sweeper/pkg/sweep"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "cmd/config.json", "Path to sweep configuration file")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	dryRun     = flag.Bool("dryRun", false, "Log derived experiment names and trainer arguments without launching the trainer")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.ReadConfigurationFile(*configPath)
	config.CheckSweepConfig(cfg)

	if err := os.MkdirAll(path.Dir(cfg.OutputPathPrefix), 0755); err != nil {
		log.Fatal(err)
	}

	sweepID := uuid.New().String()

	logFilePath := cfg.OutputPathPrefix + "_" + sweepID + ".log"
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	var invoker sweep.Invoker
	if cfg.Remote != nil {
		sshInvoker := sweep.NewSSHInvoker(cfg.Remote, logFile)
		defer sshInvoker.Close()
		invoker = sshInvoker
	} else {
		invoker = sweep.NewLocalInvoker(logFile)
	}

	driver := sweep.NewDriver(cfg, sweepID, invoker)
	driver.DryRun = *dryRun
	driver.RunSweep()

	if *dryRun {
		return
	}

	driver.Exporter.FinishAndSave(cfg.OutputPathPrefix + "_invocations_" + sweepID + ".csv")
}
