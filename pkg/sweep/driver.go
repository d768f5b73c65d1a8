package sweep

import (
	"errors"
	"os/exec"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/sweeper/pkg/config"
	"github.com/eth-easl/sweeper/pkg/metric"
)

// Driver enumerates the parameter grid and launches the trainer once per
// tuple, strictly sequentially. By default a failed invocation is reported
// and the sweep moves on to the next tuple; HaltOnFailure in the
// configuration stops the sweep at the first failure instead.
type Driver struct {
	Configuration config.SweepConfiguration
	SweepID       string
	Invoker       Invoker
	Exporter      *metric.Exporter
	DryRun        bool
}

func NewDriver(cfg config.SweepConfiguration, sweepID string, invoker Invoker) *Driver {
	return &Driver{
		Configuration: cfg,
		SweepID:       sweepID,
		Invoker:       invoker,
		Exporter:      metric.NewExporter(),
	}
}

// TrainerCommand synthesizes the argument list for one tuple. The flag
// names are the trainer's argparse surface.
func (d *Driver) TrainerCommand(tuple Tuple) TrainerCommand {
	args := append([]string{}, d.Configuration.TrainerArgs...)
	args = append(args,
		"--model", tuple.Model,
		"--error_rate", tuple.ErrorRate.String(),
		"--dataset_percentage", tuple.DatasetSize.String(),
		"--experiment_name", tuple.Name(),
	)

	return TrainerCommand{
		Path:           d.Configuration.TrainerPath,
		Args:           args,
		ExperimentName: tuple.Name(),
	}
}

func (d *Driver) RunSweep() {
	tuples := Enumerate(d.Configuration)
	log.Infof("Starting sweep %s with %d trainer invocations", d.SweepID, len(tuples))

	for _, tuple := range tuples {
		command := d.TrainerCommand(tuple)

		if d.DryRun {
			log.Info("Dry running ", command.ExperimentName)
			log.Debugf("Trainer arguments: %v", command.Args)
			continue
		}

		log.Info("Running ", command.ExperimentName)
		log.Debugf("Trainer arguments: %v", command.Args)

		start := time.Now()
		err := d.Invoker.Invoke(command)

		d.Exporter.ReportInvocation(metric.InvocationRecord{
			SweepID:        d.SweepID,
			ExperimentName: command.ExperimentName,
			Run:            tuple.Run,
			Model:          tuple.Model,
			DatasetSize:    tuple.DatasetSize.String(),
			ErrorRate:      tuple.ErrorRate.String(),
			StartedAt:      start.Unix(),
			Duration:       time.Since(start).Milliseconds(),
			ExitCode:       commandExitCode(err),
		})

		if err != nil {
			log.Errorf("Trainer invocation %s failed: %s", command.ExperimentName, err)
			if d.Configuration.HaltOnFailure {
				log.Error("Halting sweep after failed invocation")
				break
			}
			continue
		}
		log.Debug("Completed ", command.ExperimentName)
	}

	log.Info("Sweep completed")
}

// commandExitCode maps an invocation error onto the recorded exit code:
// 0 on success, the trainer's exit code when it ran and failed, -1 when it
// could not be launched at all.
func commandExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
