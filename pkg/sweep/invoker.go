package sweep

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"sync"

	log "github.com/sirupsen/logrus"
)

// TrainerCommand is one fully-synthesized trainer invocation.
type TrainerCommand struct {
	Path           string
	Args           []string
	ExperimentName string
}

// Invoker launches the trainer once and blocks until it exits. A non-nil
// error means the trainer could not be started or exited non-zero.
type Invoker interface {
	Invoke(command TrainerCommand) error
}

type localInvoker struct {
	logFile *os.File
}

func NewLocalInvoker(logFile *os.File) Invoker {
	return &localInvoker{logFile: logFile}
}

func (in *localInvoker) Invoke(command TrainerCommand) error {
	cmd := exec.Command(command.Path, command.Args...)

	stdout, _ := cmd.StdoutPipe()
	stderr, _ := cmd.StderrPipe()

	if err := cmd.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go in.logTrainerStdOutput(stdout, &wg)
	go in.logTrainerStdError(stderr, &wg)

	err := cmd.Wait()
	// both pipes hit EOF once the trainer exits
	wg.Wait()
	return err
}

func (in *localInvoker) logTrainerStdOutput(stdPipe io.ReadCloser, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(stdPipe)
	for scanner.Scan() {
		m := scanner.Text()
		// write to log file
		in.logFile.WriteString(m + "\n")

		if m == "" {
			continue
		}
		log.Debug(m)
	}
}

func (in *localInvoker) logTrainerStdError(stdPipe io.ReadCloser, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(stdPipe)
	for scanner.Scan() {
		m := scanner.Text()
		// write to log file
		in.logFile.WriteString(m + "\n")

		if m == "" {
			continue
		}
		log.Error(m)
	}
}
