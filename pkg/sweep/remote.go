package sweep

import (
	"os"
	"strings"

	"github.com/sfreiberg/simplessh"
	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/sweeper/pkg/config"
)

// SSHInvoker runs the trainer on a remote host over an agent-authenticated
// SSH connection. The connection is held open for the whole sweep.
type SSHInvoker struct {
	remote  *config.RemoteConfiguration
	client  *simplessh.Client
	logFile *os.File
}

func NewSSHInvoker(remote *config.RemoteConfiguration, logFile *os.File) *SSHInvoker {
	log.Debugf("connecting to trainer host: %s", remote.Host)
	client, err := simplessh.ConnectWithAgent(remote.Host, remote.Username)
	if err != nil {
		log.Fatalf("Connecting to the trainer host %s failed: %s", remote.Host, err)
	}
	log.Debugf("connected to trainer host: %s", remote.Host)

	return &SSHInvoker{
		remote:  remote,
		client:  client,
		logFile: logFile,
	}
}

func (in *SSHInvoker) Invoke(command TrainerCommand) error {
	cmd := command.Path + " " + strings.Join(command.Args, " ")
	if in.remote.WorkingDir != "" {
		cmd = "cd " + in.remote.WorkingDir + "; " + cmd
	}

	log.Debug("running remote command: " + cmd)
	out, err := in.client.Exec(cmd)
	in.logFile.Write(out)

	return err
}

func (in *SSHInvoker) Close() {
	if err := in.client.Close(); err != nil {
		log.Errorf("Closing the connection to %s failed: %s", in.remote.Host, err)
	}
}
