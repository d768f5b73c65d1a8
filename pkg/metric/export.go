package metric

import (
	"os"
	"sync"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

type Exporter struct {
	mutex             sync.Mutex
	invocationRecords []InvocationRecord
}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (ep *Exporter) ReportInvocation(record InvocationRecord) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	ep.invocationRecords = append(ep.invocationRecords, record)
}

func (ep *Exporter) GetInvocationRecordLen() int {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	return len(ep.invocationRecords)
}

// FailedInvocations reports how many recorded invocations exited non-zero.
func (ep *Exporter) FailedInvocations() int {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	failed := 0
	for _, record := range ep.invocationRecords {
		if record.ExitCode != 0 {
			failed++
		}
	}
	return failed
}

func (ep *Exporter) FinishAndSave(fileName string) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	f, err := os.Create(fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&ep.invocationRecords, f); err != nil {
		log.Fatal(err)
	}
	log.Debug("Exported invocation records to ", fileName)
}
