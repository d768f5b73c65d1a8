package metric

type InvocationRecord struct {
	SweepID        string `csv:"sweep_id"`
	ExperimentName string `csv:"experiment"`
	Run            int    `csv:"run"`
	Model          string `csv:"model"`
	DatasetSize    string `csv:"dataset_size"`
	ErrorRate      string `csv:"error_rate"`
	StartedAt      int64  `csv:"started_at"`
	Duration       int64  `csv:"duration_ms"`
	ExitCode       int    `csv:"exit_code"`
}
