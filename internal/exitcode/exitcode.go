package exitcode

const (
	Success     = 0
	UsageError  = 1
	PolicyError = 2
	DBConnError = 3
	RecordError = 4
	ExportError = 5
)
