package model

import "time"

// ConversionTask represents a single re-encode of a finished download.
type ConversionTask struct {
	ID         string
	InputPath  string
	OutputPath string
	Status     TaskStatus
	Percent    int    // 0 to 100
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}
