package model

import "testing"

func TestTaskStatusString(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{TaskStatusPending, "Pending"},
		{TaskStatusStarting, "Starting"},
		{TaskStatusDownloading, "Downloading"},
		{TaskStatusConverting, "Converting"},
		{TaskStatusCompleted, "Completed"},
		{TaskStatusError, "Error"},
		{TaskStatusStopping, "Stopping"},
		{TaskStatusStopped, "Stopped"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("TaskStatus.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestTaskStatusIsActive(t *testing.T) {
	active := []TaskStatus{TaskStatusStarting, TaskStatusDownloading, TaskStatusConverting, TaskStatusStopping}
	inactive := []TaskStatus{TaskStatusPending, TaskStatusCompleted, TaskStatusError, TaskStatusStopped}

	for _, status := range active {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
	}

	for _, status := range inactive {
		if status.IsActive() {
			t.Errorf("Expected %s to not be active", status)
		}
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	finished := []TaskStatus{TaskStatusCompleted, TaskStatusError, TaskStatusStopped}
	unfinished := []TaskStatus{TaskStatusPending, TaskStatusStarting, TaskStatusDownloading, TaskStatusConverting, TaskStatusStopping}

	for _, status := range finished {
		if !status.IsFinished() {
			t.Errorf("Expected %s to be finished", status)
		}
	}

	for _, status := range unfinished {
		if status.IsFinished() {
			t.Errorf("Expected %s to not be finished", status)
		}
	}
}
