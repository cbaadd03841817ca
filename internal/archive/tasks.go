package archive

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeArchiveResult is the asynq task type for archiving a processed result.
const TypeArchiveResult = "archive:result"

// NewArchiveResultTask wraps a record into an asynq task.
func NewArchiveResultTask(record Record) (*asynq.Task, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveResult, payload), nil
}
