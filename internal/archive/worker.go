package archive

import (
	"context"
	"encoding/json"

	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes archive tasks and appends them to the data file.
type Worker struct {
	server *asynq.Server
	store  *Store
	log    *logger.Logger
}

// NewWorker builds the asynq consumer for the archive queue.
func NewWorker(cfg config.ArchiveConfig, store *Store, log *logger.Logger) (*Worker, error) {
	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetArchiveQueueName()
	if queue == "" {
		queue = "default"
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 1, // file appends are serialized anyway
		Queues:      map[string]int{queue: 1},
	})

	return &Worker{server: server, store: store, log: log}, nil
}

// Run processes tasks until the context is canceled.
func (w *Worker) Run() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeArchiveResult, w.handleArchiveResult)
	return w.server.Run(mux)
}

// Shutdown stops the worker gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleArchiveResult(_ context.Context, task *asynq.Task) error {
	var record Record
	if err := json.Unmarshal(task.Payload(), &record); err != nil {
		w.log.Error("invalid archive payload", "error", err)
		return err
	}

	if err := w.store.Append(record); err != nil {
		w.log.Error("archive append failed", "error", err, "id", record.ID)
		return err
	}

	w.log.Info("result archived", "id", record.ID)
	return nil
}
