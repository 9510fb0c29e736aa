package jobs

import (
	"context"
	"errors"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TailorAssignmentJob manages the scheduled assignment of tailors to orders.
// Runs every five seconds to match waiting orders with available tailors.
type TailorAssignmentJob struct {
	handler commands.AssignTailorCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTailorAssignmentJob creates a new job for assigning tailors.
// Uses AssignTailorCommandHandler to process tailor assignments every five seconds.
func NewTailorAssignmentJob(handler commands.AssignTailorCommandHandler, logger *slog.Logger) *TailorAssignmentJob {
	return &TailorAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tailor_assignment_job"),
	}
}

// Start begins the tailor assignment job to run every five seconds.
func (j *TailorAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignTailorCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeTailorsFound) {
				j.logger.ErrorContext(ctx, "Tailor assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tailor assignment job started (running every five seconds)")
	return nil
}

// Stop stops the tailor assignment job.
func (j *TailorAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tailor assignment job stopped")
}
