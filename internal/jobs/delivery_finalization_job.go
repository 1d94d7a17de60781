package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryFinalizationJob manages the scheduled finalization sweep over
// active routes. Runs every minute to finalize routes whose orders have all
// reached a terminal outcome.
type DeliveryFinalizationJob struct {
	handler commands.FinalizeDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryFinalizationJob creates a new job for the finalization sweep.
// Uses FinalizeDeliveriesCommandHandler to close out completed routes.
func NewDeliveryFinalizationJob(
	handler commands.FinalizeDeliveriesCommandHandler,
	logger *slog.Logger,
) *DeliveryFinalizationJob {
	return &DeliveryFinalizationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_finalization_job"),
	}
}

// Start begins the finalization sweep to run every minute.
func (j *DeliveryFinalizationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewFinalizeDeliveriesCommand()

		finalized, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery finalization sweep failed", "error", handleErr)
			return
		}

		if finalized > 0 {
			j.logger.InfoContext(ctx, "Delivery finalization sweep closed routes", "finalized", finalized)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery finalization job started (running every minute)")
	return nil
}

// Stop stops the finalization sweep.
func (j *DeliveryFinalizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery finalization job stopped")
}
