package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Completer периодически переводит записи с прошедшим временем
// окончания из active в completed. В исходной схеме статусы завершали
// вручную через админский контур, джоба автоматизирует тот же переход.
type Completer struct {
	service AppointmentService
	cron    *cron.Cron
	spec    string
	logger  Logger
}

// NewCompleter создает джобу завершения записей.
// spec — расписание в формате cron, например "*/10 * * * *".
func NewCompleter(service AppointmentService, spec string, logger Logger) *Completer {
	return &Completer{
		service: service,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger,
	}
}

// Start регистрирует и запускает джобу
func (c *Completer) Start() error {
	if _, err := c.cron.AddFunc(c.spec, c.run); err != nil {
		return err
	}

	c.cron.Start()
	c.logger.Info("Completer job started with schedule %q", c.spec)
	return nil
}

// Stop останавливает планировщик, дожидаясь текущего запуска
func (c *Completer) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	c.logger.Info("Completer job stopped")
}

func (c *Completer) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	completed, err := c.service.CompleteExpired(ctx, time.Now())
	if err != nil {
		c.logger.Error("Completer job failed: %v", err)
		return
	}

	if completed > 0 {
		c.logger.Info("Completer job marked %d appointments as completed", completed)
	}
}
