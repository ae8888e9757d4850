package delete_workplace

import "context"

type WorkplaceService interface {
	Delete(ctx context.Context, id int64) (deactivated bool, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
