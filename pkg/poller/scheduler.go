package poller

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Scheduler runs fn every d until the returned stop func is called. The first
// run happens one interval after scheduling.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// CronScheduler schedules on robfig/cron with a constant-delay schedule.
// cron.Every rounds d down to whole seconds, with a one second minimum.
type CronScheduler struct{}

func (CronScheduler) Every(d time.Duration, fn func()) func() {
	logger := cronLogger{zl: log.Logger}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	c.Schedule(cron.Every(d), cron.FuncJob(fn))
	c.Start()
	return func() {
		<-c.Stop().Done()
	}
}

// cronLogger routes cron's internal logging through zerolog.
type cronLogger struct {
	zl zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.zl.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.zl.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
