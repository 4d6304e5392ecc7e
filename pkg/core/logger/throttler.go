package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultThrottleInterval is used when NewLogThrottler gets a zero interval.
const DefaultThrottleInterval = 5 * time.Minute

// LogThrottler downgrades repeated warnings to debug. Each key may log one
// warning per interval.
type LogThrottler struct {
	log      *zap.Logger
	interval time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewLogThrottler(log *zap.Logger, interval time.Duration) *LogThrottler {
	if interval == 0 {
		interval = DefaultThrottleInterval
	}
	return &LogThrottler{
		log:      log,
		interval: interval,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Warn logs msg as WARN once per interval per key, DEBUG otherwise.
func (t *LogThrottler) Warn(key, msg string, fields ...zap.Field) {
	if t.allow(key) {
		t.log.Warn(msg, fields...)
		return
	}
	t.log.Debug(msg, fields...)
}

func (t *LogThrottler) allow(key string) bool {
	t.mu.Lock()
	l, ok := t.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(t.interval), 1)
		t.limiters[key] = l
	}
	t.mu.Unlock()
	return l.Allow()
}
