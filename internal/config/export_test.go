package config

import "time"

func SetRetryDelay(l *Loader, d time.Duration) {
	l.retryDelay = d
}
