package constants

import "time"

// Config reload timing
const (
	// ConfigReloadDebounce coalesces the burst of events an editor save
	// produces into one reload
	ConfigReloadDebounce = 100 * time.Millisecond

	// WatcherSettleDelay is how long tests wait for a new watcher to
	// register before touching files
	WatcherSettleDelay = 50 * time.Millisecond
)
