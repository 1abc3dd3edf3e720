package database

import "database/sql"

// PoolObserver receives connection pool statistics on every monitor tick
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

// noopPoolObserver is used when metrics are disabled
type noopPoolObserver struct{}

func (noopPoolObserver) ObservePool(sql.DBStats) {}

// poolNearlyExhausted reports whether more than 80% of the allowed connections are in use
func poolNearlyExhausted(stats sql.DBStats) bool {
	if stats.MaxOpenConnections <= 0 {
		return false
	}
	return float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8
}
