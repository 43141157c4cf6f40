package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// ConnectionPoolMonitor samples pool stats, pings the database and warns on exhaustion
type ConnectionPoolMonitor struct {
	sqlDB    *sql.DB
	logger   coreport.Logger
	mutex    sync.RWMutex
	cache    ConnectionPoolMetrics
	healthy  bool
	lastErr  error
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sqlDB *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		sqlDB:    sqlDB,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once and then on every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.check()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last sampled pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.cache
}

// Healthy reports the result of the last ping
func (m *ConnectionPoolMonitor) Healthy() (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.healthy, m.lastErr
}

// Ping checks the database synchronously
func (m *ConnectionPoolMonitor) Ping(ctx context.Context) error {
	if err := m.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (m *ConnectionPoolMonitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pingErr := m.Ping(ctx)
	if pingErr != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": pingErr.Error(),
		})
	}

	stats := m.sqlDB.Stats()

	m.mutex.Lock()
	m.cache = ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
	m.healthy = pingErr == nil
	m.lastErr = pingErr
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}

// PoolCollector exports database/sql pool stats to Prometheus
type PoolCollector struct {
	sqlDB *sql.DB

	open     *prometheus.Desc
	inUse    *prometheus.Desc
	idle     *prometheus.Desc
	waits    *prometheus.Desc
	waitTime *prometheus.Desc
}

var _ prometheus.Collector = (*PoolCollector)(nil)

// NewPoolCollector creates a collector reading stats on every scrape
func NewPoolCollector(sqlDB *sql.DB, namespace string) *PoolCollector {
	name := func(n string) string { return prometheus.BuildFQName(namespace, "db_pool", n) }
	return &PoolCollector{
		sqlDB:    sqlDB,
		open:     prometheus.NewDesc(name("open_connections"), "Established connections, in use and idle.", nil, nil),
		inUse:    prometheus.NewDesc(name("in_use_connections"), "Connections currently in use.", nil, nil),
		idle:     prometheus.NewDesc(name("idle_connections"), "Idle connections.", nil, nil),
		waits:    prometheus.NewDesc(name("wait_count_total"), "Connections waited for.", nil, nil),
		waitTime: prometheus.NewDesc(name("wait_seconds_total"), "Time blocked waiting for a connection.", nil, nil),
	}
}

// Describe implements prometheus.Collector
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.open
	ch <- c.inUse
	ch <- c.idle
	ch <- c.waits
	ch <- c.waitTime
}

// Collect implements prometheus.Collector
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.sqlDB.Stats()
	ch <- prometheus.MustNewConstMetric(c.open, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(stats.InUse))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stats.Idle))
	ch <- prometheus.MustNewConstMetric(c.waits, prometheus.CounterValue, float64(stats.WaitCount))
	ch <- prometheus.MustNewConstMetric(c.waitTime, prometheus.CounterValue, stats.WaitDuration.Seconds())
}
