package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type statter interface {
	Stat() *pgxpool.Stat
}

// PoolCollector exports pgxpool statistics. Values are read on every scrape.
type PoolCollector struct {
	pool statter

	total, idle, acquired, max           *prometheus.Desc
	acquires, emptyAcquires, acquireWait *prometheus.Desc
}

// NewPoolCollector creates a collector for pool; register it on a prometheus.Registerer.
func NewPoolCollector(pool statter) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("company_directory_db_pool_"+name, help, nil, nil)
	}
	return &PoolCollector{
		pool:          pool,
		total:         desc("connections", "Open connections in the pool."),
		idle:          desc("idle_connections", "Idle connections in the pool."),
		acquired:      desc("acquired_connections", "Connections currently checked out."),
		max:           desc("max_connections", "Configured pool size."),
		acquires:      desc("acquires_total", "Successful connection acquires."),
		emptyAcquires: desc("empty_acquires_total", "Acquires that had to wait for a connection."),
		acquireWait:   desc("acquire_wait_seconds_total", "Time spent waiting to acquire connections."),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.idle
	ch <- c.acquired
	ch <- c.max
	ch <- c.acquires
	ch <- c.emptyAcquires
	ch <- c.acquireWait
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.emptyAcquires, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.acquireWait, prometheus.CounterValue, s.AcquireDuration().Seconds())
}
