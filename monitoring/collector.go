package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sarchlab/vmsim/vm"
)

// Prometheus metric descriptor indices and descriptor table.
const (
	faultsDesc = iota
	storeReadsDesc
	storeWritesDesc
	evictionsDesc
	cleanEvictionsDesc
	upgradesDesc
	framesOccupiedDesc
	framesTotalDesc
	accessesDesc
	numDescriptors
)

var descriptors = [numDescriptors]*prometheus.Desc{
	faultsDesc: prometheus.NewDesc(
		"vmsim_faults_total",
		"Number of page faults resolved",
		[]string{"resolver"}, nil,
	),
	storeReadsDesc: prometheus.NewDesc(
		"vmsim_store_reads_total",
		"Number of blocks read from the backing store",
		[]string{"resolver"}, nil,
	),
	storeWritesDesc: prometheus.NewDesc(
		"vmsim_store_writes_total",
		"Number of blocks written to the backing store",
		[]string{"resolver"}, nil,
	),
	evictionsDesc: prometheus.NewDesc(
		"vmsim_evictions_total",
		"Number of pages evicted",
		[]string{"resolver"}, nil,
	),
	cleanEvictionsDesc: prometheus.NewDesc(
		"vmsim_clean_evictions_total",
		"Number of evictions without a flush",
		[]string{"resolver"}, nil,
	),
	upgradesDesc: prometheus.NewDesc(
		"vmsim_permission_upgrades_total",
		"Number of faults that widened the permissions of a resident page",
		[]string{"resolver"}, nil,
	),
	framesOccupiedDesc: prometheus.NewDesc(
		"vmsim_frames_occupied",
		"Number of frames holding a page",
		[]string{"resolver"}, nil,
	),
	framesTotalDesc: prometheus.NewDesc(
		"vmsim_frames",
		"Number of frames",
		[]string{"resolver"}, nil,
	),
	accessesDesc: prometheus.NewDesc(
		"vmsim_accesses_total",
		"Number of memory accesses served",
		[]string{"mmu"}, nil,
	),
}

type collector struct {
	source   FaultSource
	accesses AccessCounter
}

// Describe implements prometheus.Collector interface.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range descriptors {
		ch <- d
	}
}

// Collect implements prometheus.Collector interface.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	if c.source != nil {
		c.collectResolver(ch)
	}

	if c.accesses != nil {
		ch <- prometheus.MustNewConstMetric(
			descriptors[accessesDesc],
			prometheus.CounterValue,
			float64(c.accesses.Accesses()),
			c.accesses.Name(),
		)
	}
}

func (c *collector) collectResolver(ch chan<- prometheus.Metric) {
	name := c.source.Name()
	stats := c.source.Statistics()

	counters := []struct {
		desc  int
		value uint64
	}{
		{faultsDesc, stats.Faults},
		{storeReadsDesc, stats.StoreReads},
		{storeWritesDesc, stats.StoreWrites},
		{evictionsDesc, stats.Evictions},
		{cleanEvictionsDesc, stats.CleanEvictions},
		{upgradesDesc, stats.Upgrades},
	}

	for _, counter := range counters {
		ch <- prometheus.MustNewConstMetric(
			descriptors[counter.desc],
			prometheus.CounterValue,
			float64(counter.value),
			name,
		)
	}

	frames := c.source.Frames()

	occupied := 0
	for _, p := range frames {
		if p != vm.NoPage {
			occupied++
		}
	}

	ch <- prometheus.MustNewConstMetric(
		descriptors[framesOccupiedDesc],
		prometheus.GaugeValue,
		float64(occupied),
		name,
	)
	ch <- prometheus.MustNewConstMetric(
		descriptors[framesTotalDesc],
		prometheus.GaugeValue,
		float64(len(frames)),
		name,
	)
}
