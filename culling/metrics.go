package culling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	viewLabel = "view"
)

var (
	cullLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cull_query_latency",
		Help:    "The time to cull the quadtree against a view frustum.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16),
	}, []string{viewLabel})

	cullVisibleObjects = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cull_visible_objects",
		Help: "The number of object entries returned by the last query of a view.",
	}, []string{viewLabel})

	cullCulledNodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cull_culled_nodes",
		Help: "The number of quadtree nodes rejected together with their subtree.",
	}, []string{viewLabel})

	cullUnassignedObjects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cull_unassigned_objects",
		Help: "The number of objects outside the quadtree bounds.",
	})
)

func instrumentFrame(f Frame) {
	labels := prometheus.Labels{viewLabel: f.View}

	cullLatency.With(labels).Observe(f.Duration.Seconds())
	cullVisibleObjects.With(labels).Set(float64(len(f.Visible)))
	cullCulledNodes.With(labels).Add(float64(f.Stats.Culled))
}

func instrumentUnassigned(count int) {
	cullUnassignedObjects.Add(float64(count))
}
