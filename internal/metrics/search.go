package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "racewiki"

// channel labels
const (
	ChannelSemantic = "semantic"
	ChannelKeyword  = "keyword"
)

var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Search requests by query source and outcome",
		},
		[]string{"source", "outcome"}, // source: text / image
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "End to end search resolution time",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"source"},
	)

	SearchResultsCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of merged results returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	SearchChannelFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_channel_failures_total",
			Help:      "Retrieval channel failures absorbed into empty results",
		},
		[]string{"channel", "reason"},
	)

	CaptionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "caption_requests_total",
			Help:      "Image captioning requests",
		},
		[]string{"provider", "status"},
	)

	BotRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_requests_total",
			Help:      "Requests flagged by bot defense",
		},
		[]string{"action"}, // trapped / blocked / flagged
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestDuration,
		httpRequestsTotal,
		SearchRequestsTotal,
		SearchDuration,
		SearchResultsCount,
		SearchChannelFailuresTotal,
		CaptionRequestsTotal,
		EmbeddingRequestsTotal,
		EmbeddingRequestDuration,
		EmbeddingCacheTotal,
		ReembedEntriesTotal,
		BotRequestsTotal,
	)
}
