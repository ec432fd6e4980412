package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reviewsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "friendlyeats_reviews_added_total",
		Help: "Reviews committed together with their aggregate update.",
	})
	summaries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "friendlyeats_summaries_total",
		Help: "Review summaries served, by result.",
	}, []string{"result"})
	imagesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "friendlyeats_images_uploaded_total",
		Help: "Restaurant images uploaded and referenced.",
	})
)
