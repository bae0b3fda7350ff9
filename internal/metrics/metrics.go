package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "certgen"

const (
	NameCertificatesIssued  = "certificates_issued_total"
	NameCertificatesDeleted = "certificates_deleted_total"
	NameCertificateLookups  = "certificate_lookups_total"
	NameImagesRendered      = "images_rendered_total"
	LabelResult             = "result"
	LabelDisposition        = "disposition"
)

var CertificatesIssued = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameCertificatesIssued,
		Help:      "Certificates issued",
		Namespace: Namespace,
	},
)

var CertificatesDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameCertificatesDeleted,
		Help:      "Certificates deleted from the admin list",
		Namespace: Namespace,
	},
)

var CertificateLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCertificateLookups,
		Help:      "Validator page lookups",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)

var ImagesRendered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameImagesRendered,
		Help:      "Certificate images served",
		Namespace: Namespace,
	},
	[]string{LabelDisposition},
)
