package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"gdsc-member/internal/core/errcode"
)

var memberOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "members_operations_total", Help: "Member operations by outcome code"},
	[]string{"op", "code"},
)

func init() { prometheus.MustRegister(memberOps) }

func observe(op string, c errcode.Code) { memberOps.WithLabelValues(op, c.Name).Inc() }
