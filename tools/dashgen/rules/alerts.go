package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// relister operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "relister-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "relister-alerts",
					Rules: []Rule{
						{
							Alert: "RelisterDown",
							Expr:  `absent(up{job="relister"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Relister is down",
								"description": "The relister job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RelisterReadinessDown",
							Expr:  `relister_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Relister readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "RelisterHighErrorRate",
							Expr:  `relister:http_errors:rate5m / relister:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on relister",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RelisterLookupErrors",
							Expr:  `sum(rate(relister_lookups_total{outcome="error"}[5m])) > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Metadata lookup errors are elevated",
								"description": "Product metadata lookups are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "RelisterDescribeFailures",
							Expr:  `relister:describe_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "LLM description failure rate is elevated",
								"description": "Description generation is failing at more than 0.1/s for the last 5 minutes. Drafts fall back to empty descriptions.",
							},
						},
						{
							Alert: "RelisterEbayQuotaHigh",
							Expr:  `relister_ebay_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "RelisterEbayLimitReached",
							Expr:  `increase(relister_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Browse API daily quota has been exhausted. Comps fetches are rejected until reset.",
							},
						},
						{
							Alert: "RelisterNotificationFailures",
							Expr:  `increase(relister_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more batch summary webhooks have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
