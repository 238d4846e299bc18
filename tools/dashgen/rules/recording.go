package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "relister-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "relister-recording",
					Rules: []Rule{
						{
							Record: "relister:http_requests:rate5m",
							Expr:   `sum(rate(relister_http_requests_total[5m]))`,
						},
						{
							Record: "relister:http_errors:rate5m",
							Expr:   `sum(rate(relister_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "relister:lookups:rate5m",
							Expr:   `sum(rate(relister_lookups_total[5m]))`,
						},
						{
							Record: "relister:listings:rate5m",
							Expr:   `rate(relister_listings_assembled_total[5m])`,
						},
						{
							Record: "relister:describe_failures:rate5m",
							Expr:   `rate(relister_describe_failures_total[5m])`,
						},
						{
							Record: "relister:ebay_api_calls:rate5m",
							Expr:   `rate(relister_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
