package observability

const (
	MItemsAdded       MetricKey = "ordering_items_added_total"
	MCheckoutRequests MetricKey = "ordering_checkout_requests_total"
	MCheckoutDuration MetricKey = "ordering_checkout_duration_seconds"
	MCheckoutAmount   MetricKey = "ordering_checkout_amount"
)
