package domain

// Async webhook event names. The sample selector is keyed by these.
const (
	EventOrderCreated   = "order_created"
	EventOrderUpdated   = "order_updated"
	EventOrderCancelled = "order_cancelled"
	EventOrderFullyPaid = "order_fully_paid"
	EventOrderFulfilled = "order_fulfilled"

	EventCheckoutCreated = "checkout_created"
	EventCheckoutUpdated = "checkout_updated"

	EventCustomerCreated = "customer_created"
	EventCustomerUpdated = "customer_updated"

	EventProductCreated = "product_created"

	EventPageCreated = "page_created"
	EventPageUpdated = "page_updated"
	EventPageDeleted = "page_deleted"

	EventFulfillmentCreated = "fulfillment_created"
)
