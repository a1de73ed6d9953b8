package integration

// Provider is a key identifying a third-party integration provider.
// The set is closed: every provider maps 1:1 to a connection-id column
// on the profiles table, and no column exists without a provider here.
type Provider string

const (
	ProviderGoogleCalendar Provider = "google-calendar"
	ProviderHubspot        Provider = "hubspot"
	ProviderNotion         Provider = "notion"
	ProviderRazorpay       Provider = "razorpay"
	ProviderStripe         Provider = "stripe"
	ProviderZendesk        Provider = "zendesk"
	ProviderSlack          Provider = "slack"
	ProviderIntercom       Provider = "intercom"
)

// providerColumns is the single source of truth for the provider-to-column
// mapping. Every component that needs the mapping goes through ColumnFor;
// the map is never duplicated elsewhere.
var providerColumns = map[Provider]string{
	ProviderGoogleCalendar: "google_calendar_connection_id",
	ProviderHubspot:        "hubspot_connection_id",
	ProviderNotion:         "notion_connection_id",
	ProviderRazorpay:       "razorpay_connection_id",
	ProviderStripe:         "stripe_connection_id",
	ProviderZendesk:        "zendesk_connection_id",
	ProviderSlack:          "slack_connection_id",
	ProviderIntercom:       "intercom_connection_id",
}

// providerOrder fixes the iteration order for connection listings.
var providerOrder = []Provider{
	ProviderGoogleCalendar,
	ProviderHubspot,
	ProviderNotion,
	ProviderRazorpay,
	ProviderStripe,
	ProviderZendesk,
	ProviderSlack,
	ProviderIntercom,
}

// ColumnFor returns the profiles column holding the connection id for the
// given provider key. ok is false for unregistered providers.
func ColumnFor(provider string) (column string, ok bool) {
	column, ok = providerColumns[Provider(provider)]
	return column, ok
}

// IsRegistered reports whether the provider key is part of the closed set.
func IsRegistered(provider string) bool {
	_, ok := providerColumns[Provider(provider)]
	return ok
}

// Providers returns the registered provider keys in listing order.
func Providers() []Provider {
	out := make([]Provider, len(providerOrder))
	copy(out, providerOrder)
	return out
}
