package model

import "time"

// Profile holds one optional external connection id per integration
// provider for a user. It is written only by the webhook ingestion path
// (sets a field) and the connection deletion path (clears a field).
type Profile struct {
	UserID                     string     `gorm:"primaryKey;size:36" json:"user_id"`
	GoogleCalendarConnectionID *string    `gorm:"column:google_calendar_connection_id;size:255" json:"google_calendar_connection_id,omitempty"`
	HubspotConnectionID        *string    `gorm:"column:hubspot_connection_id;size:255" json:"hubspot_connection_id,omitempty"`
	NotionConnectionID         *string    `gorm:"column:notion_connection_id;size:255" json:"notion_connection_id,omitempty"`
	RazorpayConnectionID       *string    `gorm:"column:razorpay_connection_id;size:255" json:"razorpay_connection_id,omitempty"`
	StripeConnectionID         *string    `gorm:"column:stripe_connection_id;size:255" json:"stripe_connection_id,omitempty"`
	ZendeskConnectionID        *string    `gorm:"column:zendesk_connection_id;size:255" json:"zendesk_connection_id,omitempty"`
	SlackConnectionID          *string    `gorm:"column:slack_connection_id;size:255" json:"slack_connection_id,omitempty"`
	IntercomConnectionID       *string    `gorm:"column:intercom_connection_id;size:255" json:"intercom_connection_id,omitempty"`
	CreatedAt                  time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt                  time.Time  `gorm:"default:now()" json:"updated_at"`
}

// connectionFields maps profile columns to their values. Kept next to the
// struct so the registry lockstep invariant is checked in one place.
func (p *Profile) connectionFields() map[string]*string {
	return map[string]*string{
		"google_calendar_connection_id": p.GoogleCalendarConnectionID,
		"hubspot_connection_id":         p.HubspotConnectionID,
		"notion_connection_id":          p.NotionConnectionID,
		"razorpay_connection_id":        p.RazorpayConnectionID,
		"stripe_connection_id":          p.StripeConnectionID,
		"zendesk_connection_id":         p.ZendeskConnectionID,
		"slack_connection_id":           p.SlackConnectionID,
		"intercom_connection_id":        p.IntercomConnectionID,
	}
}

// ConnectionID returns the stored connection id for the given column,
// or ok=false when the column is unknown or the field is empty.
func (p *Profile) ConnectionID(column string) (id string, ok bool) {
	v, known := p.connectionFields()[column]
	if !known || v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

// ConnectionColumns returns every connection column the profile schema has.
func (p *Profile) ConnectionColumns() []string {
	fields := p.connectionFields()
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	return columns
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
