package store

// Target ENUMs
const (
	TargetStatusActive    = "active"
	TargetStatusPaused    = "paused"
	TargetStatusCompleted = "completed"
)

const (
	ExitReasonPaid             = "paid"
	ExitReasonCompleted7Days   = "completed_7_days"
	ExitReasonManual           = "manual"
	ExitReasonReferrerInactive = "referrer_inactive"
)

// Delivery ENUMs
const (
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

const (
	DeliveryEventDelivered = "delivered"
	DeliveryEventOpened    = "opened"
	DeliveryEventClicked   = "clicked"
	DeliveryEventBounced   = "bounced"
	DeliveryEventFailed    = "failed"
)

// Relance Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	CampaignTypeDefault  = "default"
	CampaignTypeFiltered = "filtered"
)

// Subscription status classification used by target filters
const (
	SubscriptionStatusAll    = "all"
	SubscriptionStatusPaid   = "paid"
	SubscriptionStatusUnpaid = "unpaid"
)

// Delivery channels
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// LoopLength is the number of days in the relance sequence.
const LoopLength = 7

// Default per-referrer limits applied on lazy config creation
const (
	DefaultMaxMessagesPerDay     = 50
	DefaultMaxTargetsPerCampaign = 500
)

// IsTerminalCampaignStatus reports whether no further transition is allowed from status.
func IsTerminalCampaignStatus(status string) bool {
	return status == CampaignStatusCompleted || status == CampaignStatusCancelled
}
