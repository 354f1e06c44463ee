package models

// SubscriptionFrequency is the billing cadence of a subscription.
type SubscriptionFrequency string

const (
	FrequencyWeekly  SubscriptionFrequency = "weekly"
	FrequencyMonthly SubscriptionFrequency = "monthly"
	FrequencyYearly  SubscriptionFrequency = "yearly"
)

// Subscription is a recurring expense.
type Subscription struct {
	ID        string                `json:"id"`
	OwnerID   string                `json:"owner_id"`
	Name      string                `json:"name"`
	Amount    float64               `json:"amount"`
	Frequency SubscriptionFrequency `json:"frequency"`
	CreatedAt int64                 `json:"created_at"` // epoch ms
}

// MonthlyCost normalizes the subscription's amount to a per-month figure.
func (s Subscription) MonthlyCost() float64 {
	switch s.Frequency {
	case FrequencyWeekly:
		return s.Amount * 52 / 12
	case FrequencyYearly:
		return s.Amount / 12
	default:
		return s.Amount
	}
}
