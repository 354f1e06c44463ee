// Package money implements the subscription-tracking commands.
package money

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/validation"
)

type SubCmd struct {
	Add    SubAddCmd    `cmd:"" help:"Add a subscription."`
	List   SubListCmd   `cmd:"" help:"List subscriptions with the monthly total."`
	Delete SubDeleteCmd `cmd:"" help:"Delete a subscription."`
}

type SubAddCmd struct {
	Name      string  `arg:"" help:"Subscription name."`
	Amount    float64 `arg:"" help:"Billed amount."`
	Frequency string  `short:"f" help:"Billing cadence (weekly|monthly|yearly)." default:"monthly"`
}

func (c *SubAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("name", c.Name); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("amount", c.Amount); err != nil {
		return err
	}
	frequency := models.SubscriptionFrequency(strings.ToLower(c.Frequency))
	if err := validation.ValidateFrequency(frequency); err != nil {
		return err
	}

	sub := models.Subscription{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Name:      c.Name,
		Amount:    c.Amount,
		Frequency: frequency,
		CreatedAt: cli.NowMillis(),
	}
	if err := ctx.Store.AddSubscription(sub); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Added subscription: %s (%.2f %s)\n", sub.Name, sub.Amount, sub.Frequency)
	return nil
}

type SubListCmd struct{}

func (c *SubListCmd) Run(ctx *cli.Context) error {
	subs, err := ctx.Store.GetSubscriptions(ctx.Owner)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions.")
		return nil
	}

	var total float64
	for _, s := range subs {
		monthly := s.MonthlyCost()
		total += monthly
		fmt.Printf("%-36s  %-20s  %8.2f %-8s  %8.2f/mo\n",
			s.ID, s.Name, s.Amount, s.Frequency, monthly)
	}
	fmt.Printf("\nMonthly total: %.2f\n", total)
	return nil
}

type SubDeleteCmd struct {
	ID string `arg:"" help:"Subscription ID."`
}

func (c *SubDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteSubscription(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted subscription.")
	return nil
}
