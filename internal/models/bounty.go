package models

import (
	"fmt"
	"strings"
)

// Bounty is a user-defined reward. Redeemed only ever flips to true.
// Archived is set instead of removal when a redeemed bounty is deleted
// under the no-refund policy; archived bounties stay counted as spent.
type Bounty struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Cost      float64 `json:"cost"`
	Redeemed  bool    `json:"redeemed"`
	DateAdded int64   `json:"dateAdded"`
	Archived  bool    `json:"archived,omitempty"`
}

// RedeemOutcome tells a denied redemption apart from a performed one.
type RedeemOutcome string

const (
	RedeemOK                  RedeemOutcome = "redeemed"
	RedeemAlreadyRedeemed     RedeemOutcome = "already_redeemed"
	RedeemInsufficientCredits RedeemOutcome = "insufficient_credits"
)

type RedeemResult struct {
	Bounty           Bounty        `json:"bounty"`
	Redeemed         bool          `json:"redeemed"`
	Outcome          RedeemOutcome `json:"outcome"`
	AvailableCredits float64       `json:"availableCredits"`
}

// ValidateBountyInput trims the title and checks the cost.
func ValidateBountyInput(title string, cost float64) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: bounty title is empty", ErrInvalidInput)
	}
	if !ValidAmount(cost) {
		return "", fmt.Errorf("%w: bounty cost must be a finite number >= 0", ErrInvalidInput)
	}
	return title, nil
}

// SpentCredits sums the cost of every redeemed bounty, archived ones included.
func SpentCredits(bounties []Bounty) float64 {
	var spent float64
	for _, b := range bounties {
		if b.Redeemed {
			spent += b.Cost
		}
	}
	return spent
}

// AvailableCredits is recomputed from the live list on every read; no
// running balance is stored.
func AvailableCredits(creditsEarned int64, bounties []Bounty) float64 {
	return float64(creditsEarned) - SpentCredits(bounties)
}

func CanAfford(available float64, b Bounty) bool {
	return available >= b.Cost
}

func FindBounty(bounties []Bounty, id string) int {
	for i := range bounties {
		if bounties[i].ID == id {
			return i
		}
	}
	return -1
}

// VisibleBounties drops archived entries, preserving insertion order.
func VisibleBounties(bounties []Bounty) []Bounty {
	out := make([]Bounty, 0, len(bounties))
	for _, b := range bounties {
		if !b.Archived {
			out = append(out, b)
		}
	}
	return out
}
