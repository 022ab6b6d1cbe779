package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
	"respire/internal/structures"

	"github.com/google/uuid"
)

type BountyLedgerServiceInterface interface {
	List(ctx context.Context) []models.Bounty
	All(ctx context.Context) []models.Bounty
	Add(ctx context.Context, title string, cost float64) (models.Bounty, error)
	Redeem(ctx context.Context, id string, creditsEarned int64) (models.RedeemResult, error)
	Delete(ctx context.Context, id string) error
}

type BountyLedgerService struct {
	store          interfaces.KeyValueStoreInterface
	keys           storage.Keys
	guard          *WriteGuard
	clock          Clock
	logger         providers.Logger
	metrics        providers.MetricsProviderInterface
	refundOnDelete bool
}

func NewBountyLedgerService(conf *structures.Config, store interfaces.KeyValueStoreInterface, keys storage.Keys, guard *WriteGuard, clock Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) BountyLedgerServiceInterface {
	return &BountyLedgerService{
		store:          store,
		keys:           keys,
		guard:          guard,
		clock:          clock,
		logger:         logger,
		metrics:        metrics,
		refundOnDelete: conf.Ledger.RefundOnDelete,
	}
}

// All returns every stored bounty in insertion order, archived included.
func (s *BountyLedgerService) All(ctx context.Context) []models.Bounty {
	bounties, err := loadList[models.Bounty](ctx, s.store, s.keys.Bounties)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to fetch bounties: %s", err)
		return []models.Bounty{}
	}
	return bounties
}

// List returns the bounties shown to the user.
func (s *BountyLedgerService) List(ctx context.Context) []models.Bounty {
	return models.VisibleBounties(s.All(ctx))
}

func (s *BountyLedgerService) Add(ctx context.Context, title string, cost float64) (models.Bounty, error) {
	title, err := models.ValidateBountyInput(title, cost)
	if err != nil {
		return models.Bounty{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Bounty{}, fmt.Errorf("generate bounty id: %w", err)
	}
	bounty := models.Bounty{
		ID:        id.String(),
		Title:     title,
		Cost:      cost,
		DateAdded: s.clock.Now().UnixMilli(),
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	bounties, err := loadList[models.Bounty](ctx, s.store, s.keys.Bounties)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to add bounty: %s", err)
		return models.Bounty{}, err
	}
	bounties = append(bounties, bounty)
	if err := s.save(ctx, bounties); err != nil {
		return models.Bounty{}, err
	}
	return bounty, nil
}

// Redeem flips a bounty to redeemed when the credits still available after
// earlier redemptions cover its cost. Available credits are recomputed from
// the stored list under the write guard. Not enough credits is a denied
// result, not an error, and redeeming twice never debits twice.
func (s *BountyLedgerService) Redeem(ctx context.Context, id string, creditsEarned int64) (models.RedeemResult, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	bounties, err := loadList[models.Bounty](ctx, s.store, s.keys.Bounties)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to redeem bounty: %s", err)
		return models.RedeemResult{}, err
	}

	idx := models.FindBounty(bounties, id)
	if idx < 0 || bounties[idx].Archived {
		return models.RedeemResult{}, fmt.Errorf("%w: bounty %s", models.ErrNotFound, id)
	}

	available := models.AvailableCredits(creditsEarned, bounties)
	result := models.RedeemResult{Bounty: bounties[idx], AvailableCredits: available}

	switch {
	case bounties[idx].Redeemed:
		result.Redeemed = true
		result.Outcome = models.RedeemAlreadyRedeemed
	case !models.CanAfford(available, bounties[idx]):
		result.Outcome = models.RedeemInsufficientCredits
	default:
		bounties[idx].Redeemed = true
		if err := s.save(ctx, bounties); err != nil {
			return models.RedeemResult{}, err
		}
		result.Bounty = bounties[idx]
		result.Redeemed = true
		result.Outcome = models.RedeemOK
		result.AvailableCredits = models.AvailableCredits(creditsEarned, bounties)
	}

	s.metrics.IncRedemptions(string(result.Outcome))
	return result, nil
}

// Delete removes a bounty unconditionally. With refundOnDelete disabled a
// redeemed bounty is archived instead, so its cost stays spent.
func (s *BountyLedgerService) Delete(ctx context.Context, id string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	bounties, err := loadList[models.Bounty](ctx, s.store, s.keys.Bounties)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to delete bounty: %s", err)
		return err
	}

	idx := models.FindBounty(bounties, id)
	if idx < 0 || bounties[idx].Archived {
		return fmt.Errorf("%w: bounty %s", models.ErrNotFound, id)
	}

	if bounties[idx].Redeemed && !s.refundOnDelete {
		bounties[idx].Archived = true
	} else {
		bounties = append(bounties[:idx], bounties[idx+1:]...)
	}
	return s.save(ctx, bounties)
}

func (s *BountyLedgerService) save(ctx context.Context, bounties []models.Bounty) error {
	if err := saveList(ctx, s.store, s.keys.Bounties, bounties); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to save bounties: %s", err)
		return err
	}
	s.metrics.SetRecordsTotal("bounties", len(bounties))
	return nil
}
