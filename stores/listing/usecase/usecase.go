package usecase

import (
	"github.com/google/uuid"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain"
)

const (
	msgApprovalFailed = "Failed to approve marketplace operator"
	msgListingFailed  = "Failed to create listing on marketplace"
	msgBurnFailed     = "Failed to burn token"
)

type impl struct {
	confirmations int
	met           metrics.Service
}

type ListingUseCaseCfg struct {
	// Confirmations awaited after every submitted operation, at least 1
	Confirmations int
}

func New(cfg *ListingUseCaseCfg) domain.ListingUsecase {
	confirmations := cfg.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}
	return &impl{
		confirmations: confirmations,
		met:           metrics.New("listing"),
	}
}

type tracker struct {
	receipt *domain.ListingReceipt
	c       ctx.Ctx
}

func (t *tracker) to(state domain.ListingState) {
	t.receipt.State = state
	t.receipt.Transitions = append(t.receipt.Transitions, state)
	t.c.WithField("state", state.String()).Debug("listing state changed")
}

func (im *impl) List(c ctx.Ctx, backend domain.ListingBackend, marketplace string, req domain.ListingRequest) (*domain.ListingReceipt, error) {
	if len(marketplace) == 0 {
		return nil, domain.ErrMarketplaceNotConfigured
	}
	if len(req.AssetContract) == 0 || len(req.TokenId) == 0 {
		return nil, domain.ErrMissingTokenIdentity
	}
	if req.Price == nil || req.Price.Sign() <= 0 {
		return nil, domain.NewValidationError("Price must be positive", nil)
	}

	receipt := &domain.ListingReceipt{
		Id:          uuid.NewString(),
		State:       domain.ListingStateIdle,
		Transitions: []domain.ListingState{domain.ListingStateIdle},
	}
	c = ctx.WithFields(c, log.Fields{
		"listingId":     receipt.Id,
		"assetContract": req.AssetContract,
		"tokenId":       req.TokenId,
		"seller":        req.Seller,
		"marketplace":   marketplace,
	})
	t := &tracker{receipt: receipt, c: c}
	defer im.met.BumpTime("list.time").End()

	fail := func(err error) (*domain.ListingReceipt, error) {
		t.to(domain.ListingStateFailed)
		kind, _ := domain.KindOf(err)
		im.met.BumpSum("list.err", 1, "kind", string(kind))
		c.WithField("err", err).Error("listing failed")
		return receipt, err
	}

	t.to(domain.ListingStateCheckingOperator)
	authorized, err := backend.IsOperator(c, req, marketplace)
	if err != nil {
		return fail(domain.NewApprovalError(msgApprovalFailed, err))
	}

	if authorized {
		c.Info("marketplace already authorized, skip approval")
	} else {
		t.to(domain.ListingStateApprovingOperator)
		hash, err := backend.AddOperator(c, req, marketplace)
		if err != nil {
			return fail(domain.NewApprovalError(msgApprovalFailed, err))
		}
		receipt.ApprovalTx = hash
		c.WithField("hash", hash).Info("approval submitted")
		if err := backend.WaitConfirmation(c, hash, im.confirmations); err != nil {
			return fail(domain.NewApprovalError(msgApprovalFailed, err))
		}
	}

	t.to(domain.ListingStateCreatingListing)
	hash, err := backend.CreateListing(c, marketplace, req)
	if err != nil {
		return fail(domain.NewListingError(msgListingFailed, err))
	}
	receipt.ListingTx = hash
	c.WithField("hash", hash).Info("listing submitted")
	if err := backend.WaitConfirmation(c, hash, im.confirmations); err != nil {
		return fail(domain.NewListingError(msgListingFailed, err))
	}

	t.to(domain.ListingStateConfirmed)
	im.met.BumpSum("list.confirmed", 1)
	return receipt, nil
}

func (im *impl) Burn(c ctx.Ctx, backend domain.BurnBackend, nft *domain.NFT, owner string) (domain.OperationHash, error) {
	if !nft.IsListable() {
		return "", domain.ErrMissingTokenIdentity
	}
	c = ctx.WithFields(c, log.Fields{
		"contractAddress": nft.Attributes.ContractAddress,
		"tokenId":         nft.Attributes.TokenId,
		"owner":           owner,
	})
	defer im.met.BumpTime("burn.time").End()

	caps, err := backend.Capabilities(c, nft.Attributes.ContractAddress)
	if err != nil {
		c.WithField("err", err).Error("backend.Capabilities failed")
		return "", domain.NewBurnError("Failed to resolve contract capabilities", err)
	}
	method, ok := caps.BurnMethod()
	if !ok {
		return "", domain.NewUnsupportedOperationError("Contract supports neither burn nor transfer")
	}

	hash, err := backend.Burn(c, nft, owner, method)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "method": method}).Error("backend.Burn failed")
		return "", domain.NewBurnError(msgBurnFailed, err)
	}
	c.WithFields(log.Fields{"hash": hash, "method": method}).Info("burn submitted")
	if err := backend.WaitConfirmation(c, hash, im.confirmations); err != nil {
		c.WithFields(log.Fields{"err": err, "hash": hash}).Error("backend.WaitConfirmation failed")
		return hash, domain.NewBurnError(msgBurnFailed, err)
	}

	im.met.BumpSum("burn.confirmed", 1, "method", string(method))
	return hash, nil
}
