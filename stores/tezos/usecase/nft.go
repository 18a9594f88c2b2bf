package usecase

import (
	"bytes"
	"encoding/json"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/tzkt"
)

// toNFT reports false for balances whose metadata is absent or unparsable
func toNFT(c ctx.Ctx, b tzkt.TokenBalance) (*domain.NFT, bool) {
	token := b.Token
	c = ctx.WithFields(c, log.Fields{
		"contract": token.Contract.Address,
		"tokenId":  token.TokenId,
	})
	raw := bytes.TrimSpace(token.Metadata)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.Info("skip token without metadata")
		return nil, false
	}
	meta := tzkt.TokenMetadata{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		c.WithField("err", err).Warn("skip token with malformed metadata")
		return nil, false
	}

	nft := &domain.NFT{
		Id:          domain.NFTId(token.Contract.Address, token.TokenId),
		ChainType:   domain.ChainTezos,
		Name:        firstNonEmpty(meta.Name, meta.Symbol, domain.UnnamedNFT),
		Collection:  firstNonEmpty(token.Contract.Alias, token.Contract.Address),
		Description: meta.Description,
		ImageUrl:    firstNonEmpty(meta.ArtifactUri, meta.ThumbnailUri),
		Attributes: domain.Attributes{
			ContractAddress: token.Contract.Address,
			TokenId:         token.TokenId,
			Symbol:          meta.Symbol,
		},
	}
	if err := nft.Attributes.Extra.MergeRaw(meta.Attributes); err != nil {
		c.WithField("err", err).Warn("ignore malformed metadata attributes")
	}
	return nft, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}
