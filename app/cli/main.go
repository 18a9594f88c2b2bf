package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/x-xyz/nftlister/app/bootstrap"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
)

const notAvailable = "N/A"

func main() {
	var (
		configPath = pflag.String("config", "", "path of the yaml config")
		chain      = pflag.String("chain", string(domain.ChainTezos), "chain of the wallet")
		wallet     = pflag.String("wallet", "", "wallet address to list")
		withMarket = pflag.Bool("market-data", true, "fetch market data for every NFT")
		signToken  = pflag.String("sign-token", "", "print a token for the write routes issued to the given subject and exit")
		timeout    = pflag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	pflag.Parse()

	cfg, err := bootstrap.LoadConfig(*configPath)
	if err != nil {
		fail(err)
	}
	if err := log.Init(cfg.Debug); err != nil {
		fail(err)
	}
	defer log.Sync()

	c, cancel := ctx.WithTimeout(ctx.Background(), *timeout)
	defer cancel()

	app, err := bootstrap.Build(c, cfg)
	if err != nil {
		fail(err)
	}

	if len(*signToken) > 0 {
		if app.Auth == nil {
			fail(domain.NewConfigError("auth.jwtSecret is not configured", nil))
		}
		tkn, err := app.Auth.SignToken(c, *signToken)
		if err != nil {
			fail(err)
		}
		fmt.Println(tkn)
		return
	}

	if len(*wallet) == 0 {
		fail(domain.NewValidationError("--wallet is required", nil))
	}

	nfts, err := app.NFT.GetNFTs(c, domain.ChainType(*chain), *wallet)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Found %d NFTs on %s for %s\n", len(nfts), *chain, *wallet)

	var data []domain.MarketData
	if *withMarket && len(nfts) > 0 {
		if data, err = app.NFT.GetMarketDataBatch(c, nfts); err != nil {
			fail(err)
		}
	}

	for i, nft := range nfts {
		fmt.Printf("\n%d. %s\n", i+1, nft.Name)
		fmt.Printf("   Collection: %s\n", orNA(nft.Collection))
		fmt.Printf("   Contract:   %s\n", orNA(nft.Attributes.ContractAddress))
		fmt.Printf("   Token ID:   %s\n", orNA(nft.Attributes.TokenId))
		fmt.Printf("   Image:      %s\n", orNA(app.Resolver.Resolve(nft.ImageUrl)))
		if i < len(data) {
			md := data[i]
			fmt.Printf("   Floor:      %s\n", price(md.FloorPrice, md.Currency))
			fmt.Printf("   Last sale:  %s\n", price(md.LastSalePrice, md.Currency))
			fmt.Printf("   Listings:   %s\n", count(md.CurrentListings))
			fmt.Printf("   Source:     %s\n", md.Source)
		}
	}
}

func orNA(s string) string {
	if len(s) == 0 {
		return notAvailable
	}
	return s
}

func price(v *float64, currency string) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " " + currency
}

func count(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

func fail(err error) {
	if kind, ok := domain.KindOf(err); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", kind, domain.MessageOf(err))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
