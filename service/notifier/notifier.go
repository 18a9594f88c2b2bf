package notifier

import (
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
)

type DiscordCfg struct {
	BotKey    string
	ChannelId string
	// Resolve rewrites image uris for the embed, optional
	Resolve func(string) string
}

// sender is the part of *discordgo.Session the notifier uses
type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type nop struct{}

// NewNop drops every notification
func NewNop() domain.Notifier {
	return nop{}
}

func (nop) NotifyListed(c ctx.Ctx, nft *domain.NFT, price decimal.Decimal, currency string) error {
	return nil
}

func (nop) NotifyBurned(c ctx.Ctx, nft *domain.NFT) error {
	return nil
}
