package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain"
)

type discord struct {
	channelId string
	resolve   func(string) string
	session   sender
	met       metrics.Service
}

// NewDiscord returns a nop notifier when no bot key is configured
func NewDiscord(cfg *DiscordCfg) (domain.Notifier, error) {
	if len(cfg.BotKey) == 0 || len(cfg.ChannelId) == 0 {
		return NewNop(), nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return newDiscord(session, cfg), nil
}

func newDiscord(session sender, cfg *DiscordCfg) *discord {
	resolve := cfg.Resolve
	if resolve == nil {
		resolve = func(s string) string { return s }
	}
	return &discord{
		channelId: cfg.ChannelId,
		resolve:   resolve,
		session:   session,
		met:       metrics.New("notifier"),
	}
}

func (d *discord) NotifyListed(c ctx.Ctx, nft *domain.NFT, price decimal.Decimal, currency string) error {
	fields := d.tokenFields(nft)
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Price", Value: fmt.Sprintf("%s %s", price.String(), currency)})
	return d.send(c, "listed", &discordgo.MessageEmbed{
		Title:       "Item listed!",
		Description: nft.Name,
		Image:       d.image(nft),
		Fields:      fields,
	})
}

func (d *discord) NotifyBurned(c ctx.Ctx, nft *domain.NFT) error {
	return d.send(c, "burned", &discordgo.MessageEmbed{
		Title:       "Item burned",
		Description: nft.Name,
		Image:       d.image(nft),
		Fields:      d.tokenFields(nft),
	})
}

func (d *discord) tokenFields(nft *domain.NFT) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{Name: "Chain", Value: nft.ChainType.String()},
		{Name: "Contract", Value: nft.Attributes.ContractAddress},
		{Name: "Token", Value: nft.Attributes.TokenId},
	}
}

func (d *discord) image(nft *domain.NFT) *discordgo.MessageEmbedImage {
	if len(nft.ImageUrl) == 0 {
		return nil
	}
	return &discordgo.MessageEmbedImage{URL: d.resolve(nft.ImageUrl)}
}

func (d *discord) send(c ctx.Ctx, event string, msg *discordgo.MessageEmbed) error {
	if _, err := d.session.ChannelMessageSendEmbed(d.channelId, msg); err != nil {
		d.met.BumpSum("send.err", 1, "event", event)
		c.WithField("err", err).Warn("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
