package ens

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
)

type ensSuite struct {
	suite.Suite

	calls map[string]int
	im    *impl
}

func (s *ensSuite) SetupTest() {
	s.calls = map[string]int{}
	s.im = newWithResolver(func(name string) (common.Address, error) {
		s.calls[name]++
		switch name {
		case "machibigbrother.eth":
			return common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872"), nil
		case "broken.eth":
			return common.Address{}, errors.New("rpc down")
		}
		return common.Address{}, errors.New("unregistered name")
	}, nil)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestResolveIsCached() {
	for i := 0; i < 2; i++ {
		res, err := s.im.Resolve(ctx.Background(), "machibigbrother.eth")
		s.NoError(err)
		s.Equal("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872", res)
	}
	s.Equal(1, s.calls["machibigbrother.eth"])
}

func (s *ensSuite) TestResolveWallet() {
	res, err := s.im.ResolveWallet(ctx.Background(), "0x020ca66c30bec2c4fe3861a94e4db4a498a35872")
	s.NoError(err)
	s.Equal("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872", res)
	s.Equal(0, len(s.calls))

	res, err = s.im.ResolveWallet(ctx.Background(), "machibigbrother.eth")
	s.NoError(err)
	s.Equal("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872", res)

	_, err = s.im.ResolveWallet(ctx.Background(), "nobody.eth")
	s.True(errors.Is(err, domain.ErrValidation))

	_, err = s.im.ResolveWallet(ctx.Background(), "not-an-address")
	s.True(errors.Is(err, domain.ErrValidation))

	_, err = s.im.ResolveWallet(ctx.Background(), "broken.eth")
	s.True(errors.Is(err, domain.ErrFetch))
}
