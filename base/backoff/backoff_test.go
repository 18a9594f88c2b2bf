package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestExponential() {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	ts.Equal(time.Millisecond, b.NextDuration)
	ts.NoError(b.Backoff(context.Background()))
	ts.Equal(2*time.Millisecond, b.NextDuration)
	ts.NoError(b.Backoff(context.Background()))
	ts.Equal(4*time.Millisecond, b.NextDuration)
	ts.NoError(b.Backoff(context.Background()))
	ts.Equal(4*time.Millisecond, b.NextDuration)
	ts.Equal(3, b.Count())

	b.Reset()
	ts.Equal(0, b.Count())
	ts.Equal(time.Millisecond, b.NextDuration)
}

func (ts *testsuite) TestLinear() {
	b := NewLinear(time.Millisecond, 0)
	ts.Equal(time.Millisecond, b.NextDuration)
	ts.NoError(b.Backoff(context.Background()))
	ts.Equal(2*time.Millisecond, b.NextDuration)
}

func (ts *testsuite) TestConstant() {
	b := NewConstant(time.Millisecond)
	ts.NoError(b.Backoff(context.Background()))
	ts.NoError(b.Backoff(context.Background()))
	ts.Equal(time.Millisecond, b.NextDuration)
}

func (ts *testsuite) TestCanceled() {
	b := NewConstant(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ts.Equal(context.Canceled, b.Backoff(ctx))
	ts.Equal(0, b.Count())
}
