package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	p1 := String(`abc123`)
	p2 := Float64(689.777)

	s.Equal(`abc123`, *p1)
	s.Equal(689.777, *p2)
}

func (s *pointerSuite) TestDistinctCopies() {
	v := 1.5
	p := Float64(v)
	v = 2
	s.Equal(1.5, *p)
	s.NotSame(Float64(1), Float64(1))
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
