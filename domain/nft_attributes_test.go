package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeRaw(t *testing.T) {
	req := require.New(t)

	e := ExtraAttributes{}
	req.NoError(e.MergeRaw(json.RawMessage(`{"b":1,"a":"x","tokenId":"9"}`)))
	req.Equal([]string{"b", "a"}, e.Keys())

	e = ExtraAttributes{}
	req.NoError(e.MergeRaw(json.RawMessage(`[{"name":"Eyes","value":"red"},{"trait_type":"Hat","value":2},{"value":"orphan"}]`)))
	req.Equal([]string{"Eyes", "Hat"}, e.Keys())
	v, ok := e.Get("Eyes")
	req.True(ok)
	req.Equal("red", v)

	e = ExtraAttributes{}
	req.NoError(e.MergeRaw(nil))
	req.NoError(e.MergeRaw(json.RawMessage(`null`)))
	req.Equal(0, e.Len())

	req.ErrorIs(e.MergeRaw(json.RawMessage(`"str"`)), ErrInvalidJsonFormat)
}
