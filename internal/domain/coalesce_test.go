package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Equal(t, "", CoalesceStr())
}

func TestFromPtrWithDefault(t *testing.T) {
	three := 3
	assert.Equal(t, 3, IntFromPtrWithDefault(7, nil, &three))
	assert.Equal(t, 7, IntFromPtrWithDefault(7, nil))

	rate := 2.5
	assert.Equal(t, 2.5, Float64FromPtrWithDefault(0, &rate))
	assert.Equal(t, 1.0, Float64FromPtrWithDefault(1, nil, nil))
}
