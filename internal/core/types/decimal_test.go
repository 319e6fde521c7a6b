package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualMoney(t *testing.T) {
	a := MoneyPtr(MustMoney("1.5"))
	b := MoneyPtr(MustMoney("1.50"))

	assert.True(t, EqualMoney(a, b))
	assert.True(t, EqualMoney(nil, nil))
	assert.False(t, EqualMoney(a, nil))
	assert.False(t, EqualMoney(a, MoneyPtr(MustMoney("1.51"))))
}

func TestEqualPtr(t *testing.T) {
	assert.True(t, EqualPtr(Ptr("x"), Ptr("x")))
	assert.False(t, EqualPtr(Ptr("x"), Ptr("y")))
	assert.False(t, EqualPtr(Ptr("x"), nil))
	assert.True(t, EqualPtr[string](nil, nil))
}

func TestClonePtr(t *testing.T) {
	src := Ptr("x")
	dup := ClonePtr(src)

	*dup = "y"
	assert.Equal(t, "x", *src)
	assert.Nil(t, ClonePtr[string](nil))
}
