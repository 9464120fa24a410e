package kinds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined"
	"github.com/dmitrymomot/refined/kinds"
	"github.com/dmitrymomot/refined/rules"
)

func TestNumberArithmetic(t *testing.T) {
	objectID := refined.MustDefine("NumObjectID", rules.Between(100000, 999999))

	t.Run("Add stays within the refinement", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 123456)
		require.NoError(t, err)

		next, err := id.Add(1)
		require.NoError(t, err)
		assert.True(t, next.Equal(123457))
		assert.Same(t, objectID, next.Value().Type())

		next, err = next.Add(10)
		require.NoError(t, err)
		assert.True(t, next.Equal(123467))
	})

	t.Run("Add past the bound rejects", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 999999)
		require.NoError(t, err)

		_, err = id.Add(1)
		require.Error(t, err)
		assert.Equal(t, 999999, id.Raw())
	})

	t.Run("Sub below the bound rejects", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 100000)
		require.NoError(t, err)

		_, err = id.Sub(10)
		assert.Error(t, err)
	})

	t.Run("Mul and Div re-wrap", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 200000)
		require.NoError(t, err)

		doubled, err := id.Mul(2)
		require.NoError(t, err)
		assert.True(t, doubled.Equal(400000))

		halved, err := doubled.Div(2)
		require.NoError(t, err)
		assert.True(t, halved.Equal(200000))
	})

	t.Run("Div by zero fails before the operation", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 200000)
		require.NoError(t, err)

		_, err = id.Div(0)
		assert.ErrorIs(t, err, kinds.ErrDivisionByZero)
	})

	t.Run("Neg rejects when the refinement excludes it", func(t *testing.T) {
		id, err := kinds.NewNumber(objectID, 123456)
		require.NoError(t, err)

		_, err = id.Neg()
		assert.Error(t, err)
	})
}

func TestNumberComparisons(t *testing.T) {
	positive := refined.MustDefine("NumPositive", rules.Positive[int]())

	t.Run("comparisons return plain values", func(t *testing.T) {
		n, err := kinds.NewNumber(positive, 5)
		require.NoError(t, err)

		assert.True(t, n.Equal(5))
		assert.True(t, n.Less(10))
		assert.False(t, n.Less(3))
		assert.Equal(t, -1, n.Cmp(10))
		assert.Equal(t, 0, n.Cmp(5))
		assert.Equal(t, 1, n.Cmp(3))
	})

	t.Run("rejecting construction yields no instance", func(t *testing.T) {
		_, err := kinds.NewNumber(positive, -75)
		assert.Error(t, err)
	})
}
