package refined_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined"
	"github.com/dmitrymomot/refined/rules"
)

func TestValueMap(t *testing.T) {
	objectID := refined.MustDefine("MapObjectID", rules.Between(100000, 999999))

	t.Run("re-wraps a produced value as the same refinement", func(t *testing.T) {
		v, err := objectID.New(123456)
		require.NoError(t, err)

		next, err := v.Map(func(cur int) int { return cur + 1 })
		require.NoError(t, err)
		assert.Equal(t, 123457, next.Raw())
		assert.Same(t, objectID, next.Type())
		// The receiver is untouched.
		assert.Equal(t, 123456, v.Raw())
	})

	t.Run("rejects a produced value that violates the refinement", func(t *testing.T) {
		v, err := objectID.New(999999)
		require.NoError(t, err)

		next, err := v.Map(func(cur int) int { return cur + 1 })
		require.Error(t, err)
		assert.Nil(t, next)
		assert.Equal(t, 999999, v.Raw())
	})

	t.Run("rejects a nil operation", func(t *testing.T) {
		v := objectID.MustNew(123456)
		_, err := v.Map(nil)
		assert.ErrorIs(t, err, refined.ErrUnimplemented)
	})
}

func TestValueMutate(t *testing.T) {
	words := refined.MustDefine("MutateWords", rules.WordCount(2))

	t.Run("commits an accepted candidate", func(t *testing.T) {
		v, err := words.New("hello bye")
		require.NoError(t, err)

		err = v.Mutate(func(cur string) string {
			return strings.Replace(cur, "hello", "hey", 1)
		})
		require.NoError(t, err)
		assert.Equal(t, "hey bye", v.Raw())
	})

	t.Run("rejected candidate leaves the prior value", func(t *testing.T) {
		v, err := words.New("hello bye")
		require.NoError(t, err)

		err = v.Mutate(func(cur string) string {
			return strings.Replace(cur, "bye", "hey you", 1)
		})
		require.Error(t, err)
		assert.Equal(t, "hello bye", v.Raw())
	})
}

func TestValueAttrs(t *testing.T) {
	positive := refined.MustDefine("AttrPositive", rules.Positive[int](),
		refined.WithAttr[int]("class_level", "shared"))

	t.Run("SetAttr stores and re-validates the receiver", func(t *testing.T) {
		v, err := positive.New(5)
		require.NoError(t, err)

		require.NoError(t, v.SetAttr("hello", "bye"))
		got, ok := v.Attr("hello")
		require.True(t, ok)
		assert.Equal(t, "bye", got)
	})

	t.Run("instance attributes shadow class attributes", func(t *testing.T) {
		v, err := positive.New(5)
		require.NoError(t, err)

		got, ok := v.Attr("class_level")
		require.True(t, ok)
		assert.Equal(t, "shared", got)

		require.NoError(t, v.SetAttr("class_level", "mine"))
		got, _ = v.Attr("class_level")
		assert.Equal(t, "mine", got)
	})

	t.Run("missing attribute reports absence", func(t *testing.T) {
		v := positive.MustNew(1)
		_, ok := v.Attr("nope")
		assert.False(t, ok)
	})
}

func TestValueComparisons(t *testing.T) {
	objectID := refined.MustDefine("CmpObjectID", rules.Between(100000, 999999))

	t.Run("Equal returns a plain boolean", func(t *testing.T) {
		v := objectID.MustNew(123456)
		assert.True(t, v.Equal(123456))
		assert.False(t, v.Equal(123457))
	})

	t.Run("String formats the raw value", func(t *testing.T) {
		v := objectID.MustNew(123456)
		assert.Equal(t, "123456", v.String())
	})
}
