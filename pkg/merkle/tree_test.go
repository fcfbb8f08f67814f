package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeUpdateBucketChangesRoot(t *testing.T) {
	tree, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.NumLeaves())

	before := tree.Root()
	require.NoError(t, tree.UpdateBucket(0, HashKV(42, []byte("hi"))))
	after := tree.Root()

	assert.NotEmpty(t, after)
	assert.NotEqual(t, before, after)
}

func TestTreeRejectsBadSize(t *testing.T) {
	_, err := New(3)
	assert.Error(t, err)

	_, err = New(1024)
	assert.NoError(t, err)
}

func TestTreeRejectsOutOfRangeBucket(t *testing.T) {
	tree, err := New(2)
	require.NoError(t, err)
	assert.Error(t, tree.UpdateBucket(5, "x"))
}

func TestTreeRootChangesIndependentlyPerBucket(t *testing.T) {
	tree, err := New(4)
	require.NoError(t, err)

	require.NoError(t, tree.UpdateBucket(0, "hash0"))
	root1 := tree.Root()
	assert.NotEmpty(t, root1)

	require.NoError(t, tree.UpdateBucket(1, "hash1"))
	root2 := tree.Root()
	assert.NotEqual(t, root1, root2)
}

func TestBucketForIsStable(t *testing.T) {
	assert.Equal(t, BucketFor(10, 4), BucketFor(10, 4))

	b := BucketFor(10, 4)
	assert.GreaterOrEqual(t, b, 0)
	assert.Less(t, b, 4)
}
