package waug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyPassesOnFreshTree(t *testing.T) {
	tr := newScenarioTree()
	tr.ApplyUpdates(insertOps(rangeInts(1, 300)...), BatchInsertsOnly)
	require.NoError(t, tr.Verify())
}

func TestVerifyPassesOnEmptyTree(t *testing.T) {
	tr := newScenarioTree()
	require.NoError(t, tr.Verify())
}

func TestVerifyDetectsCorruptedSlotWeight(t *testing.T) {
	tr := newScenarioTree()
	tr.ApplyUpdates(insertOps(rangeInts(1, 300)...), BatchInsertsOnly)

	in, ok := tr.root.(*innerNode[int])
	require.True(t, ok, "300 keys at k=b=8 must build an inner root")
	in.slot[0].weight++

	err := tr.Verify()
	require.Error(t, err)
	var verr *VerifyError
	require.ErrorAs(t, err, &verr)
}

func TestVerifyDetectsOutOfOrderRouter(t *testing.T) {
	tr := newScenarioTree()
	tr.ApplyUpdates(insertOps(rangeInts(1, 300)...), BatchInsertsOnly)

	in, ok := tr.root.(*innerNode[int])
	require.True(t, ok)
	require.GreaterOrEqual(t, in.slotuse, 2)
	in.slot[0].slotkey, in.slot[1].slotkey = in.slot[1].slotkey, in.slot[0].slotkey

	require.Error(t, tr.Verify())
}

func TestVerifyIsIdempotentAndDoesNotMutate(t *testing.T) {
	tr := newScenarioTree()
	tr.ApplyUpdates(insertOps(rangeInts(1, 300)...), BatchInsertsOnly)

	before := inOrder(tr)
	require.NoError(t, tr.Verify())
	require.NoError(t, tr.Verify())
	require.Equal(t, before, inOrder(tr))
}
