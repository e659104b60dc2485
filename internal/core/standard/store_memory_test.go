package standard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/coinage/pkg/uuidv7"
)

// Codes are not globally unique across the three KSB tables. When the same
// code exists in more than one table, resolution always tries Knowledge,
// then Skill, then Behaviour, so the earlier table wins.
func TestKSBLookupTriesKindsInFixedOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	skill := &KSB{ID: uuidv7.New(), Code: "B1", Name: "Press operation", Kind: KindSkill}
	behaviour := &KSB{ID: uuidv7.New(), Code: "B1", Name: "Diligence", Kind: KindBehaviour}
	require.NoError(t, store.KSBs().Create(ctx, skill))
	require.NoError(t, store.KSBs().Create(ctx, behaviour))

	found, err := store.KSBs().FindByCodeWithDuties(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, KindSkill, found.Kind, "Skill is tried before Behaviour")
	assert.Equal(t, skill.ID, found.ID)
}

func TestDutyDeleteCascadesJunctions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	duty := &Duty{ID: uuidv7.New(), Code: "D1", Name: "Strike blanks"}
	require.NoError(t, store.Duties().Create(ctx, duty))

	coin := &Coin{ID: uuidv7.New(), Name: "Florin", DutyIDs: []string{duty.ID}}
	require.NoError(t, store.Coins().Create(ctx, coin))

	ksb := &KSB{ID: uuidv7.New(), Code: "K1", Name: "Minting standards", Kind: KindKnowledge}
	require.NoError(t, store.KSBs().Create(ctx, ksb))
	store.LinkDutyKSB(duty.ID, ksb.ID, KindKnowledge)

	require.NoError(t, store.Duties().Delete(ctx, "D1"))

	hydratedCoin, err := store.Coins().FindByIDWithDuties(ctx, coin.ID)
	require.NoError(t, err)
	assert.Empty(t, hydratedCoin.Duties)

	hydratedKSB, err := store.KSBs().FindByCodeWithDuties(ctx, "K1")
	require.NoError(t, err)
	assert.Empty(t, hydratedKSB.Duties)
}

func TestCoinUpdateKeepsAssociationsWhenDutyIDsNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	duty := &Duty{ID: uuidv7.New(), Code: "D1", Name: "Strike blanks"}
	require.NoError(t, store.Duties().Create(ctx, duty))

	coin := &Coin{ID: uuidv7.New(), Name: "Florin", DutyIDs: []string{duty.ID}}
	require.NoError(t, store.Coins().Create(ctx, coin))

	require.NoError(t, store.Coins().Update(ctx, &Coin{ID: coin.ID, Name: "Double Florin"}))

	updated, err := store.Coins().FindByIDWithDuties(ctx, coin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Double Florin", updated.Name)
	assert.Len(t, updated.Duties, 1)

	// A non-nil empty slice is a replace with nothing, which clears the set.
	require.NoError(t, store.Coins().Update(ctx, &Coin{ID: coin.ID, DutyIDs: []string{}}))
	updated, err = store.Coins().FindByIDWithDuties(ctx, coin.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Duties)
}

func TestResolveCodesSkipsUnknown(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	duty := &Duty{ID: uuidv7.New(), Code: "D1", Name: "Strike blanks"}
	require.NoError(t, store.Duties().Create(ctx, duty))

	resolved, err := store.Duties().ResolveCodes(ctx, []string{"D1", "D9"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"D1": duty.ID}, resolved)
}
