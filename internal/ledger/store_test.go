package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pricingRules() RuleSet {
	return RuleSet{
		Mode:          ModePricing,
		TaxComponents: []Field{FieldIGSTPct},
		Numbers:       PolicyCoerceZero,
	}
}

func TestStore_Add(t *testing.T) {
	s := NewStore(pricingRules(), zap.NewNop())

	require.Equal(t, 1, s.Len(), "store starts with one blank item")

	first := s.Items()[0]
	second := s.Add()

	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, first.ID, second.ID, "identities are unique")
	assert.Empty(t, second.Quantity)
	assert.Zero(t, second.LineTotal)
}

func TestStore_Remove(t *testing.T) {
	s := NewStore(pricingRules(), zap.NewNop())

	t.Run("removing the only item is a no-op", func(t *testing.T) {
		only := s.Items()[0]
		s.Remove(only.ID)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, only.ID, s.Items()[0].ID)
	})

	t.Run("removes by identity", func(t *testing.T) {
		second := s.Add()
		third := s.Add()
		s.Remove(second.ID)
		require.Equal(t, 2, s.Len())
		assert.Nil(t, s.Get(second.ID))
		assert.NotNil(t, s.Get(third.ID))
	})

	t.Run("unknown identity is a no-op", func(t *testing.T) {
		before := s.Len()
		s.Remove("not-an-id")
		assert.Equal(t, before, s.Len())
	})
}

func TestStore_Update(t *testing.T) {
	s := NewStore(pricingRules(), zap.NewNop())
	it := s.Items()[0]

	t.Run("updating a derivation input recomputes the row", func(t *testing.T) {
		s.Update(it.ID, FieldQuantity, "4")
		s.Update(it.ID, FieldRate, "25")
		assert.Equal(t, 100.0, it.Amount)
		assert.Equal(t, 100.0, it.LineTotal)
	})

	t.Run("updating a non-input field leaves derived values alone", func(t *testing.T) {
		s.Update(it.ID, FieldName, "Urea 50kg")
		assert.Equal(t, "Urea 50kg", it.Name)
		assert.Equal(t, 100.0, it.Amount)
	})

	t.Run("unknown identity is a no-op", func(t *testing.T) {
		s.Update("missing", FieldQuantity, "99")
		assert.Equal(t, "4", it.Quantity)
	})

	t.Run("unrecognized field is a no-op", func(t *testing.T) {
		s.Update(it.ID, Field("colour"), "blue")
		assert.Equal(t, 100.0, it.Amount)
	})

	t.Run("idempotent for the same value", func(t *testing.T) {
		s.Update(it.ID, FieldQuantity, "4")
		s.Update(it.ID, FieldQuantity, "4")
		assert.Equal(t, 100.0, it.Amount)
		assert.Equal(t, 100.0, it.LineTotal)
	})
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(pricingRules(), zap.NewNop())
	s.Update(s.Items()[0].ID, FieldQuantity, "10")
	s.Add()
	s.Add()

	s.Reset()

	require.Equal(t, 1, s.Len())
	assert.Empty(t, s.Items()[0].Quantity)
}
