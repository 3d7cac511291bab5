package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/catalog"
	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/schema"
)

func TestRegistry_Definitions(t *testing.T) {
	r := NewRegistry(ledger.PolicyCoerceZero, zap.NewNop())

	defs := r.Definitions()
	require.NotEmpty(t, defs)

	seen := make(map[string]bool)
	for _, def := range defs {
		t.Run(def.ID, func(t *testing.T) {
			assert.False(t, seen[def.ID], "duplicate id")
			seen[def.ID] = true
			assert.NotEmpty(t, def.Title)
			assert.NotEmpty(t, def.Vertical)
			assert.NotEmpty(t, def.Header.Fields)
			assert.Equal(t, ledger.PolicyCoerceZero, def.Rules.Numbers)

			// Every declared option set and pattern must actually exist;
			// a typo here would silently make a field unvalidatable.
			for _, f := range def.Header.Fields {
				if f.OptionSet != "" {
					assert.NotEmpty(t, catalog.Options(f.OptionSet),
						"field %s references empty option set %s", f.Name, f.OptionSet)
				}
				if f.Pattern != "" {
					err := schema.MatchPattern(f.Pattern, "probe")
					assert.NotContains(t, err.Error(), "unknown pattern",
						"field %s references unknown pattern %s", f.Name, f.Pattern)
				}
				if f.VisibleWhen != nil {
					_, ok := def.Header.FieldByName(f.VisibleWhen.Field)
					assert.True(t, ok, "field %s gates on undeclared %s", f.Name, f.VisibleWhen.Field)
				}
			}
		})
	}
}

func TestRegistry_ContractsPerForm(t *testing.T) {
	r := NewRegistry(ledger.PolicyCoerceZero, zap.NewNop())

	t.Run("purchase order is the only override-total form", func(t *testing.T) {
		for _, def := range r.Definitions() {
			if def.ID == "purchase-order" {
				assert.True(t, def.Rules.TotalOverridable)
			} else {
				assert.False(t, def.Rules.TotalOverridable, "%s must be derive-only", def.ID)
			}
		}
	})

	t.Run("raw material adjustment is the inventory form", func(t *testing.T) {
		def, ok := r.Definition("raw-material-adjustment")
		require.True(t, ok)
		assert.Equal(t, ledger.ModeInventory, def.Rules.Mode)
		assert.False(t, def.ResetOnSubmit)
	})
}

func TestRegistry_New(t *testing.T) {
	r := NewRegistry(ledger.PolicyStrict, zap.NewNop())

	t.Run("instantiates a working shell", func(t *testing.T) {
		f, err := r.New("quotation", &noopSubmitter{}, &noopNotifier{})
		require.NoError(t, err)
		assert.Equal(t, form.StateEditing, f.State())
		assert.Equal(t, 1, len(f.Items()))
	})

	t.Run("unknown id errors", func(t *testing.T) {
		_, err := r.New("no-such-form", &noopSubmitter{}, &noopNotifier{})
		assert.Error(t, err)
	})
}

type noopSubmitter struct{}

func (noopSubmitter) Submit(_ context.Context, _ *form.Payload) error { return nil }

type noopNotifier struct{}

func (noopNotifier) Notify(_ form.NotifyKind, _ string) {}
