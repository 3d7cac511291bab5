package forms

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/ledger"
)

// Registry holds every form definition the portal offers and instantiates
// shells from them.
type Registry struct {
	defs   map[string]form.Definition
	order  []string
	logger *zap.Logger
}

// NewRegistry builds the registry with the portal's form set. The numeric
// policy from configuration is applied uniformly to every definition.
func NewRegistry(numbers ledger.NumberPolicy, logger *zap.Logger) *Registry {
	r := &Registry{
		defs:   make(map[string]form.Definition),
		logger: logger,
	}

	for _, def := range []form.Definition{
		purchaseOrder(),
		quotation(),
		creditNote(),
		debitNote(),
		deliveryChallan(),
		stockTransfer(),
		purchaseReturn(),
		goodsReceipt(),
		rawMaterialAdjustment(),
		vendorRegistration(),
		equipmentFinancing(),
		agricultureCompliance(),
		serviceCancellation(),
	} {
		def.Rules.Numbers = numbers
		r.register(def)
	}

	logger.Info("Form registry initialized", zap.Int("form_count", len(r.order)))
	return r
}

func (r *Registry) register(def form.Definition) {
	if _, exists := r.defs[def.ID]; exists {
		panic(fmt.Sprintf("duplicate form definition: %s", def.ID))
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
}

// Definitions returns every definition in registration order.
func (r *Registry) Definitions() []form.Definition {
	out := make([]form.Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Definition returns the definition for id.
func (r *Registry) Definition(id string) (form.Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// New instantiates a fresh form shell for the given definition id.
func (r *Registry) New(id string, submitter form.Submitter, notifier form.Notifier) (*form.Form, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown form: %s", id)
	}
	return form.New(def, submitter, notifier, r.logger), nil
}
