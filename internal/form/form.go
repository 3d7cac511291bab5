// Package form implements the form shell: header binding against a
// declarative schema, the editing/validating/submission lifecycle, payload
// assembly and hand-off to the submission and notification collaborators.
// One shell serves every vertical; forms differ only in their Definition.
package form

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/schema"
	"github.com/tradeport/formengine/internal/words"
)

// Definition is the per-form configuration a shell is instantiated from.
type Definition struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Vertical string         `json:"vertical"`
	Header   schema.Schema  `json:"header"`
	Rules    ledger.RuleSet `json:"rules"`

	// ResetOnSubmit clears the form back to its initial shape after a
	// successful submission; otherwise it remains populated.
	ResetOnSubmit bool `json:"reset_on_submit"`
}

// Payload is the fully assembled submission handed to the Submitter.
type Payload struct {
	FormID        string            `json:"form_id"`
	Title         string            `json:"title"`
	Vertical      string            `json:"vertical"`
	Mode          ledger.Mode       `json:"mode"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	Header        map[string]string `json:"header"`
	LineItems     []*ledger.Item    `json:"line_items"`
	Aggregates    ledger.Totals     `json:"aggregates"`
	AmountInWords string            `json:"amount_in_words,omitempty"`
}

// NotifyKind classifies a notification.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Submitter is the external collaborator that persists or transmits the
// assembled payload.
type Submitter interface {
	Submit(ctx context.Context, payload *Payload) error
}

// Notifier is the external collaborator surfacing terminal outcomes to the
// user. Invoked exactly once per terminal transition.
type Notifier interface {
	Notify(kind NotifyKind, message string)
}

// Form is one live instance of a definition: header values, line-item
// store and lifecycle state. Owned by a single caller; no internal locking.
type Form struct {
	def       Definition
	header    map[string]string
	store     *ledger.Store
	machine   *machine
	submitter Submitter
	notifier  Notifier
	logger    *zap.Logger
}

// New creates a form in the editing state with one blank line item.
func New(def Definition, submitter Submitter, notifier Notifier, logger *zap.Logger) *Form {
	return &Form{
		def:       def,
		header:    make(map[string]string),
		store:     ledger.NewStore(def.Rules, logger),
		machine:   newMachine(),
		submitter: submitter,
		notifier:  notifier,
		logger:    logger,
	}
}

// Definition returns the form's configuration.
func (f *Form) Definition() Definition {
	return f.def
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.machine.State()
}

// SetHeader stores a header field value. Values for undeclared fields are
// dropped. For declared fields the value is stored even when invalid — the
// user keeps what they typed and sees the inline error — so the returned
// FieldError is feedback, not a rejection.
func (f *Form) SetHeader(name, value string) *schema.FieldError {
	field, ok := f.def.Header.FieldByName(name)
	if !ok {
		f.logger.Warn("Header value for undeclared field dropped",
			zap.String("form_id", f.def.ID),
			zap.String("field", name))
		return &schema.FieldError{Field: name, Message: "unknown field"}
	}

	f.header[name] = value

	if value != "" && field.Pattern != "" {
		if err := schema.MatchPattern(field.Pattern, value); err != nil {
			return &schema.FieldError{Field: name, Message: err.Error()}
		}
	}
	return nil
}

// Header returns a copy of the current header values.
func (f *Form) Header() map[string]string {
	out := make(map[string]string, len(f.header))
	for k, v := range f.header {
		out[k] = v
	}
	return out
}

// ActiveFields returns the header fields currently relevant given the
// header values.
func (f *Form) ActiveFields() []schema.Field {
	return f.def.Header.ActiveFields(f.header)
}

// AddItem appends a blank line item.
func (f *Form) AddItem() *ledger.Item {
	return f.store.Add()
}

// RemoveItem removes a line item; removing the last one is a no-op.
func (f *Form) RemoveItem(id string) {
	f.store.Remove(id)
}

// UpdateItem updates one line-item field, re-deriving when needed.
func (f *Form) UpdateItem(id string, field ledger.Field, value string) {
	f.store.Update(id, field, value)
}

// Items returns the current line items in order.
func (f *Form) Items() []*ledger.Item {
	return f.store.Items()
}

// Totals folds the current collection into form-level aggregates.
func (f *Form) Totals() ledger.Totals {
	return f.def.Rules.Aggregate(f.store.Items())
}

// Submit runs the full submission pass: validation, payload assembly and
// hand-off. On validation failure it returns the field errors and the form
// returns to editing with state intact. On collaborator failure it returns
// the error, again preserving state for retry. Exactly one notification is
// emitted per terminal outcome.
func (f *Form) Submit(ctx context.Context) (*Payload, []schema.FieldError, error) {
	if err := f.machine.Fire(TriggerSubmit); err != nil {
		return nil, nil, err
	}

	errs := f.validate()
	if len(errs) > 0 {
		// Rejected: surface every violation, resume editing.
		if err := f.machine.Fire(TriggerReject); err != nil {
			return nil, nil, err
		}
		f.notifier.Notify(NotifyError,
			fmt.Sprintf("%s: %d field(s) need correction", f.def.Title, len(errs)))
		f.logger.Info("Form submission rejected",
			zap.String("form_id", f.def.ID),
			zap.Int("error_count", len(errs)))
		if err := f.machine.Fire(TriggerResume); err != nil {
			return nil, nil, err
		}
		return nil, errs, nil
	}

	payload := f.assemblePayload()

	if err := f.submitter.Submit(ctx, payload); err != nil {
		// Submission failure: reported to the user, form state preserved
		// so the operator can retry without re-entering anything.
		if ferr := f.machine.Fire(TriggerReject); ferr != nil {
			return nil, nil, ferr
		}
		f.notifier.Notify(NotifyError,
			fmt.Sprintf("%s: submission failed, your entries are preserved", f.def.Title))
		f.logger.Error("Form submission failed",
			zap.String("form_id", f.def.ID),
			zap.Error(err))
		if ferr := f.machine.Fire(TriggerResume); ferr != nil {
			return nil, nil, ferr
		}
		return nil, nil, fmt.Errorf("failed to submit form %s: %w", f.def.ID, err)
	}

	if err := f.machine.Fire(TriggerAccept); err != nil {
		return nil, nil, err
	}
	f.notifier.Notify(NotifySuccess,
		fmt.Sprintf("%s submitted successfully", f.def.Title))
	f.logger.Info("Form submitted",
		zap.String("form_id", f.def.ID),
		zap.Int("item_count", payload.Aggregates.ItemCount),
		zap.Float64("grand_total", payload.Aggregates.GrandTotal))

	if f.def.ResetOnSubmit {
		f.header = make(map[string]string)
		f.store.Reset()
	}
	if err := f.machine.Fire(TriggerReset); err != nil {
		return nil, nil, err
	}

	return payload, nil, nil
}

// validate collects header schema violations plus strict-policy numeric
// parse failures from the line items. Never fail-fast.
func (f *Form) validate() []schema.FieldError {
	errs := f.def.Header.Validate(f.activeHeader())

	for id, fields := range f.store.ParseFailures() {
		for _, field := range fields {
			errs = append(errs, schema.FieldError{
				Field:   fmt.Sprintf("line_items.%s.%s", id, field),
				Message: "must be a number",
			})
		}
	}
	return errs
}

// activeHeader returns header values restricted to currently active fields.
// Stale values behind hidden fields neither validate nor submit.
func (f *Form) activeHeader() map[string]string {
	active := make(map[string]string)
	for _, field := range f.def.Header.ActiveFields(f.header) {
		if v, ok := f.header[field.Name]; ok {
			active[field.Name] = v
		}
	}
	return active
}

// assemblePayload packages header, line items and aggregates into the
// submission payload.
func (f *Form) assemblePayload() *Payload {
	totals := f.def.Rules.Aggregate(f.store.Items())

	p := &Payload{
		FormID:      f.def.ID,
		Title:       f.def.Title,
		Vertical:    f.def.Vertical,
		Mode:        f.def.Rules.Mode,
		SubmittedAt: time.Now(),
		Header:      f.activeHeader(),
		LineItems:   f.store.Items(),
		Aggregates:  totals,
	}
	if f.def.Rules.Mode == ledger.ModePricing {
		p.AmountInWords = words.Rupees(ledger.Round2(totals.GrandTotal))
	}
	return p
}
