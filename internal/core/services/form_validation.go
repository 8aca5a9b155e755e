package services

import (
	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/core/spam"
)

// Message keys reported in field errors.
const (
	keySpam                 = "form.error.spam"
	keyDuplicated           = "form.error.duplicated"
	keyCurrencyNotAvailable = "form.error.currency-not-available"
	keyBudgetPositive       = "form.error.budget-positive"
)

// formValidator checks form fields against one configuration snapshot.
type formValidator struct {
	cfg  domain.SystemConfiguration
	errs apperrors.FieldErrors
}

func newFormValidator(cfg domain.SystemConfiguration) *formValidator {
	return &formValidator{cfg: cfg}
}

// isClean applies both spam tiers. Text must pass the weak and the strong one.
func isClean(cfg domain.SystemConfiguration, text string) bool {
	return spam.IsClean(text, cfg.WeakSpam.Terms, cfg.WeakSpam.Threshold) &&
		spam.IsClean(text, cfg.StrongSpam.Terms, cfg.StrongSpam.Threshold)
}

// noSpam records a spam error on field when text is not clean.
func (v *formValidator) noSpam(field, text string) {
	v.errs.State(isClean(v.cfg, text), field, keySpam)
}

// uniqueCode records a duplicate error unless no other record holds the code.
// exists is only consulted when code has no earlier error.
func (v *formValidator) uniqueCode(field string, exists func() (bool, error)) error {
	if v.errs.HasErrors(field) {
		return nil
	}
	taken, err := exists()
	if err != nil {
		return err
	}
	v.errs.State(!taken, field, keyDuplicated)
	return nil
}

// availableCurrency records an error unless money is in an available currency.
func (v *formValidator) availableCurrency(field string, money domain.Money, key string) {
	v.errs.State(v.cfg.AcceptsCurrency(money.Currency), field, key)
}

func (v *formValidator) state(ok bool, field, key string) bool {
	return v.errs.State(ok, field, key)
}

func (v *formValidator) hasErrors(field string) bool {
	return v.errs.HasErrors(field)
}

func (v *formValidator) err() error {
	return v.errs.Err()
}
