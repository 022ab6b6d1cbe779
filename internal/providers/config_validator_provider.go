package providers

import (
	"errors"
	"github.com/gookit/validate"
	"respire/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	v.StopOnError = false
	if !v.Validate() {
		return errors.New(v.Errors.String())
	}
	if cv.conf.Ledger.TickInterval < 0 || cv.conf.Panic.BreathUnit < 0 {
		return errors.New("ledger.tickInterval and panic.breathUnit must not be negative")
	}
	return nil
}
