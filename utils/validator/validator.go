package validatorx

import (
	"fmt"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator. Field
// failures come back as a validation CustomError naming the offending fields
// so the transport layer can return them as-is.
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return errors.SetCustomError(constant.ErrValidation)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return errors.SetCustomErrorf(constant.ErrValidation, "%s", strings.Join(details, "; "))
}
