package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"eatplus/order-svc/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors maps a JSON field name to what is wrong with it.
type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	errs := fieldErrors{}
	for _, f := range valErrs {
		errs[f.Field()] = fieldMessage(f)
	}
	return errs
}

func fieldMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", f.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", f.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", f.Param())
	case "ne":
		return fmt.Sprintf("must not be %s", f.Param())
	default:
		return fmt.Sprintf("invalid value tag %s", f.Tag())
	}
}

// decodeJSON reads a request body into dst and validates it. An empty body
// is treated as an empty object. Malformed JSON is reported as errMalformed;
// enum values rejected while decoding surface as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var invalid *domain.ValidationError
		if errors.As(err, &invalid) {
			return invalid
		}
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return validateStruct(dst)
}

var errMalformed = errors.New("malformed request body")

type openCartRequest struct {
	OrderFor domain.OrderFor `json:"order_for" validate:"required"`
}

type addItemRequest struct {
	ItemID    int64   `json:"item_id" validate:"required,gt=0"`
	ChoiceIDs []int64 `json:"choice_ids" validate:"omitempty,dive,gt=0"`
	Quantity  *int    `json:"quantity" validate:"omitempty,ne=0,min=-99,max=99"`
}

type checkoutRequest struct {
	Address         string `json:"address" validate:"max=500"`
	PaymentMethodID *int64 `json:"payment_method_id" validate:"omitempty,gt=0"`
	Note            string `json:"note" validate:"max=1000"`
}

type updateStatusRequest struct {
	Status domain.Status `json:"status" validate:"required"`
}
