package adapters

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"datacache/core/entity"
	"datacache/core/jsonapi"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report attribute names as they appear on the wire.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// identify resolves the identity of res and checks it has the kind the adapter expects.
func identify(res jsonapi.Resource, kind entity.Kind) (entity.Identity, error) {
	if res.Kind() != kind {
		return entity.Identity{}, newDecodingError(res, "type", fmt.Errorf("expected %q", kind))
	}
	id, ok := res.Identity()
	if !ok {
		return entity.Identity{}, newDecodingError(res, "id", errors.New("missing or non-numeric id"))
	}
	return id, nil
}

// integralNumberHook rejects fractional numbers bound for integer fields, which weak
// typing would otherwise truncate.
func integralNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	f, ok := data.(float64)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not an integer", f)
		}
	}
	return data, nil
}

// decodeAttributes fills out from the resource attribute bag and validates it.
func decodeAttributes(res jsonapi.Resource, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			integralNumberHook,
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create attribute decoder: %w", err)
	}

	if err := decoder.Decode(res.Attributes); err != nil {
		return newDecodingError(res, "", err)
	}

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return newDecodingError(res, verrs[0].Field(), fmt.Errorf("failed %q validation", verrs[0].Tag()))
		}
		return newDecodingError(res, "", err)
	}

	return nil
}
