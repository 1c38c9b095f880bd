package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tipapi/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("notblank", notBlank)
	_ = validate.RegisterValidation("criteriatype", criteriaType)
}

// ValidateStruct validates every tagged field of obj.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// ValidateStructPartial validates only the fields of obj that are present:
// non-nil pointers, slices and maps. A struct with no present fields is valid.
func ValidateStructPartial(obj interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("ValidateStructPartial: expected struct, got %s", v.Kind())
	}

	var present []string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map:
			if !f.IsNil() {
				present = append(present, t.Field(i).Name)
			}
		}
	}
	if len(present) == 0 {
		return nil
	}
	return validate.StructPartial(obj, present...)
}

// ValidationMessage renders validator errors as "field: rule" pairs.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func criteriaType(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := models.ParseGroupCriteriaType(field.String())
	return err == nil
}
