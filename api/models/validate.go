package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"communityforge/notify/discord"
)

// fieldMessages maps request field names to their user-facing error messages.
var fieldMessages = map[string]string{
	"rename":            "Rename is required",
	"robuxFund":         "Robux fund is required",
	"communitiesMember": "Communities member is required",
	"ownerUsername":     "Owner username is required",
	"textContent":       "Text content is required",
	"discordWebhook":    "Discord webhook must be a valid Discord webhook URL",
	"username":          "Username is required",
	"password":          "Password is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report errors under the json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("discordwebhook", func(fl validator.FieldLevel) bool {
		return discord.ValidWebhookURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// validateStruct runs the schema validation and converts the result into the
// aggregated field-error collection.
func validateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "request", Message: "Request is malformed"}}
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: msg})
	}
	return fieldErrs
}
