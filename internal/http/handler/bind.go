package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"personapi/internal/validation"
)

// bindJSON decodes the request body into dst and validates it.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return &validation.Error{Fields: []validation.FieldError{{
				Field:   validation.FieldPath(te.Field),
				Rule:    "type",
				Param:   te.Type.String(),
				Message: "value is not a valid " + te.Type.String(),
			}}}
		}
		return validation.NewError("body", "json", "")
	}
	return validation.Struct(dst)
}

// bindForm decodes a form-encoded or multipart body into dst and validates it.
// Any other content type is rejected.
func bindForm(c *fiber.Ctx, dst any) error {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(ct, fiber.MIMEApplicationForm) && !strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		return validation.NewError("body", "form", "")
	}
	if err := c.BodyParser(dst); err != nil {
		return validation.NewError("body", "form", "")
	}
	return validation.Struct(dst)
}

// personIDParam parses and validates the person_id path parameter.
func personIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("person_id"), 10, 64)
	if err != nil {
		return 0, validation.NewError("person_id", "integer", "")
	}
	if err := validation.Var("person_id", id, "gt=0"); err != nil {
		return 0, err
	}
	return id, nil
}
