package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"personapi/internal/model"
	"personapi/internal/service"
	"personapi/internal/validation"
)

// PersonNotFoundMessage is the message of the 404 returned for ids outside the roster.
const PersonNotFoundMessage = "¡This person doesn't exist!"

// Home returns the fixed greeting.
//
//	@Summary	Home
//	@Tags		Home
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ [get]
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"Hola": "mundo"})
	}
}

// CreatePerson echoes a validated person without its password.
//
//	@Summary	Create a person
//	@Tags		Persons
//	@Accept		json
//	@Produce	json
//	@Param		person	body		model.Person	true	"Person to create"
//	@Success	201		{object}	model.PersonOut
//	@Failure	422		{object}	errorPayload
//	@Router		/person/new [post]
func CreatePerson(svc service.PersonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Person
		if err := bindJSON(c, &in); err != nil {
			return writeValidationError(c, err)
		}
		out, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeInternalError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ShowPersonByQuery echoes name and age as a single key-value pair. An absent name
// is rendered as the key "null".
//
//	@Summary	Show a person by query parameters
//	@Tags		Persons
//	@Produce	json
//	@Param		name	query		string	false	"Person name, 1 to 50 characters"	minlength(1)	maxlength(50)
//	@Param		age		query		string	true	"Person age"
//	@Success	200		{object}	map[string]string
//	@Failure	422		{object}	errorPayload
//	@Router		/person/detail [get]
func ShowPersonByQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		args := c.Context().QueryArgs()

		key := "null"
		if args.Has("name") {
			key = string(args.Peek("name"))
			if err := validation.Var("name", key, "min=1,max=50"); err != nil {
				return writeValidationError(c, err)
			}
		}
		if !args.Has("age") {
			return writeValidationError(c, validation.NewError("age", "required", ""))
		}

		return c.JSON(fiber.Map{key: string(args.Peek("age"))})
	}
}

// ShowPerson confirms that a person id belongs to the roster.
//
//	@Summary	Show a person by id
//	@Tags		Persons
//	@Produce	json
//	@Param		person_id	path		int	true	"Person id, greater than 0"	minimum(1)
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	errorPayload
//	@Failure	422			{object}	errorPayload
//	@Router		/person/detail/{person_id} [get]
func ShowPerson(svc service.PersonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := personIDParam(c)
		if err != nil {
			return writeValidationError(c, err)
		}
		if err := svc.Get(c.UserContext(), id); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", PersonNotFoundMessage)
			case errors.Is(err, service.ErrInvalidID):
				return writeValidationError(c, validation.NewError("person_id", "gt", "0"))
			default:
				return writeInternalError(c)
			}
		}
		return c.JSON(fiber.Map{strconv.FormatInt(id, 10): "It exists"})
	}
}

// UpdatePerson echoes the updated person merged with its location.
//
//	@Summary	Update a person
//	@Tags		Persons
//	@Accept		json
//	@Produce	json
//	@Param		person_id	path		int					true	"Person id, greater than 0"	minimum(1)
//	@Param		body		body		model.PersonUpdate	true	"Person and location"
//	@Success	202			{object}	model.PersonUpdateOut
//	@Failure	422			{object}	errorPayload
//	@Router		/person/{person_id} [put]
func UpdatePerson(svc service.PersonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := personIDParam(c)
		if err != nil {
			return writeValidationError(c, err)
		}
		var in model.PersonUpdate
		if err := bindJSON(c, &in); err != nil {
			return writeValidationError(c, err)
		}
		out, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidID) {
				return writeValidationError(c, validation.NewError("person_id", "gt", "0"))
			}
			return writeInternalError(c)
		}
		return c.Status(fiber.StatusAccepted).JSON(out)
	}
}
