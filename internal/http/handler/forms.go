package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"personapi/internal/model"
	"personapi/internal/service"
	"personapi/internal/validation"
)

// Login acknowledges a form-encoded username and password.
//
//	@Summary	Login
//	@Tags		Persons
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		username	formData	string	true	"Username, at most 20 characters"	maxlength(20)
//	@Param		password	formData	string	true	"Password"
//	@Success	200			{object}	model.LoginOut
//	@Failure	422			{object}	errorPayload
//	@Router		/login [post]
func Login(svc service.PersonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.LoginForm
		if err := bindForm(c, &in); err != nil {
			return writeValidationError(c, err)
		}
		out, err := svc.Login(c.UserContext(), in)
		if err != nil {
			return writeInternalError(c)
		}
		return c.JSON(out)
	}
}

// Contact validates a contact form and echoes the caller's User-Agent, or null when
// the header is absent or empty.
// The ads cookie is accepted and otherwise ignored.
//
//	@Summary	Contact
//	@Tags		Contact
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		first_name	formData	string	true	"First name"	minlength(1)	maxlength(20)
//	@Param		last_name	formData	string	true	"Last name"		minlength(1)	maxlength(20)
//	@Param		email		formData	string	true	"E-mail address"
//	@Param		message		formData	string	true	"Message, at least 20 characters"	minlength(20)
//	@Param		User-Agent	header		string	false	"Client user agent"
//	@Param		ads			cookie		string	false	"Ads cookie"
//	@Success	200			{string}	string
//	@Failure	422			{object}	errorPayload
//	@Router		/contact [post]
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ContactForm
		if err := bindForm(c, &in); err != nil {
			return writeValidationError(c, err)
		}
		ua := c.Request().Header.Peek(fiber.HeaderUserAgent)
		if len(ua) == 0 {
			return c.JSON(nil)
		}
		return c.JSON(string(ua))
	}
}

var openUpload = func(fh *multipart.FileHeader) (multipart.File, error) { return fh.Open() }

// PostImage measures an uploaded image and stores it when object storage is configured.
//
//	@Summary	Upload an image
//	@Tags		Images
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file	true	"Image file"
//	@Success	201		{object}	model.ImageInfo
//	@Failure	422		{object}	errorPayload
//	@Router		/post-image [post]
func PostImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeValidationError(c, validation.NewError("image", "required", ""))
		}

		f, err := openUpload(fh)
		if err != nil {
			return writeInternalError(c)
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}

		info, err := svc.Upload(c.UserContext(), f, fh.Filename, ct)
		if err != nil {
			return writeInternalError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}
