package model

// LoginMessage is the fixed message returned by a successful login.
const LoginMessage = "Login Successfully!"

// LoginForm is the form-encoded body of POST /login.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

// LoginOut is the response of POST /login.
type LoginOut struct {
	Username string `json:"username" example:"miguel2021"`
	Message  string `json:"message" example:"Login Successfully!"`
}

// ContactForm is the form-encoded body of POST /contact.
type ContactForm struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string `form:"last_name" validate:"required,min=1,max=20"`
	Email     string `form:"email" validate:"required,email"`
	Message   string `form:"message" validate:"required,min=20"`
}

// ImageInfo describes an uploaded image.
type ImageInfo struct {
	Filename string  `json:"filename" example:"photo.png"`
	Format   string  `json:"format" example:"image/png"`
	SizeKB   float64 `json:"size_kb" example:"12.34"`
	// StoragePath is set only when the image was persisted to object storage.
	StoragePath string `json:"storage_path,omitempty"`
}
