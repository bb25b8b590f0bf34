package model

// HairColor restricts hair_color to a fixed set of values.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// HairColors lists every accepted HairColor in declaration order.
func HairColors() []HairColor {
	return []HairColor{HairColorWhite, HairColorBrown, HairColorBlack, HairColorBlonde, HairColorRed}
}

// PersonBase holds the fields shared by every person schema.
// Optional fields are pointers so that an absent value is encoded as null.
type PersonBase struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50" example:"Miguel"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50" example:"Torres"`
	Age       int        `json:"age" validate:"gt=0,lte=115" example:"25"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red" enums:"white,brown,black,blonde,red" extensions:"x-nullable"`
	IsMarried *bool      `json:"is_married" extensions:"x-nullable"`
}

// Person is the request schema for creating or updating a person.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"required,min=8" example:"hola1234"`
}

// Out strips the password.
func (p Person) Out() PersonOut {
	return PersonOut{PersonBase: p.PersonBase}
}

// PersonOut is the response schema for a person. It never carries the password.
type PersonOut struct {
	PersonBase
}

// Location is where a person lives.
type Location struct {
	City    string `json:"city" validate:"required,min=1,max=50" example:"Bogota"`
	State   string `json:"state" validate:"required,min=1,max=50" example:"Cundinamarca"`
	Country string `json:"country" validate:"required,min=1,max=50" example:"Colombia"`
}

// PersonUpdate is the body of PUT /person/{person_id}: one object per schema, keyed by name.
type PersonUpdate struct {
	Person   Person   `json:"person"`
	Location Location `json:"location"`
}

// PersonUpdateOut merges the updated person and its location into one flat object.
type PersonUpdateOut struct {
	PersonBase
	Location
}
