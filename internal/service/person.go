package service

import (
	"context"
	"errors"
	"fmt"

	"personapi/internal/model"
	"personapi/internal/repository"
)

var (
	ErrInvalidID = errors.New("person id must be greater than 0")
	ErrNotFound  = errors.New("person not found")
)

// PersonService defines the person use cases. Apart from roster membership every
// operation echoes its already validated input.
type PersonService interface {
	// Create returns the public view of p. Nothing is stored.
	Create(ctx context.Context, p model.Person) (*model.PersonOut, error)

	// Get returns nil when id is in the roster and ErrNotFound otherwise.
	Get(ctx context.Context, id int64) error

	// Update merges the person and location of upd into a single response.
	Update(ctx context.Context, id int64, upd model.PersonUpdate) (*model.PersonUpdateOut, error)

	// Login acknowledges the credentials. It does not authenticate.
	Login(ctx context.Context, form model.LoginForm) (*model.LoginOut, error)
}

type personService struct {
	repo repository.PersonRepository
}

// NewPersonService constructs a PersonService backed by the given roster.
func NewPersonService(repo repository.PersonRepository) PersonService {
	return &personService{repo: repo}
}

func (s *personService) Create(_ context.Context, p model.Person) (*model.PersonOut, error) {
	out := p.Out()
	return &out, nil
}

func (s *personService) Get(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("roster lookup: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *personService) Update(_ context.Context, id int64, upd model.PersonUpdate) (*model.PersonUpdateOut, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return &model.PersonUpdateOut{
		PersonBase: upd.Person.PersonBase,
		Location:   upd.Location,
	}, nil
}

func (s *personService) Login(_ context.Context, form model.LoginForm) (*model.LoginOut, error) {
	return &model.LoginOut{Username: form.Username, Message: model.LoginMessage}, nil
}
