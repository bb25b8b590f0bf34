package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"personapi/internal/model"
)

type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) Create(ctx context.Context, p model.Person) (*model.PersonOut, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonOut), args.Error(1)
}

func (m *MockPersonService) Get(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPersonService) Update(ctx context.Context, id int64, upd model.PersonUpdate) (*model.PersonUpdateOut, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonUpdateOut), args.Error(1)
}

func (m *MockPersonService) Login(ctx context.Context, form model.LoginForm) (*model.LoginOut, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginOut), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.ImageInfo, error) {
	args := m.Called(ctx, r, originalFilename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageInfo), args.Error(1)
}
