package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personapi/internal/model"
	repoMocks "personapi/internal/repository/mocks"
)

func samplePerson() model.Person {
	married := true
	brown := model.HairColorBrown
	return model.Person{
		PersonBase: model.PersonBase{
			FirstName: "Miguel",
			LastName:  "Torres",
			Age:       25,
			HairColor: &brown,
			IsMarried: &married,
		},
		Password: "hola1234",
	}
}

func TestPersonService_Create(t *testing.T) {
	svc := NewPersonService(nil)

	out, err := svc.Create(context.Background(), samplePerson())

	require.NoError(t, err)
	assert.Equal(t, samplePerson().PersonBase, out.PersonBase)
}

func TestPersonService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockPersonRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "in roster",
			id:   3,
			setupMocks: func(mRepo *repoMocks.MockPersonRepository) {
				mRepo.On("Exists", ctx, int64(3)).Return(true, nil)
			},
		},
		{
			name: "not in roster",
			id:   6,
			setupMocks: func(mRepo *repoMocks.MockPersonRepository) {
				mRepo.On("Exists", ctx, int64(6)).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "non positive id",
			id:         0,
			setupMocks: func(mRepo *repoMocks.MockPersonRepository) {},
			wantErr:    ErrInvalidID,
		},
		{
			name: "repository error",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockPersonRepository) {
				mRepo.On("Exists", ctx, int64(1)).Return(false, errors.New("db fail"))
			},
			wantErrMsg: "roster lookup: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPersonRepository)
			tt.setupMocks(mRepo)
			svc := NewPersonService(mRepo)

			err := svc.Get(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPersonService_Update(t *testing.T) {
	svc := NewPersonService(nil)
	upd := model.PersonUpdate{
		Person:   samplePerson(),
		Location: model.Location{City: "Bogota", State: "Cundinamarca", Country: "Colombia"},
	}

	t.Run("merges person and location", func(t *testing.T) {
		out, err := svc.Update(context.Background(), 7, upd)

		require.NoError(t, err)
		assert.Equal(t, "Miguel", out.FirstName)
		assert.Equal(t, "Bogota", out.City)
		assert.Equal(t, "Colombia", out.Country)
	})

	t.Run("non positive id", func(t *testing.T) {
		out, err := svc.Update(context.Background(), -2, upd)

		assert.ErrorIs(t, err, ErrInvalidID)
		assert.Nil(t, out)
	})
}

func TestPersonService_Login(t *testing.T) {
	svc := NewPersonService(nil)

	out, err := svc.Login(context.Background(), model.LoginForm{Username: "miguel2021", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, &model.LoginOut{Username: "miguel2021", Message: "Login Successfully!"}, out)
}
