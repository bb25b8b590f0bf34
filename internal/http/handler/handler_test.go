package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"personapi/internal/model"
	"personapi/internal/repository/memory"
	"personapi/internal/service"
	serviceMocks "personapi/internal/service/mocks"
)

const validPersonJSON = `{"first_name":"Miguel","last_name":"Torres","age":25,"hair_color":"brown","is_married":false,"password":"hola1234"}`

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func TestHome(t *testing.T) {
	app := newApp()
	app.Get("/", Home())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"Hola": "mundo"}, decodeMap(t, resp))
}

func TestCreatePerson(t *testing.T) {
	app := newApp()
	app.Post("/person/new", CreatePerson(service.NewPersonService(nil)))

	t.Run("echoes person without password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/person/new", validPersonJSON))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Equal(t, "Miguel", body["first_name"])
		assert.Equal(t, "Torres", body["last_name"])
		assert.Equal(t, float64(25), body["age"])
		assert.Equal(t, "brown", body["hair_color"])
		assert.Equal(t, false, body["is_married"])
		assert.NotContains(t, body, "password")
	})

	t.Run("optional fields default to null", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/person/new",
			`{"first_name":"Ana","last_name":"Diaz","age":30,"password":"hola1234"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Contains(t, body, "hair_color")
		assert.Nil(t, body["hair_color"])
		assert.Nil(t, body["is_married"])
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
		wantRule   string
	}{
		{name: "age 115 accepted", body: strings.Replace(validPersonJSON, `"age":25`, `"age":115`, 1), wantStatus: http.StatusCreated},
		{name: "age 1 accepted", body: strings.Replace(validPersonJSON, `"age":25`, `"age":1`, 1), wantStatus: http.StatusCreated},
		{name: "age 116 rejected", body: strings.Replace(validPersonJSON, `"age":25`, `"age":116`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "age"},
		{name: "age 0 rejected", body: strings.Replace(validPersonJSON, `"age":25`, `"age":0`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "age", wantRule: "gt"},
		{name: "age missing", body: strings.Replace(validPersonJSON, `"age":25,`, ``, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "age", wantRule: "gt"},
		{name: "age not a number", body: strings.Replace(validPersonJSON, `"age":25`, `"age":"old"`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "age", wantRule: "type"},
		{name: "first name of 51 chars", body: strings.Replace(validPersonJSON, `"Miguel"`, `"`+strings.Repeat("m", 51)+`"`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "first_name"},
		{name: "empty last name", body: strings.Replace(validPersonJSON, `"Torres"`, `""`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "last_name"},
		{name: "unknown hair color", body: strings.Replace(validPersonJSON, `"brown"`, `"green"`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "hair_color"},
		{name: "short password", body: strings.Replace(validPersonJSON, `"hola1234"`, `"hola"`, 1), wantStatus: http.StatusUnprocessableEntity, wantField: "password"},
		{name: "malformed json", body: `{"first_name":`, wantStatus: http.StatusUnprocessableEntity, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/person/new", tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantField == "" {
				return
			}
			res := decodeError(t, resp)
			assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, tt.wantField, res.Error.Details[0].Field)
			if tt.wantRule != "" {
				assert.Equal(t, tt.wantRule, res.Error.Details[0].Rule)
			}
		})
	}

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPersonService)
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("model.Person")).Return(nil, errors.New("boom")).Once()

		app := newApp()
		app.Post("/person/new", CreatePerson(mockSvc))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/person/new", validPersonJSON))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestShowPersonByQuery(t *testing.T) {
	app := newApp()
	app.Get("/person/detail", ShowPersonByQuery())

	t.Run("name and age", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail?name=Miguel&age=25", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"Miguel": "25"}, decodeMap(t, resp))
	})

	t.Run("absent name", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail?age=25", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"null": "25"}, decodeMap(t, resp))
	})

	tests := []struct {
		name      string
		query     string
		wantField string
		wantRule  string
	}{
		{name: "empty name", query: "?name=&age=25", wantField: "name", wantRule: "min"},
		{name: "name too long", query: "?name=" + strings.Repeat("n", 51) + "&age=25", wantField: "name", wantRule: "max"},
		{name: "missing age", query: "?name=Miguel", wantField: "age", wantRule: "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail"+tt.query, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			res := decodeError(t, resp)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, tt.wantField, res.Error.Details[0].Field)
			assert.Equal(t, tt.wantRule, res.Error.Details[0].Rule)
		})
	}
}

func TestShowPerson(t *testing.T) {
	t.Run("roster", func(t *testing.T) {
		app := newApp()
		app.Get("/person/detail/:person_id", ShowPerson(service.NewPersonService(memory.NewPersonMemory(1, 2, 3, 4, 5))))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail/5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"5": "It exists"}, decodeMap(t, resp))

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/person/detail/6", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, PersonNotFoundMessage, res.Error.Message)
	})

	mockSvc := new(serviceMocks.MockPersonService)
	app := newApp()
	app.Get("/person/detail/:person_id", ShowPerson(mockSvc))

	invalid := []struct {
		name     string
		id       string
		wantRule string
	}{
		{name: "zero", id: "0", wantRule: "gt"},
		{name: "negative", id: "-3", wantRule: "gt"},
		{name: "not an integer", id: "abc", wantRule: "integer"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail/"+tt.id, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			res := decodeError(t, resp)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, "person_id", res.Error.Details[0].Field)
			assert.Equal(t, tt.wantRule, res.Error.Details[0].Rule)
		})
	}

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(2)).Return(errors.New("db down")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/detail/2", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdatePerson(t *testing.T) {
	app := newApp()
	app.Put("/person/:person_id", UpdatePerson(service.NewPersonService(nil)))

	location := `{"city":"Bogota","state":"Cundinamarca","country":"Colombia"}`

	t.Run("accepted", func(t *testing.T) {
		body := `{"person":` + validPersonJSON + `,"location":` + location + `}`
		resp, err := app.Test(jsonRequest(http.MethodPut, "/person/7", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		res := decodeMap(t, resp)
		assert.Equal(t, "Miguel", res["first_name"])
		assert.Equal(t, "Bogota", res["city"])
		assert.Equal(t, "Colombia", res["country"])
		assert.NotContains(t, res, "password")
	})

	t.Run("invalid location", func(t *testing.T) {
		body := `{"person":` + validPersonJSON + `,"location":{"city":"Bogota","state":"Cundinamarca"}}`
		resp, err := app.Test(jsonRequest(http.MethodPut, "/person/7", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "location.country", res.Error.Details[0].Field)
	})

	t.Run("invalid person", func(t *testing.T) {
		person := strings.Replace(validPersonJSON, `"age":25`, `"age":200`, 1)
		resp, err := app.Test(jsonRequest(http.MethodPut, "/person/7", `{"person":`+person+`,"location":`+location+`}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "person.age", decodeError(t, resp).Error.Details[0].Field)
	})

	t.Run("age not a number", func(t *testing.T) {
		person := strings.Replace(validPersonJSON, `"age":25`, `"age":"old"`, 1)
		resp, err := app.Test(jsonRequest(http.MethodPut, "/person/7", `{"person":`+person+`,"location":`+location+`}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "person.age", res.Error.Details[0].Field)
		assert.Equal(t, "type", res.Error.Details[0].Rule)
	})

	t.Run("invalid id", func(t *testing.T) {
		body := `{"person":` + validPersonJSON + `,"location":` + location + `}`
		resp, err := app.Test(jsonRequest(http.MethodPut, "/person/0", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "person_id", decodeError(t, resp).Error.Details[0].Field)
	})
}

func TestLogin(t *testing.T) {
	app := newApp()
	app.Post("/login", Login(service.NewPersonService(nil)))

	t.Run("success", func(t *testing.T) {
		resp, err := app.Test(formRequest("/login", url.Values{"username": {"miguel2021"}, "password": {"secret"}}))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var out model.LoginOut
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, model.LoginOut{Username: "miguel2021", Message: model.LoginMessage}, out)
	})

	t.Run("missing password", func(t *testing.T) {
		resp, err := app.Test(formRequest("/login", url.Values{"username": {"miguel2021"}}))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "password", res.Error.Details[0].Field)
	})

	t.Run("username too long", func(t *testing.T) {
		resp, err := app.Test(formRequest("/login", url.Values{"username": {strings.Repeat("u", 21)}, "password": {"secret"}}))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "max", decodeError(t, resp).Error.Details[0].Rule)
	})

	t.Run("json body rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/login", `{"Username":"bob","Password":"secret"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "body", res.Error.Details[0].Field)
		assert.Equal(t, "form", res.Error.Details[0].Rule)
	})
}

func TestContact(t *testing.T) {
	app := newApp()
	app.Post("/contact", Contact())

	valid := url.Values{
		"first_name": {"Ana"},
		"last_name":  {"Diaz"},
		"email":      {"ana@example.com"},
		"message":    {"I would like to know more about the course."},
	}

	t.Run("echoes user agent", func(t *testing.T) {
		req := formRequest("/contact", valid)
		req.Header.Set("User-Agent", "test-agent/1.0")
		req.AddCookie(&http.Cookie{Name: "ads", Value: "campaign-1"})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, `"test-agent/1.0"`, string(body))
	})

	t.Run("no user agent", func(t *testing.T) {
		req := formRequest("/contact", valid)
		req.Header.Set("User-Agent", "")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "null", string(body))
	})

	t.Run("json body rejected", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/contact", `{"FirstName":"Ana","LastName":"Diaz","Email":"ana@example.com","Message":"I would like to know more about the course."}`)
		req.Header.Set("User-Agent", "test-agent/1.0")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "form", res.Error.Details[0].Rule)
	})

	tests := []struct {
		name      string
		field     string
		value     string
		wantField string
	}{
		{name: "invalid email", field: "email", value: "ana-at-example", wantField: "email"},
		{name: "short message", field: "message", value: "hello", wantField: "message"},
		{name: "first name too long", field: "first_name", value: strings.Repeat("a", 21), wantField: "first_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			for k, v := range valid {
				form[k] = v
			}
			form.Set(tt.field, tt.value)

			resp, err := app.Test(formRequest("/contact", form))
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			res := decodeError(t, resp)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, tt.wantField, res.Error.Details[0].Field)
		})
	}
}

func imageRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/post-image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestPostImage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := newApp()
		app.Post("/post-image", PostImage(service.NewImageService(nil)))

		resp, err := app.Test(imageRequest(t, "cat.png", "image/png", bytes.Repeat([]byte{0x1}, 2400)))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var info model.ImageInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
		assert.Equal(t, model.ImageInfo{Filename: "cat.png", Format: "image/png", SizeKB: 2.34}, info)
	})

	mockSvc := new(serviceMocks.MockImageService)
	app := newApp()
	app.Post("/post-image", PostImage(mockSvc))

	t.Run("no file", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/post-image", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "image", res.Error.Details[0].Field)
		assert.Equal(t, "required", res.Error.Details[0].Rule)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "cat.png", "image/png").Return(nil, errors.New("upload failed")).Once()

		resp, err := app.Test(imageRequest(t, "cat.png", "image/png", []byte("hello")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unreadable upload", func(t *testing.T) {
		orig := openUpload
		openUpload = func(*multipart.FileHeader) (multipart.File, error) { return nil, errors.New("disk gone") }
		t.Cleanup(func() { openUpload = orig })

		app := newApp()
		app.Post("/post-image", PostImage(service.NewImageService(nil)))

		resp, err := app.Test(imageRequest(t, "cat.png", "image/png", []byte("png")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := newApp()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", decodeMap(t, resp)["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("without database", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "persons_created_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Add(3)

	app := newApp()
	app.Get("/metrics", Metrics(reg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "persons_created_total 3")
}

func TestRouting(t *testing.T) {
	app := newApp()
	RegisterRoutes(app, Deps{
		Persons: new(serviceMocks.MockPersonService),
		Images:  new(serviceMocks.MockImageService),
		Metrics: prometheus.NewRegistry(),
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/person/new", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("openapi document", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		paths, ok := doc["paths"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, paths, "/person/new")
		assert.Contains(t, paths, "/person/detail/{person_id}")
	})

	t.Run("swagger document uses request host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://api.example.com/swagger/doc.json", nil)
		req.Header.Set("X-Forwarded-Proto", "https")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "api.example.com", doc["host"])
		assert.Equal(t, []any{"https"}, doc["schemes"])
	})

	t.Run("docs redirect", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "/swagger/index.html", resp.Header.Get("Location"))
	})
}
