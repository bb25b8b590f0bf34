package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"personapi/docs"
	"personapi/internal/http/middleware"
	"personapi/internal/service"
)

// Deps are the collaborators of the HTTP routes. DB may be nil; Metrics defaults
// to the global Prometheus gatherer.
type Deps struct {
	DB      Pinger
	Persons service.PersonService
	Images  service.ImageService
	Metrics prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Metrics == nil {
		d.Metrics = prometheus.DefaultGatherer
	}

	app.Get("/", Home())

	app.Post("/person/new", CreatePerson(d.Persons))
	app.Get("/person/detail", ShowPersonByQuery())
	app.Get("/person/detail/:person_id", ShowPerson(d.Persons))
	app.Put("/person/:person_id", UpdatePerson(d.Persons))

	app.Post("/login", Login(d.Persons))
	app.Post("/contact", Contact())
	app.Post("/post-image", PostImage(d.Images))

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get(middleware.MetricsPath, Metrics(d.Metrics))

	app.Get("/openapi.json", OpenAPI())
	app.Get("/swagger/*", SwaggerUI(docs.SwaggerInfo))
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusTemporaryRedirect)
	})
}
