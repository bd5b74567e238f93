package internal

import (
	"net/http"

	"atd/internal/controllers"
	"atd/internal/providers"
	"atd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/summary", http.HandlerFunc(apiController.GetSummary))
	routers.Get("/report", http.HandlerFunc(apiController.GetReport))
	routers.Post("/export", http.HandlerFunc(apiController.TriggerExport))
	return routers
}
