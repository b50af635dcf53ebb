package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cafeapi/internal/api/controllers"
	"cafeapi/pkg/middleware"
	"cafeapi/web"
)

func NewRouter(cafeController *controllers.CafeController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.SetHTMLTemplate(web.Templates())

	RegisterRoutes(r, cafeController)

	return r
}

func RegisterRoutes(r *gin.Engine, cafeController *controllers.CafeController) {
	r.GET("/", cafeController.Home)
	r.GET("/health", cafeController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/random", cafeController.GetRandomCafe)
	r.GET("/all", cafeController.GetAllCafes)
	r.GET("/search", cafeController.SearchCafe)
	r.Match([]string{http.MethodGet, http.MethodPost}, "/add", cafeController.AddCafe)
	r.PATCH("/update-price/:id", cafeController.UpdatePrice)
	r.DELETE("/report-closed/:id", cafeController.ReportClosed)
}
