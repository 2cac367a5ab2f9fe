package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/valoracion", handler.GetValuation)
		api.POST("/valoracion/zona", handler.GetZoneValuation)
		api.GET("/codigos-postales/:codigo", handler.GetPostalCodeInfo)
		api.GET("/zonas", handler.GetZones)
		api.GET("/zonas/:zona/estadisticas", handler.GetZoneStats)
		api.GET("/anuncios", handler.GetListings)
		api.GET("/anuncios/:id", handler.GetListing)
		api.POST("/anuncios", handler.IngestListings)
		api.DELETE("/anuncios/:id", handler.DeleteListing)
	}
}
