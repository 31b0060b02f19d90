package routes

import (
	"museum-api/internal/api/artists"
	authapi "museum-api/internal/api/auth"
	"museum-api/internal/api/exhibitions"
	"museum-api/internal/api/museums"
	"museum-api/internal/api/paintings"
	usersapi "museum-api/internal/api/users"
	"museum-api/internal/app/http/middleware"
	"museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API. Registration, login and code
// confirmation are public; everything else needs a bearer token.
// Catalog writes additionally require a confirmed (Regular) account,
// and bulk utilities plus user administration require Admin.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeInputMiddleware())

	api.POST("/users/register", authapi.Register)
	api.POST("/users/login", authapi.Login)
	api.GET("/users/confirm/:code", authapi.Confirm)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())

	write := middleware.RequireAccess(users.AccessRegular)
	admin := middleware.RequireAccess(users.AccessAdmin)

	a := auth.Group("/artists")
	a.GET("", artists.ListArtists)
	a.GET("/autocomplete", artists.Autocomplete)
	a.GET("/getbypaintingage", artists.GetByPaintingAge)
	a.GET("/getbypaintingheight", artists.GetByPaintingHeight)
	a.GET("/count/:pageSize", artists.GetArtistPageCount)
	a.GET("/:id", artists.GetArtist)
	a.GET("/:id/:pageSize", artists.GetArtistPage)
	a.POST("", write, artists.CreateArtist)
	a.POST("/:id/museumList", write, artists.AddMuseumsToArtist)
	a.PUT("/:id", write, artists.UpdateArtist)
	a.DELETE("/:id", write, artists.DeleteArtist)

	p := auth.Group("/paintings")
	p.GET("", paintings.ListPaintings)
	p.GET("/autocomplete", paintings.AutocompleteTitle)
	p.GET("/autocomplete-artist", paintings.AutocompleteArtist)
	p.GET("/filter", paintings.FilterByCreationYear)
	p.GET("/count/:pageSize", paintings.GetPaintingPageCount)
	p.GET("/:id", paintings.GetPainting)
	p.GET("/:id/:pageSize", paintings.GetPaintingPage)
	p.POST("", write, paintings.CreatePainting)
	p.PUT("/:id", write, paintings.UpdatePainting)
	p.DELETE("/:id", write, paintings.DeletePainting)

	m := auth.Group("/museums")
	m.GET("", museums.ListMuseums)
	m.GET("/autocomplete", museums.Autocomplete)
	m.GET("/count/:pageSize", museums.GetMuseumPageCount)
	m.GET("/:id", museums.GetMuseum)
	m.GET("/:id/:pageSize", museums.GetMuseumPage)
	m.POST("", write, museums.CreateMuseum)
	m.PUT("/:id", write, museums.UpdateMuseum)
	m.DELETE("/:id", write, museums.DeleteMuseum)

	e := auth.Group("/exhibitions")
	e.GET("", exhibitions.ListExhibitions)
	e.GET("/page/:page/:pageSize", exhibitions.GetExhibitionPage)
	e.GET("/count/:pageSize", exhibitions.GetExhibitionPageCount)
	e.GET("/:id/:museumId", exhibitions.GetExhibition)
	e.POST("", write, exhibitions.CreateExhibition)
	e.PUT("/:id/:museumId", write, exhibitions.UpdateExhibition)
	e.DELETE("/:id/:museumId", write, exhibitions.DeleteExhibition)

	u := auth.Group("/users")
	u.GET("/:id", usersapi.GetUser)
	u.PUT("/:id/profile", usersapi.UpdateProfile)
	u.PUT("/:id/access", admin, usersapi.UpdateAccess)
	u.DELETE("/:id", admin, usersapi.DeleteUserOrTable)
	u.POST("/:id/:count", admin, usersapi.BulkSeed)
}
