package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/cache"
	"github.com/suncoopng/internal/handler"
)

// Setup configures the Gin engine, session store and route table.
// templateGlob may be empty to load the default template tree.
func Setup(api *handler.API, pages cache.PageCache, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	// The library default is Secure + SameSite=None, which plain-http clients
	// drop, losing the admin session right after login.
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("suncoop_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	if templateGlob == "" {
		templateGlob = "web/template/**/*.html"
	}
	r.LoadHTMLGlob(templateGlob)

	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public pages, served through the render cache. /api/revalidate drops
	// a path from this cache after an admin save.
	public := r.Group("")
	public.Use(cache.PageCacheMiddleware(pages))
	{
		public.GET("/", api.ShowHome)
		public.GET("/flexpay", api.ShowFlexpay)
	}

	// Content API. Reads back the site content for the public pages and
	// accepts admin writes. Carries no auth; only the admin pages are gated.
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/content/:section", api.GetContent)
		apiGroup.PUT("/content/:section", api.UpdateContent)

		apiGroup.GET("/faq", api.ListFAQ)
		apiGroup.POST("/faq", api.CreateFAQ)
		apiGroup.PUT("/faq/:id", api.UpdateFAQ)
		apiGroup.DELETE("/faq/:id", api.DeleteFAQ)

		apiGroup.GET("/benefits", api.ListBenefits)
		apiGroup.POST("/benefits", api.CreateBenefit)
		apiGroup.PUT("/benefits/:id", api.UpdateBenefit)
		apiGroup.DELETE("/benefits/:id", api.DeleteBenefit)

		// Flexpay aliases: same handlers, page tag forced by the path.
		apiGroup.GET("/flexpay/faq", api.ListFAQ)
		apiGroup.POST("/flexpay/faq", api.CreateFAQ)
		apiGroup.PUT("/flexpay/faq/:id", api.UpdateFAQ)
		apiGroup.DELETE("/flexpay/faq/:id", api.DeleteFAQ)

		apiGroup.GET("/flexpay/benefits", api.ListBenefits)
		apiGroup.POST("/flexpay/benefits", api.CreateBenefit)
		apiGroup.PUT("/flexpay/benefits/:id", api.UpdateBenefit)
		apiGroup.DELETE("/flexpay/benefits/:id", api.DeleteBenefit)

		apiGroup.GET("/sections", api.ListSections)
		apiGroup.POST("/sections", api.CreateSection)
		apiGroup.PUT("/sections/reorder", api.ReorderSections)
		apiGroup.PUT("/sections/:id", api.UpdateSection)
		apiGroup.DELETE("/sections/:id", api.DeleteSection)

		apiGroup.POST("/revalidate", api.Revalidate)
		apiGroup.GET("/revalidate", api.Revalidate)

		apiGroup.POST("/auth/login", api.LoginAPI)
		apiGroup.POST("/inquiries", api.SubmitInquiry)
		apiGroup.POST("/upload", api.UploadImage)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/content/:section", api.ShowContentEditor)
			auth.GET("/faq", api.ShowFAQEditor)
			auth.GET("/benefits", api.ShowBenefitsEditor)
			auth.GET("/sections", api.ShowSectionsEditor)
			auth.GET("/inquiries", api.ShowInquiries)
		}
	}

	return r
}
