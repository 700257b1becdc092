package routes

import (
	"net/http"

	"retroart/internal/adapter/http/web"

	"github.com/gin-gonic/gin"
)

// addPageRoutes mounts the static storefront shell. Unknown paths land on the
// 404 page rather than gin's default plain-text response.
func addPageRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})
	r.GET("/admin", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin.html", nil)
	})
	r.GET("/success", func(c *gin.Context) {
		c.HTML(http.StatusOK, "success.html", gin.H{"OrderID": c.Query("order_id")})
	})
	r.GET("/cancel", func(c *gin.Context) {
		c.HTML(http.StatusOK, "cancel.html", nil)
	})
	r.GET("/404", func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/404")
	})
}
