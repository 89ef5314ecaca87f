package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the admin login form.
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Panel de Administración",
	})
}

// Login checks the credentials and opens a session.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Panel de Administración",
			"error": "Usuario o contraseña incorrectos",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Panel de Administración",
			"error": "Usuario o contraseña incorrectos",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Panel de Administración",
			"error": "No se pudo guardar la sesión",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders the admin panel with collection counts.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var videoCount, photoCount, pressCount int64
	a.db.Model(&db.Video{}).Count(&videoCount)
	a.db.Model(&db.Photo{}).Count(&photoCount)
	a.db.Model(&db.PressLink{}).Count(&pressCount)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":      "Panel de Administración",
		"username":   username,
		"videoCount": videoCount,
		"photoCount": photoCount,
		"pressCount": pressCount,
	})
}

// AuthRequired redirects unauthenticated requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
