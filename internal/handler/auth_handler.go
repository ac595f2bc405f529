package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login handles the admin login form submit.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	if username == "" {
		username = a.adminUser
	}
	password := c.PostForm("password")

	if !a.checkCredentials(username, password) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	if err := a.startSession(c, username); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

type loginRequest struct {
	Password string `json:"password"`
}

// LoginAPI is the JSON login endpoint. The body carries only the password;
// it is checked against the configured admin account and a matching submit
// starts the same session the form login uses.
func (a *API) LoginAPI(c *gin.Context) {
	var payload loginRequest
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	if !a.checkCredentials(a.adminUser, payload.Password) {
		respondError(c, http.StatusUnauthorized, "invalid password")
		return
	}

	if err := a.startSession(c, a.adminUser); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *API) checkCredentials(username, password string) bool {
	if password == "" {
		return false
	}

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (a *API) startSession(c *gin.Context, username string) error {
	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		return err
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	return session.Save()
}

// AuthRequired gates the admin pages behind the session. Unauthenticated
// requests are redirected to the login form. The JSON content API is not
// behind this gate.
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
