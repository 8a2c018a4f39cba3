package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the HTML shells behind the guarded page routes. The
// client renders everything; these exist so the route guard has real pages
// to protect.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("Log in"))
}

func (h *PageHandler) Signup(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("Sign up"))
}

func (h *PageHandler) Diary(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("My diary"))
}

func (h *PageHandler) Settings(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("Settings"))
}

func pageShell(title string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>` + title + ` · diary-baby</title></head>
<body><div id="app" data-page="` + title + `"></div></body>
</html>`
}
