package handlers

import (
	"net/http"
	"strings"
)

// AboutHandler renders the static about page.
func AboutHandler(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "about_page.html", TemplateData{
		User:  currentUser(r),
		Lang:  currentLang(r),
		Title: "About Us",
	})
}

// ContactHandler renders the contact page; a submitted form is
// acknowledged on-screen. Nothing is transmitted anywhere: the original
// site's contact form was presentational only.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	data := TemplateData{
		User:  currentUser(r),
		Lang:  currentLang(r),
		Title: "Contact Us",
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			Render500(w, r, "Failed to parse form")
			return
		}
		if strings.TrimSpace(r.FormValue("message")) == "" {
			data.Error = "Please enter a message."
		} else {
			data.ContactSent = true
		}
	}

	renderTemplate(w, r, "contact_page.html", data)
}
