package handlers

import (
	"net/http"

	"github.com/baivab22/ictforumFrontend/internal/backend"
)

// HomeHandler renders the landing page: featured posts plus the latest
// articles. Either section failing degrades to an error notice rather than
// taking down the whole page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := currentLang(r)
	data := TemplateData{User: currentUser(r), Lang: lang, Title: "ICT Forum Nepal"}

	featured, err := api.FeaturedPosts(r.Context(), lang)
	if err != nil {
		data.Error = backend.Message(err)
	} else {
		data.Featured = buildCards(featured, lang)
	}

	latest, err := api.ListPosts(r.Context(), backend.Query{Page: 1, Limit: 6, Language: lang})
	if err != nil {
		if data.Error == "" {
			data.Error = backend.Message(err)
		}
	} else {
		data.Latest = buildCards(latest.Posts, lang)
	}

	renderTemplate(w, r, "home_page.html", data)
}
