// Package share builds social share links for a post URL.
package share

import "net/url"

// Link is one share target for the post detail share menu.
type Link struct {
	Name string
	URL  string
}

// Links returns the share targets for a post, given its canonical absolute
// URL and display title.
func Links(postURL, title string) []Link {
	escapedURL := url.QueryEscape(postURL)
	escapedTitle := url.QueryEscape(title)

	return []Link{
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + escapedURL},
		{Name: "Twitter", URL: "https://twitter.com/intent/tweet?url=" + escapedURL + "&text=" + escapedTitle},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + escapedURL},
		{Name: "WhatsApp", URL: "https://wa.me/?text=" + escapedTitle + "%20" + escapedURL},
	}
}
