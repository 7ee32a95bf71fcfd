package httpserver

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"saunaandcold/internal/domain"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticPaths = []struct {
	path     string
	priority string
}{
	{"/", "1.0"},
	{"/privacy-policy", "0.3"},
	{"/terms-of-service", "0.3"},
	{"/cookie-policy", "0.3"},
}

// sitemap enumerates every resolvable URL by re-running the same resolution
// logic that serves the pages.
func (h *Handlers) sitemap(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, sp := range staticPaths {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: h.BaseURL + sp.path, LastMod: now, ChangeFreq: "monthly", Priority: sp.priority,
		})
	}

	for _, p := range h.Q.SitemapPaths(r.Context(), domain.CategorySauna) {
		u := sitemapURL{Loc: h.BaseURL + p, LastMod: now}
		switch strings.Count(p, "/") {
		case 1: // section index
			u.ChangeFreq, u.Priority = "weekly", "0.9"
		case 4: // facility page
			u.ChangeFreq, u.Priority = "monthly", "0.6"
		default: // region and city pages
			u.ChangeFreq, u.Priority = "weekly", "0.7"
		}
		set.URLs = append(set.URLs, u)
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		log.Error().Err(err).Msg("failed to write sitemap header")
		return
	}
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		log.Error().Err(err).Msg("failed to encode sitemap")
	}
}
