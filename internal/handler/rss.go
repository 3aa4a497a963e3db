package handler

import (
	"net/http"

	"github.com/gorilla/feeds"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/share"
	"github.com/machipost-dev/machipost/internal/utils"
)

// rssItemLimit keeps the feed to the most recent posts.
const rssItemLimit = 50

// RssHandler serves the feed as RSS 2.0, newest posts first.
func (h *Handler) RssHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if len(posts) > rssItemLimit {
		posts = posts[:rssItemLimit]
	}

	feed := &feeds.Feed{
		Title:       h.Public.SiteName,
		Link:        &feeds.Link{Href: h.Public.BaseURL + "/"},
		Description: h.Public.SiteTagline,
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].CreatedAt
	}

	for _, post := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       share.Truncate(post.Content, metaDescriptionLimit),
			Link:        &feeds.Link{Href: h.Share.PostURL(int64(post.Id))},
			Description: post.Content,
			Created:     post.CreatedAt,
			Id:          h.Share.PostURL(int64(post.Id)),
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.Log.Error("rendering rss feed", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(rss))
}
