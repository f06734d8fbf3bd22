package constants

// Endpoints is the static payload served by GET /api: one entry per route
// with its description, accepted queries, and an example response.
var Endpoints = map[string]any{
	"GET /api": map[string]any{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": map[string]any{
		"description": "serves an array of all topics",
		"queries":     []string{},
		"exampleResponse": map[string]any{
			"topics": []map[string]any{
				{"slug": "football", "description": "Footie!"},
			},
		},
	},
	"GET /api/users": map[string]any{
		"description": "serves an array of all users",
		"queries":     []string{},
		"exampleResponse": map[string]any{
			"users": []map[string]any{
				{
					"username":   "butter_bridge",
					"name":       "jonny",
					"avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
				},
			},
		},
	},
	"GET /api/articles": map[string]any{
		"description": "serves an array of all articles",
		"queries":     []string{"topic", "sort_by", "order"},
		"exampleResponse": map[string]any{
			"articles": []map[string]any{
				{
					"article_id":    1,
					"title":         "Seafood substitutions are increasing",
					"topic":         "cooking",
					"author":        "weegembump",
					"created_at":    "2018-05-30T15:59:13.341Z",
					"votes":         0,
					"comment_count": 6,
				},
			},
		},
	},
	"GET /api/articles/:article_id": map[string]any{
		"description": "serves a single article by its id, including comment_count",
		"queries":     []string{},
	},
	"GET /api/articles/:article_id/comments": map[string]any{
		"description": "serves an array of comments for the given article, most recent first",
		"queries":     []string{},
	},
	"POST /api/articles/:article_id/comments": map[string]any{
		"description": "adds a comment to the given article and serves the created comment",
		"queries":     []string{},
		"exampleRequest": map[string]any{
			"username": "butter_bridge",
			"body":     "Great read.",
		},
	},
	"PATCH /api/articles/:article_id": map[string]any{
		"description": "increments the vote count of the given article and serves the updated article",
		"queries":     []string{},
		"exampleRequest": map[string]any{
			"inc_votes": 1,
		},
	},
	"DELETE /api/comments/:comment_id": map[string]any{
		"description": "deletes the given comment, responds with no content",
		"queries":     []string{},
	},
}
