package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "newshub_backend/internals/databases"
	"newshub_backend/internals/helpers/apperror"
	"newshub_backend/internals/seeds"
)

// newTestApp wires the real router against a freshly seeded in-memory store,
// so these tests cover the same surface the behavioral contract describes.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := seeds.Run(db); err != nil {
		t.Fatalf("seed test db: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: apperror.ErrorHandler})
	SetupRoutes(app, db)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s %s: read body: %v", method, path, err)
	}
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, into any) {
	t.Helper()
	if err := json.Unmarshal(raw, into); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
}

func wantMsg(t *testing.T, raw []byte, msg string) {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	decode(t, raw, &body)
	if body.Msg != msg {
		t.Errorf("msg = %q, want %q", body.Msg, msg)
	}
}

// =============================================================================
// Unmatched routes & descriptor
// =============================================================================

func TestUnmatchedPath(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/incorrect-path", "")
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Not Found")
}

func TestGetEndpointsDescriptor(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Endpoints map[string]any `json:"endpoints"`
	}
	decode(t, raw, &body)
	for _, key := range []string{"GET /api", "GET /api/topics", "GET /api/articles"} {
		if _, ok := body.Endpoints[key]; !ok {
			t.Errorf("descriptor missing %q", key)
		}
	}
}

// =============================================================================
// Topics & users
// =============================================================================

func TestGetTopics(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/topics", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Topics []struct {
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"topics"`
	}
	decode(t, raw, &body)
	if len(body.Topics) != 3 {
		t.Fatalf("got %d topics, want 3", len(body.Topics))
	}
	for _, topic := range body.Topics {
		if topic.Slug == "" || topic.Description == "" {
			t.Errorf("topic %+v has empty fields", topic)
		}
	}
}

func TestGetUsers(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/users", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Users []struct {
			Username  string `json:"username"`
			Name      string `json:"name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"users"`
	}
	decode(t, raw, &body)
	if len(body.Users) != 4 {
		t.Fatalf("got %d users, want 4", len(body.Users))
	}
	for _, user := range body.Users {
		if user.Username == "" || user.Name == "" || user.AvatarURL == "" {
			t.Errorf("user %+v has empty fields", user)
		}
	}
}

// =============================================================================
// Article listing
// =============================================================================

func TestGetArticles(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Articles []map[string]any `json:"articles"`
	}
	decode(t, raw, &body)
	if len(body.Articles) != 13 {
		t.Fatalf("got %d articles, want 13", len(body.Articles))
	}

	for _, article := range body.Articles {
		if _, ok := article["body"]; ok {
			t.Error("listing must not expose article body")
		}
		if _, ok := article["comment_count"]; !ok {
			t.Error("listing must carry comment_count")
		}
	}

	var prev string
	for i, article := range body.Articles {
		created := article["created_at"].(string)
		if i > 0 && created > prev {
			t.Fatalf("articles not sorted by created_at descending at index %d", i)
		}
		prev = created
	}
}

func TestGetArticles_TopicFilter(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles?topic=mitch", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Articles []map[string]any `json:"articles"`
	}
	decode(t, raw, &body)
	if len(body.Articles) != 12 {
		t.Fatalf("got %d mitch articles, want 12", len(body.Articles))
	}
	for _, article := range body.Articles {
		if article["topic"] != "mitch" {
			t.Errorf("topic = %v, want mitch", article["topic"])
		}
	}
}

func TestGetArticles_TopicWithoutArticles(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles?topic=paper", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Articles []map[string]any `json:"articles"`
	}
	decode(t, raw, &body)
	if len(body.Articles) != 0 {
		t.Errorf("got %d paper articles, want empty array", len(body.Articles))
	}
	if !strings.Contains(string(raw), `"articles":[]`) {
		t.Errorf("body %q should carry an empty array, not null", raw)
	}
}

func TestGetArticles_UnknownTopic(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles?topic=no", "")
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestGetArticles_SortWhitelist(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodGet, "/api/articles?sort_by=votes&order=asc", "")
	if status != 200 {
		t.Errorf("sort_by=votes&order=asc status = %d, want 200", status)
	}

	status, raw := do(t, app, http.MethodGet, "/api/articles?sort_by=banana", "")
	if status != 400 {
		t.Errorf("sort_by=banana status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")

	status, raw = do(t, app, http.MethodGet, "/api/articles?order=sideways", "")
	if status != 400 {
		t.Errorf("order=sideways status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

// =============================================================================
// Single article
// =============================================================================

func TestGetArticleByID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/1", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Article struct {
			ArticleID    int    `json:"article_id"`
			Title        string `json:"title"`
			Topic        string `json:"topic"`
			Author       string `json:"author"`
			Body         string `json:"body"`
			Votes        int    `json:"votes"`
			CommentCount int    `json:"comment_count"`
		} `json:"article"`
	}
	decode(t, raw, &body)
	if body.Article.ArticleID != 1 ||
		body.Article.Title != "Living in the shadow of a great man" ||
		body.Article.Topic != "mitch" ||
		body.Article.Author != "butter_bridge" ||
		body.Article.Body != "I find this existence challenging" {
		t.Errorf("article = %+v", body.Article)
	}
	if body.Article.Votes != 100 {
		t.Errorf("votes = %d, want 100", body.Article.Votes)
	}
	if body.Article.CommentCount != 11 {
		t.Errorf("comment_count = %d, want 11", body.Article.CommentCount)
	}
}

func TestGetArticleByID_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/two", "")
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestGetArticleByID_Missing(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/777", "")
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Article Not Found")
}

// =============================================================================
// Comments of an article
// =============================================================================

func TestGetComments(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/1/comments", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Comments []struct {
			CommentID int    `json:"comment_id"`
			Votes     int    `json:"votes"`
			CreatedAt string `json:"created_at"`
			Author    string `json:"author"`
			Body      string `json:"body"`
			ArticleID int    `json:"article_id"`
		} `json:"comments"`
	}
	decode(t, raw, &body)
	if len(body.Comments) != 11 {
		t.Fatalf("got %d comments, want 11", len(body.Comments))
	}
	for i, comment := range body.Comments {
		if comment.ArticleID != 1 {
			t.Errorf("comment %d belongs to article %d", comment.CommentID, comment.ArticleID)
		}
		if i > 0 && comment.CreatedAt > body.Comments[i-1].CreatedAt {
			t.Fatalf("comments not sorted by created_at descending at index %d", i)
		}
	}
}

func TestGetComments_EmptyArticle(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/7/comments", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(string(raw), `"comments":[]`) {
		t.Errorf("body %q should carry an empty array", raw)
	}
}

func TestGetComments_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/incorrect-path/comments", "")
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestGetComments_MissingArticle(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/articles/777/comments", "")
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Article Not Found")
}

// =============================================================================
// Posting comments
// =============================================================================

func TestPostComment(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/articles/1/comments",
		`{"username":"icellusedkars","body":"Need to stay hydrated"}`)
	if status != 201 {
		t.Fatalf("status = %d, want 201 (body %s)", status, raw)
	}
	var body struct {
		Comment struct {
			CommentID int    `json:"comment_id"`
			Body      string `json:"body"`
			ArticleID int    `json:"article_id"`
			Author    string `json:"author"`
			Votes     int    `json:"votes"`
			CreatedAt string `json:"created_at"`
		} `json:"comment"`
	}
	decode(t, raw, &body)
	if body.Comment.CommentID != 19 {
		t.Errorf("comment_id = %d, want 19", body.Comment.CommentID)
	}
	if body.Comment.Body != "Need to stay hydrated" ||
		body.Comment.ArticleID != 1 ||
		body.Comment.Author != "icellusedkars" ||
		body.Comment.Votes != 0 {
		t.Errorf("comment = %+v", body.Comment)
	}
	if body.Comment.CreatedAt == "" {
		t.Error("created_at missing on created comment")
	}
}

func TestPostComment_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/articles/two/comments",
		`{"username":"icellusedkars","body":"Need to stay hydrated"}`)
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

// A missing article outranks a malformed body: existence is checked first.
func TestPostComment_MissingArticleBeatsBadBody(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/articles/777/comments",
		`{"name":"icellusedkars"}`)
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Article Not Found")
}

func TestPostComment_BadBodyShape(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/articles/1/comments",
		`{"name":"icellusedkars","body":"Need to stay hydrated"}`)
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestPostComment_UnknownUser(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/articles/1/comments",
		`{"username":"ksskol","body":"Need to stay hydrated"}`)
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: User Not Found")
}

// =============================================================================
// Patching votes
// =============================================================================

func TestPatchArticleVotes(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPatch, "/api/articles/1", `{"inc_votes":1}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200 (body %s)", status, raw)
	}
	var body struct {
		Article map[string]any `json:"article"`
	}
	decode(t, raw, &body)
	if votes := body.Article["votes"].(float64); votes != 101 {
		t.Errorf("votes = %v, want 101", votes)
	}
	if _, ok := body.Article["comment_count"]; ok {
		t.Error("patched article must not carry comment_count")
	}
	if _, ok := body.Article["body"]; !ok {
		t.Error("patched article must carry the full row including body")
	}
}

func TestPatchArticleVotes_NegativePastZero(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPatch, "/api/articles/1", `{"inc_votes":-99}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	var body struct {
		Article map[string]any `json:"article"`
	}
	decode(t, raw, &body)
	if votes := body.Article["votes"].(float64); votes != 1 {
		t.Errorf("votes = %v, want 1", votes)
	}

	_, raw = do(t, app, http.MethodPatch, "/api/articles/1", `{"inc_votes":-99}`)
	decode(t, raw, &body)
	if votes := body.Article["votes"].(float64); votes != -98 {
		t.Errorf("votes = %v, want -98", votes)
	}
}

func TestPatchArticleVotes_BadBodies(t *testing.T) {
	app := newTestApp(t)

	for _, payload := range []string{`{"notVotes":1}`, `{"inc_votes":"one"}`, `{}`} {
		status, raw := do(t, app, http.MethodPatch, "/api/articles/3", payload)
		if status != 400 {
			t.Errorf("payload %s: status = %d, want 400", payload, status)
		}
		wantMsg(t, raw, "400: Bad Request")
	}
}

func TestPatchArticleVotes_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPatch, "/api/articles/two", `{"inc_votes":1}`)
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestPatchArticleVotes_Missing(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPatch, "/api/articles/777", `{"inc_votes":1}`)
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Article Not Found")
}

// =============================================================================
// Deleting comments
// =============================================================================

func TestDeleteComment(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodDelete, "/api/comments/1", "")
	if status != 204 {
		t.Fatalf("status = %d, want 204", status)
	}
	if len(raw) != 0 {
		t.Errorf("204 must carry no body, got %q", raw)
	}

	status, raw = do(t, app, http.MethodDelete, "/api/comments/1", "")
	if status != 404 {
		t.Errorf("second delete status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Comment Id Not Found")
}

func TestDeleteComment_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodDelete, "/api/comments/two", "")
	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	wantMsg(t, raw, "400: Bad Request")
}

func TestDeleteComment_Missing(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodDelete, "/api/comments/777", "")
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	wantMsg(t, raw, "404: Comment Id Not Found")
}
