package seeds

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Run wipes and reloads the deterministic dataset. Children are wiped before
// parents, parents inserted before children, so the foreign keys hold at
// every step.
func Run(db *gorm.DB) error {
	for _, table := range []string{"comments", "articles", "users", "topics"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("seed: wipe %s: %w", table, err)
		}
	}

	if err := db.Create(&TopicSeed).Error; err != nil {
		return fmt.Errorf("seed: topics: %w", err)
	}
	if err := db.Create(&UserSeed).Error; err != nil {
		return fmt.Errorf("seed: users: %w", err)
	}
	if err := db.Create(&ArticleSeed).Error; err != nil {
		return fmt.Errorf("seed: articles: %w", err)
	}
	if err := db.Create(&CommentSeed).Error; err != nil {
		return fmt.Errorf("seed: comments: %w", err)
	}

	// The rows above carry explicit ids; on Postgres the sequences have to be
	// bumped past them or the next insert collides.
	if db.Dialector.Name() == "postgres" {
		resets := []string{
			fmt.Sprintf("SELECT setval('articles_article_id_seq', %d)", len(ArticleSeed)),
			fmt.Sprintf("SELECT setval('comments_comment_id_seq', %d)", len(CommentSeed)),
		}
		for _, q := range resets {
			if err := db.Exec(q).Error; err != nil {
				return fmt.Errorf("seed: reset sequence: %w", err)
			}
		}
	}

	log.Printf("seeded %d topics, %d users, %d articles, %d comments",
		len(TopicSeed), len(UserSeed), len(ArticleSeed), len(CommentSeed))
	return nil
}
