// Command seed fills the posts table with generated sample posts for
// development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"
	"quill/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	count := flag.Int("count", 10, "number of posts to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	posts := repository.NewPostRepository(db)
	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()
	created := 0
	for i := 0; i < *count; i++ {
		post := &models.Post{
			Title:    strings.TrimSuffix(gofakeit.Sentence(5), "."),
			Subtitle: strings.TrimSuffix(gofakeit.Sentence(8), "."),
			Date:     gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format(models.DateFormat),
			Body:     "<p>" + gofakeit.Paragraph(3, 4, 12, "</p><p>") + "</p>",
			Author:   gofakeit.Name(),
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/400", gofakeit.UUID()),
		}
		err := posts.Create(ctx, post)
		if models.IsConflict(err) {
			// Generated title collided with an existing post; skip it.
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create post: %v", err)
		}
		created++
	}

	log.Printf("Seeded %d posts", created)
}
