// Command seed populates the development database with demo careers and comments.
package main

import (
	"flag"
	"log"

	"careerboard/internal/config"
	"careerboard/internal/database"
	"careerboard/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Authors, "authors", opts.Authors, "number of demo authors")
	flag.IntVar(&opts.CareersPerAuthor, "careers", opts.CareersPerAuthor, "careers per author")
	flag.IntVar(&opts.CommentsPerCareer, "comments", opts.CommentsPerCareer, "comments per career")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d authors x %d careers with %d comments each",
		opts.Authors, opts.CareersPerAuthor, opts.CommentsPerCareer)
}
