// Command seed loads the read-only collections (projects, blog_posts,
// testimonials) with starter content. The public API never writes these
// collections; this is the out-of-band path that does.
//
// Usage:
//
//	MONGODB_URI=mongodb://localhost:27017 MONGODB_DATABASE=agency go run ./cmd/seed
//
// Collections that already contain documents are left untouched unless
// -force is given.
package main

import (
	"context"
	"flag"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelierhq/agency-api/internal/blog"
	"github.com/atelierhq/agency-api/internal/config"
	"github.com/atelierhq/agency-api/internal/database"
	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/portfolio"
	"github.com/atelierhq/agency-api/internal/testimonials"
	"github.com/atelierhq/agency-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "seed even when the collection is not empty")
	flag.Parse()

	logger.Init("info")
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)

	projectsCol := db.Collection("projects")
	if *force || isEmpty(ctx, projectsCol) {
		repo := portfolio.NewMongoRepository(projectsCol)
		for _, p := range seedProjects() {
			if err := repo.Insert(ctx, p); err != nil {
				logger.Fatalf("seed project %q: %v", p.Title, err)
			}
		}
		logger.Infof("seeded %d projects", len(seedProjects()))
	} else {
		logger.Infof("projects already seeded, skipping")
	}

	postsCol := db.Collection("blog_posts")
	if *force || isEmpty(ctx, postsCol) {
		repo := blog.NewMongoRepository(postsCol)
		for _, p := range seedPosts() {
			if err := repo.Insert(ctx, p); err != nil {
				logger.Fatalf("seed blog post %q: %v", p.Slug, err)
			}
		}
		logger.Infof("seeded %d blog posts", len(seedPosts()))
	} else {
		logger.Infof("blog posts already seeded, skipping")
	}

	testimonialsCol := db.Collection("testimonials")
	if *force || isEmpty(ctx, testimonialsCol) {
		repo := testimonials.NewMongoRepository(testimonialsCol)
		for _, tm := range seedTestimonials() {
			if err := repo.Insert(ctx, tm); err != nil {
				logger.Fatalf("seed testimonial from %q: %v", tm.ClientName, err)
			}
		}
		logger.Infof("seeded %d testimonials", len(seedTestimonials()))
	} else {
		logger.Infof("testimonials already seeded, skipping")
	}
}

func isEmpty(ctx context.Context, col *mongo.Collection) bool {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Fatalf("count %s: %v", col.Name(), err)
	}
	return n == 0
}

func seedProjects() []*models.Project {
	return []*models.Project{
		{
			ID: models.NewID(), Title: "E-commerce storefront relaunch", Client: "Harbor & Oak",
			Category: "web", Description: "Full rebuild of a retail storefront with headless checkout.",
			Challenge: "Legacy platform could not handle seasonal traffic peaks.",
			Solution:  "Rebuilt on a headless stack with edge caching and a streamlined checkout.",
			Results:   "41% faster page loads and an 18% lift in conversion.",
			Technologies: []string{"React", "Next.js", "MongoDB", "Stripe"},
			ImageURL:     "https://images.example.com/projects/harbor-oak.jpg",
			Featured:     true, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), Title: "Telehealth mobile app", Client: "Bluebird Health",
			Category: "mobile", Description: "Cross-platform patient app for appointments and messaging.",
			Challenge: "Patients dropped off during a paper-heavy intake flow.",
			Solution:  "Designed a five-step mobile intake with secure document upload.",
			Results:   "Intake completion rose from 54% to 89%.",
			Technologies: []string{"React Native", "TypeScript", "Firebase"},
			ImageURL:     "https://images.example.com/projects/bluebird.jpg",
			Featured:     true, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), Title: "SaaS onboarding redesign", Client: "Gridframe",
			Category: "ux", Description: "Research-led redesign of a B2B analytics onboarding journey.",
			Challenge: "Trial users abandoned setup before reaching first value.",
			Solution:  "Usability testing, new information architecture and guided setup.",
			Results:   "Trial-to-paid conversion up 27%.",
			Technologies: []string{"Figma", "Maze", "Hotjar"},
			ImageURL:     "https://images.example.com/projects/gridframe.jpg",
			Featured:     false, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), Title: "Product launch campaign", Client: "Fieldnote Coffee",
			Category: "marketing", Description: "Multi-channel launch for a subscription coffee brand.",
			Challenge: "New brand with zero audience and a six-week runway.",
			Solution:  "Paid social, influencer seeding and a referral program.",
			Results:   "12k subscribers in the first quarter.",
			Technologies: []string{"Meta Ads", "Klaviyo", "Google Analytics"},
			ImageURL:     "https://images.example.com/projects/fieldnote.jpg",
			Featured:     false, Timestamp: models.Now(),
		},
	}
}

func seedPosts() []*models.BlogPost {
	return []*models.BlogPost{
		{
			ID: models.NewID(), Title: "Designing onboarding that keeps users", Slug: "designing-onboarding-that-keeps-users",
			Author: "Priya Raman", Category: "ux-design",
			Excerpt: "First sessions decide retention. Here is how we structure them.",
			Content: "Most products lose users before the second session...",
			ImageURL: "https://images.example.com/blog/onboarding.jpg",
			Published: true, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), Title: "Choosing between native and cross-platform in 2026", Slug: "native-vs-cross-platform-2026",
			Author: "Marco Silva", Category: "mobile",
			Excerpt: "The trade-offs have shifted again. A practical decision guide.",
			Content: "The honest answer is that it depends on your team...",
			ImageURL: "https://images.example.com/blog/native-cross.jpg",
			Published: true, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), Title: "Edge rendering for marketing sites", Slug: "edge-rendering-marketing-sites",
			Author: "Priya Raman", Category: "web-development",
			Excerpt: "Why we moved our client sites to the edge, and what broke.",
			Content: "Latency budgets for marketing pages are brutal...",
			ImageURL: "https://images.example.com/blog/edge.jpg",
			Published: true, Timestamp: models.Now(),
		},
	}
}

func seedTestimonials() []*models.Testimonial {
	return []*models.Testimonial{
		{
			ID: models.NewID(), ClientName: "Alex Harmon", Company: "Harbor & Oak", Role: "Head of Digital",
			Content: "They rebuilt our storefront in three months and the numbers speak for themselves.",
			Rating:  5, ImageURL: "https://images.example.com/people/alex.jpg", Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), ClientName: "Dana Okafor", Company: "Bluebird Health", Role: "VP Product",
			Content: "The most organized engineering partner we have worked with.",
			Rating:  5, Timestamp: models.Now(),
		},
		{
			ID: models.NewID(), ClientName: "Sam Leclerc", Company: "Gridframe", Role: "CEO",
			Content: "Clear communication and real UX research, not just opinions.",
			Rating:  4, Timestamp: models.Now(),
		},
	}
}
