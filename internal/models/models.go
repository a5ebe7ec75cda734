package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a random unique identifier for a stored record. Collisions
// are treated as negligible; nothing re-checks the store for an existing id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// Contact is a contact form submission.
type Contact struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Company         string    `json:"company,omitempty" bson:"company,omitempty"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message         string    `json:"message" bson:"message"`
	ServiceInterest string    `json:"service_interest,omitempty" bson:"service_interest,omitempty"`
	Timestamp       Timestamp `json:"timestamp" bson:"timestamp"`
}

// ContactCreate is the user-supplied subset of Contact.
type ContactCreate struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	Message         string `json:"message" binding:"required"`
	ServiceInterest string `json:"service_interest"`
}

// QuoteRequest is a project quote inquiry. Every field is required.
type QuoteRequest struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Company     string    `json:"company" bson:"company"`
	Phone       string    `json:"phone" bson:"phone"`
	ProjectType string    `json:"project_type" bson:"project_type"`
	Budget      string    `json:"budget" bson:"budget"`
	Timeline    string    `json:"timeline" bson:"timeline"`
	Description string    `json:"description" bson:"description"`
	Timestamp   Timestamp `json:"timestamp" bson:"timestamp"`
}

// QuoteRequestCreate is the user-supplied subset of QuoteRequest.
type QuoteRequestCreate struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ProjectType string `json:"project_type" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Timeline    string `json:"timeline" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Project is a portfolio entry. Category is one of web, mobile, ux, marketing.
// Projects are read-only through the API and seeded out of band.
type Project struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Client       string    `json:"client" bson:"client"`
	Category     string    `json:"category" bson:"category"`
	Description  string    `json:"description" bson:"description"`
	Challenge    string    `json:"challenge" bson:"challenge"`
	Solution     string    `json:"solution" bson:"solution"`
	Results      string    `json:"results" bson:"results"`
	Technologies []string  `json:"technologies" bson:"technologies"`
	ImageURL     string    `json:"image_url" bson:"image_url"`
	Featured     bool      `json:"featured" bson:"featured"`
	Timestamp    Timestamp `json:"timestamp" bson:"timestamp"`
}

// BlogPost is a published article. Slug is the human-readable lookup key and
// is expected unique by the seeding process, not enforced here.
type BlogPost struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Slug      string    `json:"slug" bson:"slug"`
	Author    string    `json:"author" bson:"author"`
	Category  string    `json:"category" bson:"category"`
	Excerpt   string    `json:"excerpt" bson:"excerpt"`
	Content   string    `json:"content" bson:"content"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Published bool      `json:"published" bson:"published"`
	Timestamp Timestamp `json:"timestamp" bson:"timestamp"`
}

// Testimonial is a client quote shown on the site.
type Testimonial struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Company    string    `json:"company" bson:"company"`
	Role       string    `json:"role" bson:"role"`
	Content    string    `json:"content" bson:"content"`
	Rating     int       `json:"rating" bson:"rating"`
	ImageURL   string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Timestamp  Timestamp `json:"timestamp" bson:"timestamp"`
}

// Newsletter is a single subscription. One document per email.
type Newsletter struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Timestamp Timestamp `json:"timestamp" bson:"timestamp"`
}

// NewsletterCreate is the user-supplied subset of Newsletter.
type NewsletterCreate struct {
	Email string `json:"email" binding:"required,email"`
}
