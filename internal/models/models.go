package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Name         string     `gorm:"not null" json:"name"`
	Password     string     `gorm:"not null" json:"-"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	Role         string     `gorm:"default:'user'" json:"role"` // user, admin, super_admin
	LastLoginAt  *time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	SessionToken *string    `gorm:"column:session_token" json:"-"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IsAdmin reports whether the user carries the admin entitlement.
func (u *User) IsAdmin() bool {
	return u.Role == "admin" || u.Role == "super_admin"
}

type GalleryImage struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       *string        `gorm:"type:text" json:"description"`
	ImageURL          string         `gorm:"column:image_url;not null" json:"image_url"`
	ThumbnailURL      *string        `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	AltText           *string        `gorm:"column:alt_text" json:"alt_text"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags"`
	SocialMediaSource *string        `gorm:"column:social_media_source" json:"social_media_source"`
	SocialMediaURL    *string        `gorm:"column:social_media_url" json:"social_media_url"`
	DisplayOrder      int            `gorm:"default:0;index" json:"display_order"`
	IsFeatured        bool           `gorm:"default:false" json:"is_featured"`
	IsPublished       bool           `gorm:"default:false;index" json:"is_published"`
	CreatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type Testimonial struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientName     string    `gorm:"column:client_name;not null" json:"client_name"`
	ClientPhotoURL *string   `gorm:"column:client_photo_url" json:"client_photo_url"`
	Rating         int       `gorm:"not null" json:"rating"` // 1-5
	ReviewText     string    `gorm:"column:review_text;not null;type:text" json:"review_text"`
	ProjectType    *string   `gorm:"column:project_type" json:"project_type"`
	Location       *string   `json:"location"`
	IsPublished    bool      `gorm:"default:false;index" json:"is_published"`
	DisplayOrder   int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

type BlogPost struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt          *string        `gorm:"type:text" json:"excerpt"`
	Content          string         `gorm:"not null;type:text" json:"content"`
	FeaturedImageURL *string        `gorm:"column:featured_image_url" json:"featured_image_url"`
	Author           string         `gorm:"default:'The DCode'" json:"author"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	MetaTitle        *string        `gorm:"column:meta_title" json:"meta_title"`
	MetaDescription  *string        `gorm:"column:meta_description" json:"meta_description"`
	IsPublished      bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt      *time.Time     `gorm:"column:published_at" json:"published_at"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type Lead struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"not null" json:"email"`
	Phone            string     `gorm:"not null;type:varchar(20)" json:"phone"`
	Location         string     `gorm:"not null" json:"location"`
	Message          string     `gorm:"not null;type:text" json:"message"`
	Status           string     `gorm:"default:'new';index" json:"status"` // new, contacted, qualified, converted, closed
	Priority         *string    `json:"priority"`                          // low, medium, high
	Source           *string    `json:"source"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	LastContactedAt  *time.Time `gorm:"column:last_contacted_at" json:"last_contacted_at"`
	NextFollowUpDate *time.Time `gorm:"column:next_follow_up_date" json:"next_follow_up_date"`
	CountryCode      *string    `gorm:"column:country_code" json:"country_code"`
	CountryISO2      *string    `gorm:"column:country_iso2" json:"country_iso2"`
	CreatedAt        time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// Admin Models
type AdminActivity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminID    uint      `gorm:"not null;index" json:"admin_id"`
	Action     string    `gorm:"not null" json:"action"`   // create, update, delete, view
	Resource   string    `gorm:"not null" json:"resource"` // gallery_image, testimonial, blog_post, lead, etc.
	ResourceID *uint     `json:"resource_id"`
	Details    *string   `gorm:"type:text" json:"details"`
	IPAddress  string    `gorm:"not null" json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// Admin Dashboard Response Types
type AdminDashboardStats struct {
	TotalLeads            int `json:"total_leads"`
	NewLeadsToday         int `json:"new_leads_today"`
	OpenLeads             int `json:"open_leads"`
	TotalGalleryImages    int `json:"total_gallery_images"`
	PublishedGalleryImages int `json:"published_gallery_images"`
	TotalTestimonials     int `json:"total_testimonials"`
	PublishedTestimonials int `json:"published_testimonials"`
	TotalBlogPosts        int `json:"total_blog_posts"`
	PublishedBlogPosts    int `json:"published_blog_posts"`
}
