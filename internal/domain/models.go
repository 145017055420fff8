// Package domain defines the persistence models for topics, users, articles,
// and comments. These types are mapped with GORM and form the core data layer
// of the news API.
package domain

import "time"

// Topic is a named category that articles belong to. The slug is the stable
// identifier used in URLs and as the foreign key on articles.
//
// Topics are created by seeding/admin processes; the API only reads them.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments, keyed by username.
//
// Users are read-only through this API; creation happens out of band.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(64);primaryKey"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:varchar(512)"`
	Name      string `json:"name"       gorm:"type:varchar(128)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a top-level content item under a topic, owned by a user.
//
// Fields:
//   - ArticleID: integer primary key, generated by the store.
//   - Author / Topic: foreign keys to users.username and topics.slug.
//   - Votes: mutable only via an additive signed delta; may go negative.
//   - CreatedAt: set once at creation, immutable afterwards.
//
// The derived comment_count is never stored on this row; reads that need it
// use ArticleWithCount.
type Article struct {
	ArticleID int       `json:"article_id" gorm:"column:article_id;primaryKey;autoIncrement"`
	Title     string    `json:"title"      gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	Topic     string    `json:"topic"      gorm:"type:varchar(64);not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// FK associations enforce referential integrity at the store.
	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// ArticleWithCount is the read model for article responses that carry the
// derived comment_count aggregate. The count is computed from live comment
// rows at query time and never persisted.
type ArticleWithCount struct {
	ArticleID    int       `json:"article_id" gorm:"column:article_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Votes        int       `json:"votes"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	CommentCount int       `json:"comment_count" gorm:"column:comment_count"`
}

// Comment is a reply attached to exactly one article, authored by exactly
// one user. Deletion is a hard delete; there is no tombstone state.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null;index"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	// Comments are cascade-deleted with their article; authors cannot be
	// removed while their comments exist.
	ArticleRef Article `json:"-" gorm:"belongsTo:Article;foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorRef  User    `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
