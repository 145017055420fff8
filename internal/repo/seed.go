// Package repo – development/test seed data.
//
// Seed resets the database to a fixed, deterministic fixture: three topics,
// four users, twelve articles, and eighteen comments (eleven of them on
// article 1, none on article 7). Both the dev server and the test suites run
// against this data set.
package repo

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

var seedTopics = []domain.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

var seedUsers = []domain.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

var seedArticles = []domain.Article{
	{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T21:11:00Z"), Votes: 100},
	{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago, never mind how long precisely, I thought I would sail about a little and see the watery part of the world.", CreatedAt: ts("2020-10-16T06:03:00Z")},
	{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z")},
	{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages", CreatedAt: ts("2020-05-06T02:14:00Z")},
	{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T14:14:00Z")},
	{ArticleID: 6, Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T02:00:00Z")},
	{ArticleID: 7, Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07T14:08:00Z")},
	{ArticleID: 8, Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch. Surely I am not the only person who can see this?!", CreatedAt: ts("2020-04-17T02:08:00Z")},
	{ArticleID: 9, Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06T10:10:00Z")},
	{ArticleID: 10, Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14T05:15:00Z")},
	{ArticleID: 11, Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?", CreatedAt: ts("2020-01-15T23:21:00Z")},
	{ArticleID: 12, Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11T12:24:00Z")},
}

var seedComments = []domain.Comment{
	{CommentID: 1, ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! Lashings of compassion!", Votes: 16, CreatedAt: ts("2020-04-06T13:17:00Z")},
	{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
	{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy — onyou it works.", Votes: 100, CreatedAt: ts("2020-03-01T01:13:00Z")},
	{CommentID: 4, ArticleID: 1, Author: "icellusedkars", Body: "I carry a log — yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: ts("2020-02-23T12:01:00Z")},
	{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: ts("2020-11-03T21:00:00Z")},
	{CommentID: 6, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: ts("2020-04-11T21:02:00Z")},
	{CommentID: 7, ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: ts("2020-05-15T20:19:00Z")},
	{CommentID: 8, ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", Votes: 0, CreatedAt: ts("2020-04-14T20:19:00Z")},
	{CommentID: 9, ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", Votes: 0, CreatedAt: ts("2020-01-01T03:08:00Z")},
	{CommentID: 10, ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", Votes: 0, CreatedAt: ts("2020-06-20T07:24:00Z")},
	{CommentID: 11, ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: ts("2020-09-19T23:10:00Z")},
	{CommentID: 12, ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", Votes: 0, CreatedAt: ts("2020-03-02T07:10:00Z")},
	{CommentID: 13, ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", Votes: 0, CreatedAt: ts("2020-06-15T10:25:00Z")},
	{CommentID: 14, ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Votes: 16, CreatedAt: ts("2020-06-09T05:00:00Z")},
	{CommentID: 15, ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts("2020-11-24T00:08:00Z")},
	{CommentID: 16, ArticleID: 6, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
	{CommentID: 17, ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: ts("2020-03-14T17:02:00Z")},
	{CommentID: 18, ArticleID: 1, Author: "butter_bridge", Body: "This is a classic mistake to make, one that can be easily rectified.", Votes: 16, CreatedAt: ts("2020-04-06T13:17:00Z")},
}

// Seed wipes all rows and reinserts the fixture inside one transaction.
// Deletion runs children-first and insertion parents-first so the foreign
// keys hold throughout. Safe to call repeatedly.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM comments",
			"DELETE FROM articles",
			"DELETE FROM users",
			"DELETE FROM topics",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&seedTopics).Error; err != nil {
			return err
		}
		if err := tx.Create(&seedUsers).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&seedArticles).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&seedComments).Error
	})
}
