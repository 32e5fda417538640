package mocks

import (
	"time"

	"github.com/news-forum-api/internal/models"
)

func ts(value string) models.Timestamp {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return models.NewTimestamp(t)
}

// FixtureTopics mirrors the seed data used by the integration suite.
// The "paper" topic has no articles.
func FixtureTopics() []models.Topic {
	return []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
}

// FixtureUsers returns the four seeded users
func FixtureUsers() []models.User {
	return []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}
}

// FixtureArticles returns the twelve seeded articles. Articles 2 and 4 have no comments.
func FixtureArticles() []models.Article {
	return []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T20:11:00Z"), Votes: 100},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", CreatedAt: ts("2020-10-16T05:03:00Z")},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z")},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: ts("2020-05-06T01:14:00Z")},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T13:14:00Z")},
		{ArticleID: 6, Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T01:00:00Z")},
		{ArticleID: 7, Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07T14:08:00Z")},
		{ArticleID: 8, Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: ts("2020-04-17T01:08:00Z")},
		{ArticleID: 9, Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06T09:10:00Z")},
		{ArticleID: 10, Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14T04:15:00Z")},
		{ArticleID: 11, Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat.", CreatedAt: ts("2020-01-15T22:21:00Z")},
		{ArticleID: 12, Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11T11:24:00Z")},
	}
}

// FixtureComments returns the eighteen seeded comments, eleven of them on article 1
func FixtureComments() []models.Comment {
	return []models.Comment{
		{CommentID: 1, ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Votes: 16, CreatedAt: ts("2020-04-06T12:17:00Z")},
		{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
		{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy.", Votes: 100, CreatedAt: ts("2020-03-01T01:13:00Z")},
		{CommentID: 4, ArticleID: 1, Author: "icellusedkars", Body: "I carry a log. Yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: ts("2020-02-23T12:01:00Z")},
		{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: ts("2020-11-03T21:00:00Z")},
		{CommentID: 6, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", CreatedAt: ts("2020-04-11T21:02:00Z")},
		{CommentID: 7, ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", CreatedAt: ts("2020-05-15T20:19:00Z")},
		{CommentID: 8, ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", CreatedAt: ts("2020-04-14T20:19:00Z")},
		{CommentID: 9, ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", CreatedAt: ts("2020-01-01T03:08:00Z")},
		{CommentID: 10, ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", CreatedAt: ts("2020-06-20T07:24:00Z")},
		{CommentID: 11, ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", CreatedAt: ts("2020-09-19T23:10:00Z")},
		{CommentID: 12, ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", CreatedAt: ts("2020-03-02T07:10:00Z")},
		{CommentID: 13, ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", CreatedAt: ts("2020-06-15T10:25:00Z")},
		{CommentID: 14, ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Votes: 16, CreatedAt: ts("2020-06-09T05:00:00Z")},
		{CommentID: 15, ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts("2020-11-24T00:08:00Z")},
		{CommentID: 16, ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
		{CommentID: 17, ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: ts("2020-03-14T17:02:00Z")},
		{CommentID: 18, ArticleID: 1, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: ts("2020-07-21T00:20:00Z")},
	}
}
