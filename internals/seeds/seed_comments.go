package seeds

import (
	commentModel "newshub_backend/internals/features/news/comments/model"
)

// 18 comments: 11 on article 1, none on article 7. The next comment created
// through the API gets id 19.
var CommentSeed = []commentModel.CommentModel{
	{
		CommentID: 1,
		Body:      "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		Votes:     16,
		Author:    "butter_bridge",
		ArticleID: 9,
		CreatedAt: at(2020, 4, 6, 12, 17),
	},
	{
		CommentID: 2,
		Body:      "The beautiful thing about treasure is that it exists.",
		Votes:     14,
		Author:    "butter_bridge",
		ArticleID: 1,
		CreatedAt: at(2020, 10, 31, 3, 3),
	},
	{
		CommentID: 3,
		Body:      "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.",
		Votes:     100,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 3, 1, 1, 13),
	},
	{
		CommentID: 4,
		Body:      "I carry a log — yes. Is it funny to you? It is not to me.",
		Votes:     -100,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 2, 23, 12, 1),
	},
	{
		CommentID: 5,
		Body:      "I hate streaming noses",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 11, 3, 21, 0),
	},
	{
		CommentID: 6,
		Body:      "I hate streaming eyes even more",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 4, 11, 21, 2),
	},
	{
		CommentID: 7,
		Body:      "Lobster pot",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 5, 15, 20, 19),
	},
	{
		CommentID: 8,
		Body:      "Delicious crackerbreads",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 4, 14, 20, 19),
	},
	{
		CommentID: 9,
		Body:      "Superficially charming",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 1, 1, 3, 8),
	},
	{
		CommentID: 10,
		Body:      "git push origin master",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 3,
		CreatedAt: at(2020, 6, 20, 7, 24),
	},
	{
		CommentID: 11,
		Body:      "Ambidextrous marsupial",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 3,
		CreatedAt: at(2020, 9, 19, 23, 10),
	},
	{
		CommentID: 12,
		Body:      "Massive intercranial brain haemorrhage",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 3, 2, 7, 10),
	},
	{
		CommentID: 13,
		Body:      "Fruit pastilles",
		Votes:     0,
		Author:    "icellusedkars",
		ArticleID: 1,
		CreatedAt: at(2020, 6, 15, 10, 25),
	},
	{
		CommentID: 14,
		Body:      "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.",
		Votes:     16,
		Author:    "icellusedkars",
		ArticleID: 5,
		CreatedAt: at(2020, 6, 9, 5, 0),
	},
	{
		CommentID: 15,
		Body:      "I am 100% sure that we're not completely sure.",
		Votes:     1,
		Author:    "butter_bridge",
		ArticleID: 5,
		CreatedAt: at(2020, 11, 24, 0, 8),
	},
	{
		CommentID: 16,
		Body:      "This is a bad article name",
		Votes:     1,
		Author:    "butter_bridge",
		ArticleID: 6,
		CreatedAt: at(2020, 10, 11, 15, 23),
	},
	{
		CommentID: 17,
		Body:      "The owls are not what they seem.",
		Votes:     20,
		Author:    "icellusedkars",
		ArticleID: 9,
		CreatedAt: at(2020, 3, 14, 17, 2),
	},
	{
		CommentID: 18,
		Body:      "This morning, I showered for nine minutes.",
		Votes:     16,
		Author:    "butter_bridge",
		ArticleID: 1,
		CreatedAt: at(2020, 7, 21, 0, 20),
	},
}
