package seeds

import (
	"time"

	articleModel "newshub_backend/internals/features/news/articles/model"
)

const defaultArticleImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// 13 articles: 12 on mitch, 1 on cats, none on paper. Article 1 starts with
// 100 votes; everything the behavioral tests pin down lives in this set.
var ArticleSeed = []articleModel.ArticleModel{
	{
		ArticleID:     1,
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		CreatedAt:     at(2020, 7, 9, 20, 11),
		Votes:         100,
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     2,
		Title:         "Sony Vaio; or, The Laptop",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Call me Mitchell. Some years ago I thought I would buy a laptop.",
		CreatedAt:     at(2020, 10, 16, 5, 3),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     3,
		Title:         "Eight pug gifs that remind me of mitch",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "some gifs",
		CreatedAt:     at(2020, 11, 3, 9, 12),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     4,
		Title:         "Student SUES Mitch!",
		Topic:         "mitch",
		Author:        "rogersop",
		Body:          "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY driven a student to punch his keyboard.",
		CreatedAt:     at(2020, 5, 6, 1, 14),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     5,
		Title:         "UNCOVERED: catspiracy to bring down democracy",
		Topic:         "cats",
		Author:        "rogersop",
		Body:          "Bastet walks amongst us, and the cats are taking arms!",
		CreatedAt:     at(2020, 8, 3, 13, 14),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     6,
		Title:         "A",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Delicious tin of cat food",
		CreatedAt:     at(2020, 10, 18, 1, 0),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     7,
		Title:         "Z",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "I was hungry.",
		CreatedAt:     at(2020, 1, 7, 14, 8),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     8,
		Title:         "Does Mitch predate civilisation?",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch.",
		CreatedAt:     at(2020, 4, 17, 1, 8),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     9,
		Title:         "They're not exactly dogs, are they?",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "Well? Think about it.",
		CreatedAt:     at(2020, 6, 6, 9, 10),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     10,
		Title:         "Seven inspirational thought leaders from Manchester UK",
		Topic:         "mitch",
		Author:        "rogersop",
		Body:          "Who are we kidding, there is only one, and it's Mitch!",
		CreatedAt:     at(2020, 5, 14, 4, 15),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     11,
		Title:         "Am I a cat?",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?",
		CreatedAt:     at(2020, 1, 15, 22, 21),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     12,
		Title:         "Moustache",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "Have you seen the size of that thing?",
		CreatedAt:     at(2020, 10, 11, 11, 24),
		ArticleImgURL: defaultArticleImg,
	},
	{
		ArticleID:     13,
		Title:         "Another article about Mitch",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "There will never be enough articles about Mitch!",
		CreatedAt:     at(2020, 10, 11, 11, 24),
		ArticleImgURL: defaultArticleImg,
	},
}
