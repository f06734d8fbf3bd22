package seeds

import (
	topicModel "newshub_backend/internals/features/news/topics/model"
)

var TopicSeed = []topicModel.TopicModel{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}
