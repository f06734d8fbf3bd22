package seeds

import (
	userModel "newshub_backend/internals/features/news/users/model"
)

var UserSeed = []userModel.UserModel{
	{
		Username:  "butter_bridge",
		Name:      "jonny",
		AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
	},
	{
		Username:  "icellusedkars",
		Name:      "sam",
		AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
	},
	{
		Username:  "rogersop",
		Name:      "paul",
		AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
	},
	{
		Username:  "lurker",
		Name:      "do_nothing",
		AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
	},
}
