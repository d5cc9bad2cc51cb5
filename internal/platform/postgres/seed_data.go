package postgres

import (
	"time"

	"github.com/phrazzld/news-api/internal/domain"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// DevelopmentDataset returns the fixed dataset used by the seed command and
// the integration tests.
func DevelopmentDataset() Dataset {
	return Dataset{
		Topics: []domain.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []domain.User{
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
				AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.jpg",
			},
		},
		Articles: []domain.Article{
			{
				Title:     "Living in the shadow of a great man",
				Topic:     "mitch",
				Author:    "butter_bridge",
				Body:      "I find this existence challenging",
				CreatedAt: at(2020, time.July, 9, 20, 11),
				Votes:     100,
			},
			{
				Title:     "Sony Vaio; or, The Laptop",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Call me Mitchell. Some years ago, never mind how long precisely, having little or no money in my purse, and nothing particular to interest me on shore, I thought I would buy a laptop about a little and see the codey part of the world.",
				CreatedAt: at(2020, time.October, 16, 5, 3),
			},
			{
				Title:     "Eight pug gifs that remind me of mitch",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "some gifs",
				CreatedAt: at(2020, time.November, 3, 9, 12),
			},
			{
				Title:     "Student SUES Mitch!",
				Topic:     "mitch",
				Author:    "rogersop",
				Body:      "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages",
				CreatedAt: at(2020, time.May, 6, 1, 14),
			},
			{
				Title:     "UNCOVERED: catspiracy to bring down democracy",
				Topic:     "cats",
				Author:    "rogersop",
				Body:      "Bastet walks amongst us, and the cats are taking arms!",
				CreatedAt: at(2020, time.August, 3, 13, 14),
			},
			{
				Title:     "A",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Delicious tin of cat food",
				CreatedAt: at(2020, time.October, 18, 1, 0),
			},
			{
				Title:     "Z",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "I was hungry.",
				CreatedAt: at(2020, time.January, 7, 14, 8),
			},
			{
				Title:     "Does Mitch predate civilisation?",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch. Surely he is not the antichrist? It can't be! Could it?",
				CreatedAt: at(2020, time.April, 17, 1, 8),
			},
			{
				Title:     "They're not exactly dogs, are they?",
				Topic:     "mitch",
				Author:    "butter_bridge",
				Body:      "Well? Think about it.",
				CreatedAt: at(2020, time.June, 6, 9, 10),
			},
			{
				Title:     "Seven inspirational thought leaders from Manchester UK",
				Topic:     "mitch",
				Author:    "rogersop",
				Body:      "Who are we kidding, there is only one, and it's Mitch!",
				CreatedAt: at(2020, time.May, 14, 4, 15),
			},
			{
				Title:     "Am I a cat?",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?",
				CreatedAt: at(2020, time.January, 15, 22, 21),
			},
			{
				Title:     "Moustache",
				Topic:     "mitch",
				Author:    "butter_bridge",
				Body:      "Have you seen the size of that thing?",
				CreatedAt: at(2020, time.October, 11, 11, 24),
			},
		},
		Comments: []domain.Comment{
			{ArticleID: 9, Author: "butter_bridge", Votes: 16, CreatedAt: at(2020, time.April, 6, 12, 17),
				Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!"},
			{ArticleID: 1, Author: "butter_bridge", Votes: 14, CreatedAt: at(2020, time.October, 31, 3, 3),
				Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky."},
			{ArticleID: 1, Author: "icellusedkars", Votes: 100, CreatedAt: at(2020, time.March, 1, 1, 13),
				Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy, on you it works."},
			{ArticleID: 1, Author: "icellusedkars", Votes: -100, CreatedAt: at(2020, time.February, 23, 12, 1),
				Body: "I carry a log. Yes. Is it funny to you? It is not to me."},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.November, 3, 21, 0),
				Body: "I hate streaming noses"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.April, 11, 21, 2),
				Body: "I hate streaming eyes even more"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.May, 15, 20, 19),
				Body: "Lobster pot"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.April, 14, 20, 19),
				Body: "Delicious crackerbreads"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.January, 1, 3, 8),
				Body: "Superficially charming"},
			{ArticleID: 3, Author: "icellusedkars", CreatedAt: at(2020, time.June, 20, 7, 24),
				Body: "git push origin master"},
			{ArticleID: 3, Author: "icellusedkars", CreatedAt: at(2020, time.September, 19, 23, 10),
				Body: "Ambidextrous marsupial"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.March, 2, 7, 10),
				Body: "Massive intercranial brain haemorrhage"},
			{ArticleID: 1, Author: "icellusedkars", CreatedAt: at(2020, time.June, 15, 10, 25),
				Body: "Fruit pastilles"},
			{ArticleID: 5, Author: "icellusedkars", Votes: 16, CreatedAt: at(2020, time.June, 9, 5, 0),
				Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge."},
			{ArticleID: 5, Author: "butter_bridge", Votes: 1, CreatedAt: at(2020, time.November, 24, 0, 8),
				Body: "I am 100% sure that we're not completely sure."},
			{ArticleID: 6, Author: "butter_bridge", Votes: 1, CreatedAt: at(2020, time.October, 11, 15, 23),
				Body: "This is a bad article name"},
			{ArticleID: 9, Author: "icellusedkars", Votes: 20, CreatedAt: at(2020, time.March, 14, 17, 2),
				Body: "The owls are not what they seem."},
			{ArticleID: 1, Author: "butter_bridge", Votes: 16, CreatedAt: at(2020, time.July, 21, 0, 20),
				Body: "This morning, I showered for nine minutes."},
		},
	}
}
