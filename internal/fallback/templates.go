package fallback

// activityTemplate carries the fixed content of a scheduled item;
// price and time slot are filled in during synthesis.
type activityTemplate struct {
	Name     string
	Desc     string
	Duration string
	Rating   float64
}

// dayTheme is the template for one trip day: a headline theme plus
// exactly one activity per time slot.
type dayTheme struct {
	Name       string
	Activities [3]activityTemplate
}

var timeSlots = [3]string{"9:00 AM", "1:00 PM", "5:00 PM"}

// dayCostDivisors shape the per-day spend curve: day cost is
// (budget / days) divided by the day's entry, with days past five
// using divisorTail.
var dayCostDivisors = []float64{1.5, 1.2, 1.1, 1.0, 1.3}

const divisorTail = 1.0

var arrivalTheme = dayTheme{
	Name: "Arrival & Exploration",
	Activities: [3]activityTemplate{
		{
			Name:     "Hotel Check-in & Freshen Up",
			Desc:     "Settle into your stay and drop your bags before heading out",
			Duration: "1 hour",
			Rating:   4.4,
		},
		{
			Name:     "Neighborhood Orientation Walk",
			Desc:     "Get your bearings with an easy stroll through the streets near your hotel",
			Duration: "2 hours",
			Rating:   4.6,
		},
		{
			Name:     "Welcome Dinner at a Local Favorite",
			Desc:     "Ease into regional flavors with a relaxed first-night meal",
			Duration: "2 hours",
			Rating:   4.7,
		},
	},
}

var culturalTheme = dayTheme{
	Name: "Cultural Immersion",
	Activities: [3]activityTemplate{
		{
			Name:     "Temple Visit",
			Desc:     "Experience spiritual serenity at ornate temples",
			Duration: "2 hours",
			Rating:   4.7,
		},
		{
			Name:     "Local Market Tour",
			Desc:     "Vibrant markets brimming with handicrafts",
			Duration: "2.5 hours",
			Rating:   4.5,
		},
		{
			Name:     "Traditional Dance Show",
			Desc:     "Mesmerizing classical dance performance",
			Duration: "2 hours",
			Rating:   4.6,
		},
	},
}

var adventureTheme = dayTheme{
	Name: "Adventure Day",
	Activities: [3]activityTemplate{
		{
			Name:     "Zip Lining",
			Desc:     "Adrenaline rush through lush canopies",
			Duration: "2 hours",
			Rating:   4.7,
		},
		{
			Name:     "ATV Safari",
			Desc:     "Navigate rugged terrain on all-terrain vehicle",
			Duration: "3 hours",
			Rating:   4.6,
		},
		{
			Name:     "Rock Climbing",
			Desc:     "Challenge yourself with guided climbing",
			Duration: "4 hours",
			Rating:   4.5,
		},
	},
}

// relaxedTheme substitutes for the adventure day when no
// adventure-like interest was picked.
var relaxedTheme = dayTheme{
	Name: "Unwind & Recharge",
	Activities: [3]activityTemplate{
		{
			Name:     "Spa & Wellness Session",
			Desc:     "Recover from travel with a traditional massage and steam",
			Duration: "2 hours",
			Rating:   4.6,
		},
		{
			Name:     "Scenic Promenade Stroll",
			Desc:     "Unhurried walk along the prettiest stretch of town",
			Duration: "1.5 hours",
			Rating:   4.8,
		},
		{
			Name:     "Leisurely Cafe Afternoon",
			Desc:     "Watch the world go by over local coffee and snacks",
			Duration: "2 hours",
			Rating:   4.4,
		},
	},
}

var hiddenGemsTheme = dayTheme{
	Name: "Hidden Gems",
	Activities: [3]activityTemplate{
		{
			Name:     "Offbeat Alley Walk",
			Desc:     "Wander lanes most visitors miss, guided by local tips",
			Duration: "2.5 hours",
			Rating:   4.7,
		},
		{
			Name:     "Family-Run Eatery Lunch",
			Desc:     "Home-style cooking at a spot only regulars know",
			Duration: "1.5 hours",
			Rating:   4.8,
		},
		{
			Name:     "Local Artisan Workshop",
			Desc:     "Meet craftspeople and try your hand at their trade",
			Duration: "2 hours",
			Rating:   4.6,
		},
	},
}

var departureTheme = dayTheme{
	Name: "Relaxation & Departure",
	Activities: [3]activityTemplate{
		{
			Name:     "Slow Morning & Pool Time",
			Desc:     "Soak up the last hours of holiday pace",
			Duration: "2 hours",
			Rating:   4.5,
		},
		{
			Name:     "Souvenir Shopping Run",
			Desc:     "Pick up gifts and keepsakes before heading home",
			Duration: "2 hours",
			Rating:   4.4,
		},
		{
			Name:     "Checkout & Airport Transfer",
			Desc:     "Wrap up the trip with a comfortable ride to departures",
			Duration: "1.5 hours",
			Rating:   4.3,
		},
	},
}

var explorationTheme = dayTheme{
	Name: "City Exploration",
	Activities: [3]activityTemplate{
		{
			Name:     "Guided City Highlights Tour",
			Desc:     "Cover the landmarks you have not seen yet with a knowledgeable guide",
			Duration: "3 hours",
			Rating:   4.6,
		},
		{
			Name:     "Street Food Crawl",
			Desc:     "Culinary adventure through bustling local markets",
			Duration: "3 hours",
			Rating:   4.6,
		},
		{
			Name:     "Viewpoint & Photo Stop",
			Desc:     "Golden-hour panoramas from the best lookout in town",
			Duration: "1.5 hours",
			Rating:   4.7,
		},
	},
}

// themeForDay picks the template for a given 1-based day number.
func themeForDay(day int, adventurous bool) dayTheme {
	switch day {
	case 1:
		return arrivalTheme
	case 2:
		return culturalTheme
	case 3:
		if adventurous {
			return adventureTheme
		}
		return relaxedTheme
	case 4:
		return hiddenGemsTheme
	case 5:
		return departureTheme
	default:
		return explorationTheme
	}
}

func divisorForDay(day int) float64 {
	if day >= 1 && day <= len(dayCostDivisors) {
		return dayCostDivisors[day-1]
	}
	return divisorTail
}
