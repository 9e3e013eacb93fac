package bankkit

import (
	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
)

// allVariations is the default compatibility list
func allVariations() []question.Variation { return question.AllVariations() }

// noTotals covers intensive quantities like temperature or speed where a
// total has no physical meaning
func noTotals() []question.Variation {
	return []question.Variation{
		question.VariationCalculate,
		question.VariationMissingValue,
		question.VariationCompare,
		question.VariationNewValue,
		question.VariationTargetValue,
		question.VariationCombineGroups,
	}
}

var (
	dollars = bank.Unit{Symbol: "$", Position: bank.UnitPrefix}
	percent = bank.Unit{Symbol: "%", Position: bank.UnitSuffix}
	celsius = bank.Unit{Symbol: "°C", Position: bank.UnitSuffix}
)

func spaced(symbol string) bank.Unit {
	return bank.Unit{Symbol: symbol, Position: bank.UnitSuffix, Spaced: true}
}

/// BuiltinContexts returns the built-in context bank: 50 contexts across the
// 13 canonical categories. The same data seeds the ContextBanks workbook.
func BuiltinContexts() []bank.Context {
	var out []bank.Context
	out = append(out, physicalContexts()...)
	out = append(out, recreationContexts()...)
	out = append(out, healthContexts()...)
	out = append(out, transportationContexts()...)
	out = append(out, householdContexts()...)
	out = append(out, academicContexts()...)
	out = append(out, environmentalContexts()...)
	out = append(out, digitalContexts()...)
	out = append(out, earningsContexts()...)
	out = append(out, financialContexts()...)
	out = append(out, workplaceContexts()...)
	out = append(out, communityContexts()...)
	out = append(out, scienceContexts()...)
	return out
}

func physicalContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("parcel-weights"),
			Name:        "Parcel Weights",
			Category:    "Physical",
			Description: "Weights of parcels passing over a depot scale",
			Unit:        spaced("kg"),
			ValueMin:    1,
			ValueMax:    30,
			Decimals:    1,
			ItemLabel:   "weights",
			PeriodLabel: "parcels",
			DataLabel:   "Weights of {count} {period}",
			MeanLabel:   "parcel weight",
			PairLabels:  []string{"Morning batch", "Afternoon batch"},
			Subjects:    []string{"a postal clerk", "a courier"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name} works as {role} and weighs every parcel before it ships.",
				Rich:     "{name} works as {role} at a busy depot. Shipping rates depend on average weight, so {name} keeps a careful log of each parcel on the scale.",
			},
		},
		{
			ID:          core.ContextID("board-lengths"),
			Name:        "Cut Board Lengths",
			Category:    "Physical",
			Description: "Lengths of boards cut in a workshop",
			Unit:        spaced("cm"),
			ValueMin:    40,
			ValueMax:    240,
			Decimals:    0,
			ItemLabel:   "lengths",
			PeriodLabel: "boards",
			DataLabel:   "Lengths of {count} cut {period}",
			MeanLabel:   "board length",
			PairLabels:  []string{"First rack", "Second rack"},
			Subjects:    []string{"a carpenter", "a workshop student"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name} works as {role} and measures each board after cutting.",
				Rich:     "{name} works as {role} on a furniture order. The client asked about the average cut length, so {name} measures every board that comes off the saw.",
			},
		},
		{
			ID:          core.ContextID("pumpkin-masses"),
			Name:        "Pumpkin Masses",
			Category:    "Physical",
			Description: "Masses of pumpkins entered at a market fair",
			Unit:        spaced("kg"),
			ValueMin:    3,
			ValueMax:    18,
			Decimals:    1,
			ItemLabel:   "masses",
			PeriodLabel: "pumpkins",
			DataLabel:   "Masses of {count} {period}",
			MeanLabel:   "pumpkin mass",
			PairLabels:  []string{"North field", "South field"},
			Subjects:    []string{"a grower", "a market judge"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, weighs each entry at the fair.",
				Rich:     "{name} is {role} at the autumn fair. Prizes go by average mass per grower, so every pumpkin goes on the scale before judging.",
			},
		},
		{
			ID:          core.ContextID("jump-distances"),
			Name:        "Long Jump Distances",
			Category:    "Physical",
			Description: "Distances recorded across long jump attempts",
			Unit:        spaced("m"),
			ValueMin:    2,
			ValueMax:    6,
			Decimals:    2,
			ItemLabel:   "distances",
			PeriodLabel: "jumps",
			DataLabel:   "Distances over {count} {period}",
			MeanLabel:   "jump distance",
			PairLabels:  []string{"Morning session", "Afternoon session"},
			Subjects:    []string{"a PE teacher", "an athletics coach"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, records every long jump attempt.",
				Rich:     "{name} is {role} preparing students for the regional meet. Selection depends on consistent averages, so each of the {count} {period} is measured to the centimetre.",
			},
		},
	}
}

func recreationContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("song-tempos"),
			Name:        "Song Tempos",
			Category:    "Recreation",
			Description: "Tempo of songs lined up for a set",
			Unit:        spaced("bpm"),
			ValueMin:    90,
			ValueMax:    150,
			Decimals:    0,
			ItemLabel:   "tempos",
			PeriodLabel: "songs",
			DataLabel:   "Tempos for {count} {period}",
			MeanLabel:   "tempo",
			PairLabels:  []string{"Opening set", "Closing set"},
			Subjects:    []string{"a DJ", "a producer"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, tracked the tempo of each song in the set.",
				Rich:     "{name} is {role} planning a club night. The energy of a set rides on its average tempo, so {name} noted the bpm of all {count} {period} before locking the running order.",
			},
		},
		{
			ID:          core.ContextID("track-lengths"),
			Name:        "Playlist Track Lengths",
			Category:    "Recreation",
			Description: "Running times of tracks on a playlist",
			Unit:        spaced("min"),
			ValueMin:    2,
			ValueMax:    6,
			Decimals:    1,
			ItemLabel:   "lengths",
			PeriodLabel: "tracks",
			DataLabel:   "Lengths of {count} {period}",
			MeanLabel:   "track length",
			PairLabels:  []string{"Side A", "Side B"},
			Subjects:    []string{"a radio host", "a playlist curator"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, timed every track on the playlist.",
				Rich:     "{name} is {role} filling a one-hour slot. Fitting the hour depends on the average track length, so {name} timed each of the {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("bowling-scores"),
			Name:        "Bowling Scores",
			Category:    "Recreation",
			Description: "Scores across league bowling games",
			Unit:        bank.Unit{},
			ValueMin:    60,
			ValueMax:    220,
			Decimals:    0,
			ItemLabel:   "scores",
			PeriodLabel: "games",
			DataLabel:   "Scores over {count} {period}",
			MeanLabel:   "score",
			PairLabels:  []string{"Last season", "This season"},
			Subjects:    []string{"a league bowler", "a team captain"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, wrote down each game's score.",
				Rich:     "{name} is {role} chasing a spot in the playoffs. League standing goes by average score, so {name} keeps every game sheet from the season.",
			},
		},
		{
			ID:          core.ContextID("hike-distances"),
			Name:        "Weekend Hike Distances",
			Category:    "Recreation",
			Description: "Distances covered on weekend hikes",
			Unit:        spaced("km"),
			ValueMin:    4,
			ValueMax:    21,
			Decimals:    1,
			ItemLabel:   "distances",
			PeriodLabel: "hikes",
			DataLabel:   "Distances over {count} {period}",
			MeanLabel:   "hike distance",
			PairLabels:  []string{"Spring hikes", "Autumn hikes"},
			Subjects:    []string{"a trail guide", "a hiking club member"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, logs the distance of every weekend hike.",
				Rich:     "{name} is {role} training for a multi-day trek. The plan calls for a steady weekly average, so each of the {count} {period} goes into the logbook.",
			},
		},
	}
}

func healthContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("resting-heart-rates"),
			Name:        "Resting Heart Rates",
			Category:    "Health",
			Description: "Morning resting heart rate readings",
			Unit:        spaced("bpm"),
			ValueMin:    55,
			ValueMax:    95,
			Decimals:    0,
			ItemLabel:   "readings",
			PeriodLabel: "mornings",
			DataLabel:   "Readings over {count} {period}",
			MeanLabel:   "resting heart rate",
			PairLabels:  []string{"Before training", "After training"},
			Subjects:    []string{"a nurse", "a sports medicine specialist", "a fitness coach"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, records a resting heart rate every morning.",
				Rich:     "{name} works as {role} evaluating an athlete's cardiovascular fitness. A falling average resting rate signals progress, so readings are taken on all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("calories-burned"),
			Name:        "Calories Burned",
			Category:    "Health",
			Description: "Calories burned per training session",
			Unit:        spaced("kcal"),
			ValueMin:    180,
			ValueMax:    650,
			Decimals:    0,
			ItemLabel:   "totals",
			PeriodLabel: "workouts",
			DataLabel:   "Calories burned over {count} {period}",
			MeanLabel:   "calorie burn",
			PairLabels:  []string{"Week 1", "Week 2"},
			Subjects:    []string{"a personal trainer", "a gym member"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, logs the calories burned after each workout.",
				Rich:     "{name} is {role} following a training plan. The plan targets an average burn per session, so the tracker total is saved after every one of the {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("step-counts"),
			Name:        "Daily Step Counts",
			Category:    "Health",
			Description: "Steps recorded by a fitness tracker",
			Unit:        spaced("steps"),
			ValueMin:    3000,
			ValueMax:    15000,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "days",
			DataLabel:   "Step counts over {count} {period}",
			MeanLabel:   "daily step count",
			PairLabels:  []string{"Work week", "Weekend"},
			Subjects:    []string{"a physiotherapist", "a patient"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name}'s tracker saved the step count for each day.",
				Rich:     "{name} is rebuilding stamina after an injury, and the physiotherapist set a daily average to reach. The tracker kept the count for all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("sleep-hours"),
			Name:        "Nightly Sleep",
			Category:    "Health",
			Description: "Hours slept per night",
			Unit:        spaced("hours"),
			ValueMin:    5,
			ValueMax:    10,
			Decimals:    1,
			ItemLabel:   "durations",
			PeriodLabel: "nights",
			DataLabel:   "Sleep over {count} {period}",
			MeanLabel:   "nightly sleep",
			PairLabels:  []string{"Exam week", "Holiday week"},
			Subjects:    []string{"a student", "a shift worker"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} noted the hours slept each night.",
				Rich:     "{name}, {role}, suspects short nights are dragging the week down and wrote down the sleep for each of the {count} {period} to check the average.",
			},
		},
	}
}

func transportationContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("commute-times"),
			Name:        "Morning Commute Times",
			Category:    "Transportation",
			Description: "Door-to-desk morning commute times",
			Unit:        spaced("min"),
			ValueMin:    18,
			ValueMax:    55,
			Decimals:    0,
			ItemLabel:   "times",
			PeriodLabel: "mornings",
			DataLabel:   "Commute times over {count} {period}",
			MeanLabel:   "commute time",
			PairLabels:  []string{"Train route", "Bus route"},
			Subjects:    []string{"a commuter", "an office worker"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} timed the morning commute on each of the {count} {period}.",
				Rich:     "{name}, {role}, is deciding between two routes to work and timed the door-to-desk trip every morning to compare the averages.",
			},
		},
		{
			ID:          core.ContextID("bus-passengers"),
			Name:        "Bus Passenger Counts",
			Category:    "Transportation",
			Description: "Passengers boarding per trip on one route",
			Unit:        bank.Unit{},
			ValueMin:    12,
			ValueMax:    60,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "trips",
			DataLabel:   "Passenger counts over {count} {period}",
			MeanLabel:   "passenger count",
			PairLabels:  []string{"Route 12", "Route 15"},
			Subjects:    []string{"a transit planner", "a bus driver"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, counts passengers boarding on each trip.",
				Rich:     "{name} works as {role} reviewing service levels. Frequency decisions rest on the average load per trip, so boarding counts were taken for all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("fuel-fills"),
			Name:        "Fuel Fill Volumes",
			Category:    "Transportation",
			Description: "Litres taken on at each fuel stop",
			Unit:        spaced("L"),
			ValueMin:    25,
			ValueMax:    60,
			Decimals:    1,
			ItemLabel:   "fills",
			PeriodLabel: "stops",
			DataLabel:   "Fuel taken over {count} {period}",
			MeanLabel:   "fill volume",
			PairLabels:  []string{"City driving", "Highway driving"},
			Subjects:    []string{"a delivery driver", "a fleet manager"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, records the litres at every fuel stop.",
				Rich:     "{name} is {role} watching running costs. The fuel card statement only makes sense against the average fill, so each of the {count} {period} is logged.",
			},
		},
		{
			ID:          core.ContextID("highway-speeds"),
			Name:        "Highway Speed Checks",
			Category:    "Transportation",
			Description: "Speeds recorded at a highway checkpoint",
			Unit:        spaced("km/h"),
			ValueMin:    80,
			ValueMax:    110,
			Decimals:    0,
			ItemLabel:   "readings",
			PeriodLabel: "checks",
			DataLabel:   "Speeds over {count} {period}",
			MeanLabel:   "speed",
			PairLabels:  []string{"Northbound", "Southbound"},
			Subjects:    []string{"a traffic analyst", "a road safety officer"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, logged the speed at each checkpoint pass.",
				Rich:     "{name} works as {role} assessing a stretch of highway. The report needs the average recorded speed, so the radar log for all {count} {period} was pulled.",
			},
		},
	}
}

func householdContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("electric-bills"),
			Name:        "Monthly Electricity Bills",
			Category:    "Household",
			Description: "Electricity bills across recent months",
			Unit:        dollars,
			ValueMin:    60,
			ValueMax:    220,
			Decimals:    2,
			ItemLabel:   "bills",
			PeriodLabel: "months",
			DataLabel:   "Bills over {count} {period}",
			MeanLabel:   "monthly bill",
			PairLabels:  []string{"Last winter", "This winter"},
			Subjects:    []string{"a homeowner", "a tenant"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} kept the electricity bill for each of the {count} {period}.",
				Rich:     "{name}, {role}, is budgeting for the year ahead and pulled out the last {count} electricity bills to work out what a typical month costs.",
			},
		},
		{
			ID:          core.ContextID("grocery-runs"),
			Name:        "Grocery Run Totals",
			Category:    "Household",
			Description: "Checkout totals from grocery trips",
			Unit:        dollars,
			ValueMin:    45,
			ValueMax:    180,
			Decimals:    2,
			ItemLabel:   "totals",
			PeriodLabel: "trips",
			DataLabel:   "Checkout totals over {count} {period}",
			MeanLabel:   "grocery spend",
			PairLabels:  []string{"Supermarket", "Local market"},
			Subjects:    []string{"a parent", "a flatmate on shopping duty"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} saved the receipt from every grocery trip.",
				Rich:     "{name}, {role}, wants to know what a normal shop costs before setting the food budget, so every receipt from the {count} {period} went in a drawer.",
			},
		},
		{
			ID:          core.ContextID("bake-times"),
			Name:        "Loaf Bake Times",
			Category:    "Household",
			Description: "Oven times for sourdough loaves",
			Unit:        spaced("min"),
			ValueMin:    35,
			ValueMax:    70,
			Decimals:    0,
			ItemLabel:   "times",
			PeriodLabel: "loaves",
			DataLabel:   "Bake times over {count} {period}",
			MeanLabel:   "bake time",
			PairLabels:  []string{"Old oven", "New oven"},
			Subjects:    []string{"a home baker", "a weekend cook"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, timed each loaf in the oven.",
				Rich:     "{name} is {role} chasing a consistent crust. The recipe book wants a reliable average bake, so the timer result for all {count} {period} went into the margin notes.",
			},
		},
		{
			ID:          core.ContextID("water-usage"),
			Name:        "Daily Water Use",
			Category:    "Household",
			Description: "Litres drawn per day on the house meter",
			Unit:        spaced("L"),
			ValueMin:    110,
			ValueMax:    260,
			Decimals:    0,
			ItemLabel:   "readings",
			PeriodLabel: "days",
			DataLabel:   "Water use over {count} {period}",
			MeanLabel:   "daily water use",
			PairLabels:  []string{"Before the fix", "After the fix"},
			Subjects:    []string{"a homeowner", "a plumber"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} read the water meter at the same time each day.",
				Rich:     "{name}, {role}, suspects a slow leak and read the meter daily, hoping the average would confirm it before calling anyone out.",
			},
		},
	}
}

func academicContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("quiz-scores"),
			Name:        "Weekly Quiz Scores",
			Category:    "Academic",
			Description: "Percentage scores on weekly quizzes",
			Unit:        percent,
			ValueMin:    55,
			ValueMax:    98,
			Decimals:    1,
			ItemLabel:   "scores",
			PeriodLabel: "quizzes",
			DataLabel:   "Scores over {count} {period}",
			MeanLabel:   "quiz score",
			PairLabels:  []string{"First term", "Second term"},
			Subjects:    []string{"a math teacher", "a student"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, recorded the score on each weekly quiz.",
				Rich:     "{name} is {role} tracking progress toward the end-of-term report. The report grade comes from the quiz average, so all {count} {period} count.",
			},
		},
		{
			ID:          core.ContextID("class-attendance"),
			Name:        "Class Attendance",
			Category:    "Academic",
			Description: "Students present per class day",
			Unit:        bank.Unit{},
			ValueMin:    18,
			ValueMax:    32,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "days",
			DataLabel:   "Attendance over {count} {period}",
			MeanLabel:   "attendance",
			PairLabels:  []string{"Morning class", "Afternoon class"},
			Subjects:    []string{"a homeroom teacher", "an office administrator"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, takes the roll at the start of each day.",
				Rich:     "{name} is {role} preparing the term summary. The office asks for average daily attendance, so the roll from each of the {count} {period} is tallied.",
			},
		},
		{
			ID:          core.ContextID("reading-minutes"),
			Name:        "Evening Reading Minutes",
			Category:    "Academic",
			Description: "Minutes of reading logged per evening",
			Unit:        spaced("min"),
			ValueMin:    10,
			ValueMax:    60,
			Decimals:    0,
			ItemLabel:   "entries",
			PeriodLabel: "evenings",
			DataLabel:   "Reading logged over {count} {period}",
			MeanLabel:   "nightly reading time",
			PairLabels:  []string{"School nights", "Weekend nights"},
			Subjects:    []string{"a year 5 student", "a parent"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} filled in the reading log every evening.",
				Rich:     "{name}, {role}, signed the home reading log each night. The class challenge rewards the best average, so none of the {count} {period} was skipped.",
			},
		},
		{
			ID:          core.ContextID("spelling-results"),
			Name:        "Spelling Test Results",
			Category:    "Academic",
			Description: "Words correct out of twenty per test",
			Unit:        bank.Unit{},
			ValueMin:    8,
			ValueMax:    20,
			Decimals:    0,
			ItemLabel:   "results",
			PeriodLabel: "tests",
			DataLabel:   "Results over {count} {period}",
			MeanLabel:   "test result",
			PairLabels:  []string{"Before practice", "After practice"},
			Subjects:    []string{"a student", "a tutor"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, kept every spelling test result.",
				Rich:     "{name} is {role} working toward the spelling bee. The tutor watches the rolling average, so each of the {count} {period} is marked and filed.",
			},
		},
	}
}

func environmentalContexts() []bank.Context {
	return []bank.Context{
		{
			ID:            core.ContextID("winter-lows"),
			Name:          "Overnight Winter Lows",
			Category:      "Environmental",
			Description:   "Overnight low temperatures in midwinter",
			Unit:          celsius,
			ValueMin:      -15,
			ValueMax:      8,
			Decimals:      1,
			AllowNegative: true,
			ItemLabel:     "lows",
			PeriodLabel:   "nights",
			DataLabel:     "Overnight lows over {count} {period}",
			MeanLabel:     "overnight low",
			PairLabels:    []string{"First cold snap", "Second cold snap"},
			Subjects:      []string{"a weather watcher", "an orchardist"},
			Compatible:    noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, reads the minimum thermometer each morning.",
				Rich:     "{name} is {role} deciding when to cover the young trees. Frost damage tracks the average overnight low, so the thermometer is read after every one of the {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("daily-rainfall"),
			Name:        "Daily Rainfall",
			Category:    "Environmental",
			Description: "Rain gauge readings per day",
			Unit:        spaced("mm"),
			ValueMin:    1,
			ValueMax:    38,
			Decimals:    1,
			ItemLabel:   "totals",
			PeriodLabel: "days",
			DataLabel:   "Rainfall over {count} {period}",
			MeanLabel:   "daily rainfall",
			PairLabels:  []string{"April", "May"},
			Subjects:    []string{"a gardener", "a farm hand"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, empties and reads the rain gauge daily.",
				Rich:     "{name} is {role} planning the irrigation schedule. Watering only makes sense against the average daily rainfall, so the gauge is read on all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("snow-depths"),
			Name:        "Morning Snow Depths",
			Category:    "Environmental",
			Description: "Snow depth at a fixed stake each morning",
			Unit:        spaced("cm"),
			ValueMin:    2,
			ValueMax:    45,
			Decimals:    0,
			ItemLabel:   "depths",
			PeriodLabel: "mornings",
			DataLabel:   "Snow depths over {count} {period}",
			MeanLabel:   "snow depth",
			PairLabels:  []string{"Valley stake", "Ridge stake"},
			Subjects:    []string{"a ski patroller", "a lodge keeper"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, checks the snow stake before the lifts open.",
				Rich:     "{name} is {role} writing the morning report. Guests ask about typical cover, so the stake reading from each of the {count} {period} goes on the board.",
			},
		},
		{
			ID:          core.ContextID("afternoon-highs"),
			Name:        "Afternoon Highs",
			Category:    "Environmental",
			Description: "Afternoon high temperatures over a stretch of days",
			Unit:        celsius,
			ValueMin:    14,
			ValueMax:    33,
			Decimals:    1,
			ItemLabel:   "highs",
			PeriodLabel: "afternoons",
			DataLabel:   "Afternoon highs over {count} {period}",
			MeanLabel:   "afternoon high",
			PairLabels:  []string{"Early summer", "Late summer"},
			Subjects:    []string{"a park ranger", "a pool manager"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} noted the afternoon high on each of the {count} {period}.",
				Rich:     "{name}, {role}, is choosing opening hours for the season and checked the average afternoon high before fixing the roster.",
			},
		},
	}
}

func digitalContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("file-sizes"),
			Name:        "Project File Sizes",
			Category:    "Digital",
			Description: "Sizes of files in a shared project folder",
			Unit:        spaced("MB"),
			ValueMin:    120,
			ValueMax:    260,
			Decimals:    1,
			ItemLabel:   "sizes",
			PeriodLabel: "files",
			DataLabel:   "Project file sizes for {count} {period}",
			MeanLabel:   "file size",
			PairLabels:  []string{"Design files", "Render files"},
			Subjects:    []string{"a video editor", "a project lead"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} checked the size of each file before archiving.",
				Rich:     "{name}, {role}, is sizing backup storage for the team. The quote depends on the average file size, so all {count} {period} were inspected.",
			},
		},
		{
			ID:          core.ContextID("download-speeds"),
			Name:        "Download Speed Tests",
			Category:    "Digital",
			Description: "Evening broadband speed test results",
			Unit:        spaced("Mbps"),
			ValueMin:    45,
			ValueMax:    240,
			Decimals:    1,
			ItemLabel:   "tests",
			PeriodLabel: "evenings",
			DataLabel:   "Speed tests over {count} {period}",
			MeanLabel:   "download speed",
			PairLabels:  []string{"Old plan", "New plan"},
			Subjects:    []string{"a remote worker", "a gamer"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} ran a speed test at the same time each evening.",
				Rich:     "{name}, {role}, suspects the connection drops at peak time and ran a test on each of the {count} {period} to put an average in front of the provider.",
			},
		},
		{
			ID:          core.ContextID("photo-uploads"),
			Name:        "Daily Photo Uploads",
			Category:    "Digital",
			Description: "Photos uploaded to a class gallery per day",
			Unit:        bank.Unit{},
			ValueMin:    4,
			ValueMax:    60,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "days",
			DataLabel:   "Uploads over {count} {period}",
			MeanLabel:   "daily upload count",
			PairLabels:  []string{"Camp week", "Normal week"},
			Subjects:    []string{"a yearbook editor", "a club moderator"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, counts the photos landing in the gallery each day.",
				Rich:     "{name} is {role} planning the storage quota for the term. The admin panel shows uploads per day, and the quota request needs the average across the {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("video-lengths"),
			Name:        "Tutorial Video Lengths",
			Category:    "Digital",
			Description: "Lengths of tutorial videos in a course",
			Unit:        spaced("min"),
			ValueMin:    3,
			ValueMax:    18,
			Decimals:    1,
			ItemLabel:   "lengths",
			PeriodLabel: "videos",
			DataLabel:   "Lengths of {count} {period}",
			MeanLabel:   "video length",
			PairLabels:  []string{"Module 1", "Module 2"},
			Subjects:    []string{"a course author", "an instructional designer"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, timed each tutorial video in the module.",
				Rich:     "{name} is {role} reworking a course. Learners drop off when videos run long, so {name} timed all {count} {period} to see where the average sits.",
			},
		},
	}
}

func earningsContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("server-tips"),
			Name:        "Server Tips",
			Category:    "Earnings",
			Description: "Tips earned per shift waiting tables",
			Unit:        dollars,
			ValueMin:    20,
			ValueMax:    90,
			Decimals:    2,
			ItemLabel:   "tips",
			PeriodLabel: "days",
			DataLabel:   "Tips over {count} {period}",
			MeanLabel:   "daily tip amount",
			PairLabels:  []string{"Week 1", "Week 2"},
			Subjects:    []string{"a server", "a barista", "a bartender"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name} works as {role} and counts the tips at the end of each shift.",
				Rich:     "{name} works as {role} saving for a deposit. The savings plan assumes a steady average in tips, so the jar is counted after every one of the {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("weekend-wages"),
			Name:        "Weekend Shift Pay",
			Category:    "Earnings",
			Description: "Pay received per weekend shift",
			Unit:        dollars,
			ValueMin:    60,
			ValueMax:    150,
			Decimals:    2,
			ItemLabel:   "payments",
			PeriodLabel: "shifts",
			DataLabel:   "Pay over {count} {period}",
			MeanLabel:   "shift pay",
			PairLabels:  []string{"Saturday shifts", "Sunday shifts"},
			Subjects:    []string{"a lifeguard", "a retail assistant"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, notes the pay from each weekend shift.",
				Rich:     "{name} works weekends as {role} while studying. Rent is planned around the average shift, so every one of the {count} {period} goes into a spreadsheet.",
			},
		},
		{
			ID:          core.ContextID("market-sales"),
			Name:        "Market Stall Sales",
			Category:    "Earnings",
			Description: "Takings per market day at a stall",
			Unit:        dollars,
			ValueMin:    150,
			ValueMax:    600,
			Decimals:    0,
			ItemLabel:   "takings",
			PeriodLabel: "market days",
			DataLabel:   "Takings over {count} {period}",
			MeanLabel:   "daily takings",
			PairLabels:  []string{"Winter markets", "Summer markets"},
			Subjects:    []string{"a stallholder", "a candle maker"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, counts the cash box after each market day.",
				Rich:     "{name} is {role} weighing up a second stall. The decision hangs on the average takings per market day, so the cash box totals from all {count} {period} are in the ledger.",
			},
		},
		{
			ID:          core.ContextID("dog-walking"),
			Name:        "Dog Walking Fees",
			Category:    "Earnings",
			Description: "Fees collected per dog walk",
			Unit:        dollars,
			ValueMin:    12,
			ValueMax:    35,
			Decimals:    2,
			ItemLabel:   "fees",
			PeriodLabel: "walks",
			DataLabel:   "Fees over {count} {period}",
			MeanLabel:   "fee per walk",
			PairLabels:  []string{"Weekday walks", "Weekend walks"},
			Subjects:    []string{"a dog walker", "a pet sitter"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, records the fee after each walk.",
				Rich:     "{name} walks dogs after school and is deciding whether to raise prices. The new rate card starts from the current average fee across the {count} {period}.",
			},
		},
	}
}

func financialContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("home-prices"),
			Name:        "Neighborhood Home Prices",
			Category:    "Financial",
			Description: "Recent sale prices on nearby streets",
			Unit:        dollars,
			ValueMin:    250000,
			ValueMax:    750000,
			Decimals:    0,
			ItemLabel:   "prices",
			PeriodLabel: "sales",
			DataLabel:   "Sale prices for {count} recent {period}",
			MeanLabel:   "sale price",
			PairLabels:  []string{"Oak Street", "Elm Street"},
			Subjects:    []string{"a real estate agent", "a first-home buyer"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, pulled the recent sale prices for the street.",
				Rich:     "{name} is {role} preparing an appraisal. The owner wants to hear the average of comparable sales, so {name} listed the last {count} {period} in the area.",
			},
		},
		{
			ID:          core.ContextID("phone-bills"),
			Name:        "Monthly Phone Bills",
			Category:    "Financial",
			Description: "Phone bills across recent months",
			Unit:        dollars,
			ValueMin:    35,
			ValueMax:    95,
			Decimals:    2,
			ItemLabel:   "bills",
			PeriodLabel: "months",
			DataLabel:   "Phone bills over {count} {period}",
			MeanLabel:   "monthly bill",
			PairLabels:  []string{"Old contract", "New contract"},
			Subjects:    []string{"a customer", "a budgeter"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} kept the phone bill from each of the {count} {period}.",
				Rich:     "{name}, {role}, is comparing plans before the contract renews and lined up the last {count} bills to see the true monthly average.",
			},
		},
		{
			ID:          core.ContextID("savings-deposits"),
			Name:        "Monthly Savings Deposits",
			Category:    "Financial",
			Description: "Amounts moved into savings per month",
			Unit:        dollars,
			ValueMin:    50,
			ValueMax:    400,
			Decimals:    0,
			ItemLabel:   "deposits",
			PeriodLabel: "months",
			DataLabel:   "Deposits over {count} {period}",
			MeanLabel:   "monthly deposit",
			PairLabels:  []string{"First half", "Second half"},
			Subjects:    []string{"a saver", "an apprentice"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} moved money into savings at the end of each month.",
				Rich:     "{name}, {role}, set a goal for the year and checks the average monthly deposit to see whether the goal is still in reach.",
			},
		},
		{
			ID:          core.ContextID("car-repairs"),
			Name:        "Car Repair Invoices",
			Category:    "Financial",
			Description: "Invoice totals across workshop visits",
			Unit:        dollars,
			ValueMin:    120,
			ValueMax:    900,
			Decimals:    0,
			ItemLabel:   "invoices",
			PeriodLabel: "visits",
			DataLabel:   "Invoices over {count} {period}",
			MeanLabel:   "repair cost",
			PairLabels:  []string{"Old car", "New car"},
			Subjects:    []string{"a car owner", "a mechanic"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "",
				Standard: "{name} filed the invoice from each workshop visit.",
				Rich:     "{name}, {role}, is deciding whether the old car is worth keeping. The deciding number is the average invoice across the last {count} {period}.",
			},
		},
	}
}

func workplaceContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("support-tickets"),
			Name:        "Support Tickets Closed",
			Category:    "Workplace",
			Description: "Tickets closed per day on a help desk",
			Unit:        bank.Unit{},
			ValueMin:    8,
			ValueMax:    35,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "days",
			DataLabel:   "Tickets closed over {count} {period}",
			MeanLabel:   "daily closure count",
			PairLabels:  []string{"Before the update", "After the update"},
			Subjects:    []string{"a help desk lead", "a support engineer"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, tallies the tickets closed each day.",
				Rich:     "{name} works as {role} reporting to the ops review. The dashboard tracks average closures per day, so the count from each of the {count} {period} is checked against it.",
			},
		},
		{
			ID:          core.ContextID("meeting-lengths"),
			Name:        "Meeting Lengths",
			Category:    "Workplace",
			Description: "Lengths of team meetings in a sprint",
			Unit:        spaced("min"),
			ValueMin:    15,
			ValueMax:    75,
			Decimals:    0,
			ItemLabel:   "lengths",
			PeriodLabel: "meetings",
			DataLabel:   "Lengths of {count} {period}",
			MeanLabel:   "meeting length",
			PairLabels:  []string{"Last sprint", "This sprint"},
			Subjects:    []string{"a scrum master", "a team lead"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, timed every meeting in the sprint.",
				Rich:     "{name} is {role} trying to win back focus time. The case to management rests on the average meeting length, so all {count} {period} were timed.",
			},
		},
		{
			ID:          core.ContextID("units-assembled"),
			Name:        "Units Assembled per Shift",
			Category:    "Workplace",
			Description: "Units finished per shift on an assembly line",
			Unit:        bank.Unit{},
			ValueMin:    40,
			ValueMax:    120,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "shifts",
			DataLabel:   "Units finished over {count} {period}",
			MeanLabel:   "output per shift",
			PairLabels:  []string{"Day shift", "Night shift"},
			Subjects:    []string{"a line supervisor", "a production planner"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, logs the finished units at the end of each shift.",
				Rich:     "{name} works as {role} setting next quarter's targets. Targets are set off the average output per shift, so the tally from each of the {count} {period} matters.",
			},
		},
		{
			ID:          core.ContextID("delivery-rounds"),
			Name:        "Deliveries per Round",
			Category:    "Workplace",
			Description: "Parcels delivered per round",
			Unit:        bank.Unit{},
			ValueMin:    14,
			ValueMax:    48,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "rounds",
			DataLabel:   "Deliveries over {count} {period}",
			MeanLabel:   "deliveries per round",
			PairLabels:  []string{"Van route", "Bike route"},
			Subjects:    []string{"a courier", "a dispatch manager"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, counts the drops completed on each round.",
				Rich:     "{name} works as {role} and the depot is rebalancing routes. Fair routes start from the average drops per round, so every one of the {count} {period} is on the sheet.",
			},
		},
	}
}

func communityContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("food-drive"),
			Name:        "Food Drive Donations",
			Category:    "Community",
			Description: "Kilograms donated per collection day",
			Unit:        spaced("kg"),
			ValueMin:    5,
			ValueMax:    60,
			Decimals:    0,
			ItemLabel:   "donations",
			PeriodLabel: "days",
			DataLabel:   "Donations over {count} {period}",
			MeanLabel:   "daily donation weight",
			PairLabels:  []string{"First week", "Second week"},
			Subjects:    []string{"a volunteer coordinator", "a food bank worker"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, weighs the donation bins each day.",
				Rich:     "{name} is {role} running the school food drive. The newsletter reports a daily average, so the bins from all {count} {period} go over the scale.",
			},
		},
		{
			ID:          core.ContextID("volunteer-hours"),
			Name:        "Volunteer Shift Hours",
			Category:    "Community",
			Description: "Hours volunteered per weekend shift",
			Unit:        spaced("hours"),
			ValueMin:    2,
			ValueMax:    9,
			Decimals:    1,
			ItemLabel:   "entries",
			PeriodLabel: "weekends",
			DataLabel:   "Hours logged over {count} {period}",
			MeanLabel:   "weekend hours",
			PairLabels:  []string{"Garden crew", "Kitchen crew"},
			Subjects:    []string{"a volunteer", "a shelter coordinator"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, signs the timesheet after every weekend shift.",
				Rich:     "{name} volunteers at the shelter, and the grant report asks for average hours per weekend. The signed timesheets cover all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("library-visitors"),
			Name:        "Library Visitor Counts",
			Category:    "Community",
			Description: "Door counter totals per open day",
			Unit:        bank.Unit{},
			ValueMin:    40,
			ValueMax:    220,
			Decimals:    0,
			ItemLabel:   "counts",
			PeriodLabel: "days",
			DataLabel:   "Visitor counts over {count} {period}",
			MeanLabel:   "daily visitor count",
			PairLabels:  []string{"Term time", "Holidays"},
			Subjects:    []string{"a librarian", "a branch manager"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} works as {role}.",
				Standard: "{name}, {role}, reads the door counter at closing time.",
				Rich:     "{name} works as {role} making the case for longer hours. The council wants the average daily count, so the door counter is logged for each of the {count} {period}.",
			},
		},
	}
}

func scienceContexts() []bank.Context {
	return []bank.Context{
		{
			ID:          core.ContextID("seedling-heights"),
			Name:        "Seedling Heights",
			Category:    "Science",
			Description: "Heights of seedlings in a growth trial",
			Unit:        spaced("cm"),
			ValueMin:    3,
			ValueMax:    19,
			Decimals:    1,
			ItemLabel:   "heights",
			PeriodLabel: "seedlings",
			DataLabel:   "Heights of {count} {period}",
			MeanLabel:   "seedling height",
			PairLabels:  []string{"Sunny tray", "Shaded tray"},
			Subjects:    []string{"a biology student", "a lab technician"},
			Compatible:  allVariations(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, measures each seedling in the tray.",
				Rich:     "{name} is {role} running a light experiment. The write-up compares average heights between trays, so all {count} {period} are measured with the same ruler.",
			},
		},
		{
			ID:          core.ContextID("reaction-times"),
			Name:        "Reaction Times",
			Category:    "Science",
			Description: "Reaction times across ruler-drop trials",
			Unit:        spaced("ms"),
			ValueMin:    180,
			ValueMax:    420,
			Decimals:    0,
			ItemLabel:   "times",
			PeriodLabel: "trials",
			DataLabel:   "Reaction times over {count} {period}",
			MeanLabel:   "reaction time",
			PairLabels:  []string{"Dominant hand", "Other hand"},
			Subjects:    []string{"a psychology student", "a lab partner"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, recorded the time for each trial.",
				Rich:     "{name} is {role} collecting data for the methods class. Single trials are noisy, so the report uses the average across all {count} {period}.",
			},
		},
		{
			ID:          core.ContextID("stream-ph"),
			Name:        "Stream pH Readings",
			Category:    "Science",
			Description: "pH readings from water samples along a stream",
			Unit:        bank.Unit{},
			ValueMin:    5.5,
			ValueMax:    8.5,
			Decimals:    1,
			ItemLabel:   "readings",
			PeriodLabel: "samples",
			DataLabel:   "pH readings for {count} {period}",
			MeanLabel:   "pH",
			PairLabels:  []string{"Upstream", "Downstream"},
			Subjects:    []string{"an environmental science student", "a field officer"},
			Compatible:  noTotals(),
			Phrases: bank.Phrases{
				Minimal:  "{name} is {role}.",
				Standard: "{name}, {role}, tested a sample at each point along the stream.",
				Rich:     "{name} is {role} surveying a stream near the quarry. The council compares average pH against last year, so {name} tested all {count} {period} on the same afternoon.",
			},
		},
	}
}
