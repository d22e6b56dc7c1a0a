package refdata

// candidates is the static per-seat candidate roster keyed by seat name, then
// party. Seats absent from the roster are initialized with an empty results
// list; the roster only covers constituencies whose nominations were published.
var candidates = map[string]map[string]string{
	"ঢাকা-১": {
		"বিএনপি":               "খন্দকার আবু আশফাক",
		"জামায়াতে ইসলামী":     "মাওলানা আবদুল হাই",
		"জাতীয় নাগরিক পার্টি": "মো. সুলতান মাহমুদ",
	},
	"ঢাকা-৮": {
		"বিএনপি":           "মির্জা আব্বাস",
		"জামায়াতে ইসলামী": "মু. হেলাল উদ্দিন",
	},
	"ঢাকা-৯": {
		"বিএনপি":               "হাবিব-উন-নবী খান সোহেল",
		"ইসলামী আন্দোলন বাংলাদেশ": "মুফতি মাসুম বিল্লাহ",
	},
	"বগুড়া-৬": {
		"বিএনপি":           "তারেক রহমান",
		"জামায়াতে ইসলামী": "অধ্যক্ষ আবু নাসের",
	},
	"চট্টগ্রাম-১০": {
		"বিএনপি":               "আবদুল্লাহ আল নোমান",
		"জাতীয় নাগরিক পার্টি": "সারজিস আলম",
	},
	"কুমিল্লা-৩": {
		"বিএনপি":           "কে এম মুজিবুল হক",
		"জামায়াতে ইসলামী": "ডা. সৈয়দ আবদুল্লাহ",
	},
	"সিলেট-১": {
		"বিএনপি":               "খন্দকার আবদুল মুক্তাদির",
		"জামায়াতে ইসলামী":     "এহসানুল মাহবুব জুবায়ের",
		"ইসলামী আন্দোলন বাংলাদেশ": "মাওলানা রেদওয়ানুল হক",
	},
	"রাজশাহী-২": {
		"বিএনপি":           "মিজানুর রহমান মিনু",
		"জামায়াতে ইসলামী": "অধ্যাপক মাজেদুর রহমান",
	},
	"খুলনা-২": {
		"বিএনপি":               "নজরুল ইসলাম মঞ্জু",
		"জাতীয় নাগরিক পার্টি": "নাহিদা সুলতানা",
	},
	"রংপুর-৩": {
		"জাতীয় পার্টি": "জি এম কাদের",
		"বিএনপি":        "রিটা রহমান",
	},
	"বরিশাল-৫": {
		"বিএনপি":               "মজিবর রহমান সরোয়ার",
		"ইসলামী আন্দোলন বাংলাদেশ": "মুফতি সৈয়দ ফয়জুল করিম",
	},
	"ময়মনসিংহ-৪": {
		"বিএনপি":           "আবু ওয়াহাব আকন্দ",
		"জামায়াতে ইসলামী": "অধ্যাপক কামরুল হাসান",
	},
	"নোয়াখালী-৫": {
		"বিএনপি": "ব্যারিস্টার মওদুদ পরিবারের মনোনীত প্রার্থী",
	},
	"পঞ্চগড়-১": {
		"বিএনপি":           "ব্যারিস্টার নওশাদ জমির",
		"জামায়াতে ইসলামী": "আবদুল খালেক",
	},
	"ফেনী-১": {
		"বিএনপি":           "বেগম খালেদা জিয়া",
		"জামায়াতে ইসলামী": "মাওলানা একরামুল হক",
	},
}

// areas maps a seat to its area description, shown in report lines.
var areas = map[string]string{
	"ঢাকা-১":       "দোহার ও নবাবগঞ্জ উপজেলা",
	"ঢাকা-৮":       "মতিঝিল, পল্টন ও শাহজাহানপুর",
	"ঢাকা-৯":       "সবুজবাগ, খিলগাঁও ও মুগদা",
	"বগুড়া-৬":      "বগুড়া সদর উপজেলা",
	"চট্টগ্রাম-১০": "ডবলমুরিং, হালিশহর ও পাহাড়তলী",
	"কুমিল্লা-৩":   "মুরাদনগর উপজেলা",
	"সিলেট-১":      "সিলেট সিটি করপোরেশন ও সদর উপজেলা",
	"রাজশাহী-২":    "রাজশাহী সিটি করপোরেশন",
	"খুলনা-২":      "খুলনা সদর ও সোনাডাঙ্গা",
	"রংপুর-৩":      "রংপুর সদর উপজেলা",
	"বরিশাল-৫":     "বরিশাল সিটি করপোরেশন ও সদর উপজেলা",
	"ময়মনসিংহ-৪":  "ময়মনসিংহ সদর উপজেলা",
	"ফেনী-১":       "পরশুরাম, ফুলগাজী ও ছাগলনাইয়া",
	"পঞ্চগড়-১":     "পঞ্চগড় সদর, তেঁতুলিয়া ও আটোয়ারী",
}

// CandidatesOfSeat returns the rostered candidates of a seat keyed by party.
// The returned map is nil when the roster has no entry for the seat.
func CandidatesOfSeat(seatNo string) map[string]string {
	return candidates[seatNo]
}

// AreaOfSeat returns the area description of a seat, empty when unknown.
func AreaOfSeat(seatNo string) string {
	return areas[seatNo]
}
