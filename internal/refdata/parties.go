package refdata

// Party holds the display metadata for a contesting party. Latin is the
// Latin-script label used where Bengali glyphs cannot be rendered, such as
// rasterized chart output.
type Party struct {
	Name   string
	Symbol string
	Color  string
	Latin  string
}

// Labels used across aggregation output and reports.
const (
	LabelPending   = "অপেক্ষমান"
	LabelSuspended = "স্থগিত"
)

// Parties is the static party table, in ballot-symbol allocation order.
var Parties = []Party{
	{Name: "বিএনপি", Symbol: "ধানের শীষ", Color: "#1b5e20", Latin: "BNP"},
	{Name: "জামায়াতে ইসলামী", Symbol: "দাঁড়িপাল্লা", Color: "#0d47a1", Latin: "Jamaat-e-Islami"},
	{Name: "জাতীয় নাগরিক পার্টি", Symbol: "শাপলা কলি", Color: "#e65100", Latin: "NCP"},
	{Name: "ইসলামী আন্দোলন বাংলাদেশ", Symbol: "হাতপাখা", Color: "#004d40", Latin: "Islami Andolan"},
	{Name: "জাতীয় পার্টি", Symbol: "লাঙ্গল", Color: "#b71c1c", Latin: "Jatiya Party"},
	{Name: "গণসংহতি আন্দোলন", Symbol: "মাথাল", Color: "#4a148c", Latin: "Ganosamhati Andolon"},
	{Name: "এবি পার্টি", Symbol: "ঈগল", Color: "#01579b", Latin: "AB Party"},
	{Name: "স্বতন্ত্র", Symbol: "", Color: "#546e7a", Latin: "Independent"},
}

// SummaryParties are the four parties covered by the party-summary report.
var SummaryParties = []string{
	"বিএনপি",
	"জামায়াতে ইসলামী",
	"জাতীয় নাগরিক পার্টি",
	"ইসলামী আন্দোলন বাংলাদেশ",
}

var partyByName map[string]Party

func init() {
	partyByName = make(map[string]Party, len(Parties))
	for _, p := range Parties {
		partyByName[p.Name] = p
	}
}

// PartyByName looks a party up in the static table.
func PartyByName(name string) (Party, bool) {
	p, ok := partyByName[name]
	return p, ok
}

// PartyNames returns the static party names in table order.
func PartyNames() []string {
	names := make([]string, len(Parties))
	for i, p := range Parties {
		names[i] = p.Name
	}
	return names
}
