package refdata

import "github.com/li-cell/election-backend-go/internal/pkg/bangla"

// DistrictEntry describes one district in constituency order: which division it
// belongs to and how many parliamentary seats it carries.
type DistrictEntry struct {
	Division string
	District string
	Seats    int
}

// SeatEntry is one catalog constituency. Index is the national constituency
// number (1..300) implied by catalog order.
type SeatEntry struct {
	SeatNo   string
	Division string
	District string
	Index    int
}

// districts lists all 64 districts in national constituency order. The seat
// counts sum to exactly 300.
var districts = []DistrictEntry{
	{"রংপুর", "পঞ্চগড়", 2},
	{"রংপুর", "ঠাকুরগাঁও", 3},
	{"রংপুর", "দিনাজপুর", 6},
	{"রংপুর", "নীলফামারী", 4},
	{"রংপুর", "লালমনিরহাট", 3},
	{"রংপুর", "রংপুর", 6},
	{"রংপুর", "কুড়িগ্রাম", 4},
	{"রংপুর", "গাইবান্ধা", 5},
	{"রাজশাহী", "জয়পুরহাট", 2},
	{"রাজশাহী", "বগুড়া", 7},
	{"রাজশাহী", "চাঁপাইনবাবগঞ্জ", 3},
	{"রাজশাহী", "নওগাঁ", 6},
	{"রাজশাহী", "রাজশাহী", 6},
	{"রাজশাহী", "নাটোর", 4},
	{"রাজশাহী", "সিরাজগঞ্জ", 6},
	{"রাজশাহী", "পাবনা", 5},
	{"খুলনা", "মেহেরপুর", 2},
	{"খুলনা", "কুষ্টিয়া", 4},
	{"খুলনা", "চুয়াডাঙ্গা", 2},
	{"খুলনা", "ঝিনাইদহ", 4},
	{"খুলনা", "যশোর", 6},
	{"খুলনা", "মাগুরা", 2},
	{"খুলনা", "নড়াইল", 2},
	{"খুলনা", "বাগেরহাট", 4},
	{"খুলনা", "খুলনা", 6},
	{"খুলনা", "সাতক্ষীরা", 4},
	{"বরিশাল", "বরগুনা", 2},
	{"বরিশাল", "পটুয়াখালী", 4},
	{"বরিশাল", "ভোলা", 4},
	{"বরিশাল", "বরিশাল", 6},
	{"বরিশাল", "ঝালকাঠি", 2},
	{"বরিশাল", "পিরোজপুর", 3},
	{"ঢাকা", "টাঙ্গাইল", 8},
	{"ময়মনসিংহ", "জামালপুর", 5},
	{"ময়মনসিংহ", "শেরপুর", 3},
	{"ময়মনসিংহ", "ময়মনসিংহ", 11},
	{"ময়মনসিংহ", "নেত্রকোনা", 5},
	{"ঢাকা", "কিশোরগঞ্জ", 6},
	{"ঢাকা", "মানিকগঞ্জ", 3},
	{"ঢাকা", "মুন্সীগঞ্জ", 3},
	{"ঢাকা", "ঢাকা", 20},
	{"ঢাকা", "গাজীপুর", 5},
	{"ঢাকা", "নরসিংদী", 5},
	{"ঢাকা", "নারায়ণগঞ্জ", 5},
	{"ঢাকা", "রাজবাড়ী", 2},
	{"ঢাকা", "ফরিদপুর", 4},
	{"ঢাকা", "গোপালগঞ্জ", 3},
	{"ঢাকা", "মাদারীপুর", 3},
	{"ঢাকা", "শরীয়তপুর", 3},
	{"সিলেট", "সুনামগঞ্জ", 5},
	{"সিলেট", "সিলেট", 6},
	{"সিলেট", "মৌলভীবাজার", 4},
	{"সিলেট", "হবিগঞ্জ", 4},
	{"চট্টগ্রাম", "ব্রাহ্মণবাড়িয়া", 6},
	{"চট্টগ্রাম", "কুমিল্লা", 11},
	{"চট্টগ্রাম", "চাঁদপুর", 5},
	{"চট্টগ্রাম", "ফেনী", 3},
	{"চট্টগ্রাম", "নোয়াখালী", 6},
	{"চট্টগ্রাম", "লক্ষ্মীপুর", 4},
	{"চট্টগ্রাম", "চট্টগ্রাম", 16},
	{"চট্টগ্রাম", "কক্সবাজার", 4},
	{"চট্টগ্রাম", "খাগড়াছড়ি", 1},
	{"চট্টগ্রাম", "রাঙ্গামাটি", 1},
	{"চট্টগ্রাম", "বান্দরবান", 1},
}

// Divisions in catalog order.
var Divisions = []string{"রংপুর", "রাজশাহী", "খুলনা", "বরিশাল", "ঢাকা", "ময়মনসিংহ", "সিলেট", "চট্টগ্রাম"}

var (
	seats          []SeatEntry
	seatByNo       map[string]SeatEntry
	seatsByDist    map[string][]SeatEntry
	distsByDiv     map[string][]string
	divOfDist      map[string]string
	seatCountByDiv map[string]int
)

func init() {
	seatByNo = make(map[string]SeatEntry)
	seatsByDist = make(map[string][]SeatEntry)
	distsByDiv = make(map[string][]string)
	divOfDist = make(map[string]string)
	seatCountByDiv = make(map[string]int)

	index := 0
	for _, d := range districts {
		divOfDist[d.District] = d.Division
		distsByDiv[d.Division] = append(distsByDiv[d.Division], d.District)
		seatCountByDiv[d.Division] += d.Seats
		for i := 1; i <= d.Seats; i++ {
			index++
			entry := SeatEntry{
				SeatNo:   d.District + "-" + bangla.Digits(i),
				Division: d.Division,
				District: d.District,
				Index:    index,
			}
			seats = append(seats, entry)
			seatByNo[entry.SeatNo] = entry
			seatsByDist[d.District] = append(seatsByDist[d.District], entry)
		}
	}
}

// Seats returns every catalog constituency in national order. Callers must not
// mutate the returned slice.
func Seats() []SeatEntry {
	return seats
}

// SeatByNo looks up a constituency by its seat name.
func SeatByNo(seatNo string) (SeatEntry, bool) {
	s, ok := seatByNo[seatNo]
	return s, ok
}

// SeatsOfDistrict returns the catalog seats of one district, in order.
func SeatsOfDistrict(district string) []SeatEntry {
	return seatsByDist[district]
}

// DistrictsOfDivision returns the districts of a division in catalog order.
func DistrictsOfDivision(division string) []string {
	return distsByDiv[division]
}

// DivisionOfDistrict maps a district to its division.
func DivisionOfDistrict(district string) (string, bool) {
	d, ok := divOfDist[district]
	return d, ok
}

// SeatCountOfDivision returns the catalog seat total for a division.
func SeatCountOfDivision(division string) int {
	return seatCountByDiv[division]
}

// SeatCountOfDistrict returns the catalog seat total for a district.
func SeatCountOfDistrict(district string) int {
	return len(seatsByDist[district])
}

// TotalSeats is the national catalog seat count.
func TotalSeats() int {
	return len(seats)
}
