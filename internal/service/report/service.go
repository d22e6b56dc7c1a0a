package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/li-cell/election-backend-go/internal/pkg/bangla"
	"github.com/li-cell/election-backend-go/internal/refdata"
	"github.com/li-cell/election-backend-go/internal/service/results"
)

// ErrNoWinnersInScope rejects the party-summary report when none of the four
// covered parties has a declared win in the filtered scope.
var ErrNoWinnersInScope = errors.New("no declared winners in scope for the summary parties")

const letterheadTitle = "জাতীয় সংসদ নির্বাচন\nকেন্দ্রীয় ফলাফল পর্যবেক্ষণ কক্ষ\n========================================"

type ReportService interface {
	WinnersReport(ctx context.Context, f results.Filter) (string, error)
	PartySummaryReport(ctx context.Context, f results.Filter) (string, error)
	WinsChartPNG(ctx context.Context, f results.Filter) ([]byte, error)
}

type reportServiceImpl struct {
	cache *results.Cache
	now   func() time.Time
}

func NewReportService(cache *results.Cache) ReportService {
	return &reportServiceImpl{
		cache: cache,
		now:   time.Now,
	}
}

type winnerLine struct {
	seatNo   string
	division string
	index    int
	party    string
	cand     string
}

func (s *reportServiceImpl) winners(ctx context.Context, f results.Filter) ([]winnerLine, error) {
	live, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}
	scoped := results.Apply(results.Merge(live), f)

	var lines []winnerLine
	for _, sc := range scoped {
		leader, status := results.ResolveLeader(sc)
		if status != results.StatusDeclared {
			continue
		}
		line := winnerLine{
			seatNo:   sc.SeatNo,
			division: sc.Division,
			party:    leader.Party,
			cand:     leader.Candidate,
		}
		if entry, ok := refdata.SeatByNo(sc.SeatNo); ok {
			line.index = entry.Index
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if c := bangla.Compare(lines[i].division, lines[j].division); c != 0 {
			return c < 0
		}
		return bangla.CompareSeatNo(lines[i].seatNo, lines[j].seatNo) < 0
	})
	return lines, nil
}

// WinnersReport implements ReportService: the plain-text declared-winner
// list, one section per division, all numerals in Bengali digits.
func (s *reportServiceImpl) WinnersReport(ctx context.Context, f results.Filter) (string, error) {
	lines, err := s.winners(ctx, f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	s.writeLetterhead(&b, "বিজয়ী প্রার্থীর তালিকা")

	currentDivision := ""
	n := 0
	for _, line := range lines {
		if line.division != currentDivision {
			currentDivision = line.division
			n = 0
			fmt.Fprintf(&b, "\n%s বিভাগ\n----------------------------------------\n", line.division)
		}
		n++
		fmt.Fprintf(&b, "%s. %s", bangla.Digits(n), line.seatNo)
		if line.index > 0 {
			fmt.Fprintf(&b, " (আসন %s)", bangla.Digits(line.index))
		}
		fmt.Fprintf(&b, ": %s", line.party)
		if line.cand != "" {
			fmt.Fprintf(&b, ", %s", line.cand)
		}
		if area := refdata.AreaOfSeat(line.seatNo); area != "" {
			fmt.Fprintf(&b, " [%s]", area)
		}
		b.WriteString("\n")
	}

	if len(lines) == 0 {
		b.WriteString("\nকোনো আসনের ফলাফল ঘোষিত হয়নি।\n")
	} else {
		fmt.Fprintf(&b, "\nমোট ঘোষিত আসন: %s\n", bangla.Digits(len(lines)))
	}
	return b.String(), nil
}

// PartySummaryReport implements ReportService: narrative paragraphs for the
// four summary parties, most seats first. A scope without a single declared
// win among them is rejected.
func (s *reportServiceImpl) PartySummaryReport(ctx context.Context, f results.Filter) (string, error) {
	lines, err := s.winners(ctx, f)
	if err != nil {
		return "", err
	}

	seatsByParty := make(map[string][]string)
	for _, line := range lines {
		seatsByParty[line.party] = append(seatsByParty[line.party], line.seatNo)
	}

	type partyBlock struct {
		name  string
		seats []string
	}
	var blocks []partyBlock
	for _, name := range refdata.SummaryParties {
		if won := seatsByParty[name]; len(won) > 0 {
			blocks = append(blocks, partyBlock{name: name, seats: won})
		}
	}
	if len(blocks) == 0 {
		return "", ErrNoWinnersInScope
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return len(blocks[i].seats) > len(blocks[j].seats)
	})

	var b strings.Builder
	s.writeLetterhead(&b, "দলভিত্তিক ফলাফল সারসংক্ষেপ")
	for _, block := range blocks {
		fmt.Fprintf(&b, "\n%s এ পর্যন্ত %sটি আসনে বিজয়ী হয়েছে। আসনগুলো হলো: %s।\n",
			block.name, bangla.Digits(len(block.seats)), strings.Join(block.seats, ", "))
	}
	return b.String(), nil
}

func (s *reportServiceImpl) writeLetterhead(b *strings.Builder, title string) {
	b.WriteString(letterheadTitle)
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	fmt.Fprintf(b, "প্রস্তুতকাল: %s\n", bangla.Localize(s.now().Format("02-01-2006 15:04")))
}
