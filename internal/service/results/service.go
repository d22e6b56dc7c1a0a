package results

import (
	"context"
	"fmt"

	"github.com/li-cell/election-backend-go/internal/domain/party"
	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/refdata"
)

// SeatView is one constituency as the dashboards consume it: the live
// document merged over the catalog, plus the resolved leader.
type SeatView struct {
	seat.Seat
	Index  int               `json:"index"`
	Area   string            `json:"area,omitempty"`
	Status LeaderStatus      `json:"status"`
	Leader *seat.PartyResult `json:"leader,omitempty"`
}

// ScopeSummary counts the seats of the filtered scope by resolved status.
type ScopeSummary struct {
	Total     int `json:"total"`
	Declared  int `json:"declared"`
	Leading   int `json:"leading"`
	Pending   int `json:"pending"`
	Suspended int `json:"suspended"`
}

// OverviewResponse is the combined payload behind the results table views.
type OverviewResponse struct {
	Summary ScopeSummary `json:"summary"`
	Seats   []SeatView   `json:"seats"`
}

// OptionsResponse feeds the cascading filter widgets.
type OptionsResponse struct {
	Divisions []string `json:"divisions"`
	Districts []string `json:"districts"`
	Seats     []string `json:"seats"`
	Parties   []string `json:"parties"`
	Statuses  []string `json:"statuses"`
}

type ResultsService interface {
	Overview(ctx context.Context, f Filter) (OverviewResponse, error)
	Rollup(ctx context.Context, f Filter) (Rollup, error)
	Ticker(ctx context.Context, f Filter) ([]string, error)
	ChartSeries(ctx context.Context, f Filter) ([]ChartPoint, error)
	Options(ctx context.Context, f Filter) (OptionsResponse, error)
	Seat(ctx context.Context, seatNo string) (SeatView, error)
	Refresh(ctx context.Context) error
}

type resultsServiceImpl struct {
	cache     *Cache
	partyRepo party.PartyRepository
}

func NewResultsService(cache *Cache, partyRepo party.PartyRepository) ResultsService {
	return &resultsServiceImpl{
		cache:     cache,
		partyRepo: partyRepo,
	}
}

func (s *resultsServiceImpl) merged(ctx context.Context) ([]seat.Seat, error) {
	live, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}
	return Merge(live), nil
}

func (s *resultsServiceImpl) Overview(ctx context.Context, f Filter) (OverviewResponse, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}

	scoped := Apply(merged, f)
	resp := OverviewResponse{Seats: make([]SeatView, 0, len(scoped))}
	for _, sc := range scoped {
		view := newSeatView(sc)
		resp.Seats = append(resp.Seats, view)

		resp.Summary.Total++
		switch view.Status {
		case StatusDeclared:
			resp.Summary.Declared++
		case StatusLeading:
			resp.Summary.Leading++
		case StatusSuspended:
			resp.Summary.Suspended++
		default:
			resp.Summary.Pending++
		}
	}
	return resp, nil
}

func (s *resultsServiceImpl) Rollup(ctx context.Context, f Filter) (Rollup, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return Rollup{}, err
	}
	return ComputeRollup(merged, f), nil
}

func (s *resultsServiceImpl) Ticker(ctx context.Context, f Filter) ([]string, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTicker(Apply(merged, f)), nil
}

func (s *resultsServiceImpl) ChartSeries(ctx context.Context, f Filter) ([]ChartPoint, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return nil, err
	}
	return BuildSeries(Apply(merged, f)), nil
}

// Options derives the cascading filter option lists: districts narrow to the
// selected division, seats to the selected district, and the party list is
// the open enumeration of static, custom, and live-observed labels.
func (s *resultsServiceImpl) Options(ctx context.Context, f Filter) (OptionsResponse, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return OptionsResponse{}, err
	}

	resp := OptionsResponse{
		Divisions: refdata.Divisions,
		Statuses: []string{
			FilterStatusDeclared,
			FilterStatusLeading,
			FilterStatusPending,
			FilterStatusSuspended,
		},
	}

	if f.Division != "" {
		resp.Districts = refdata.DistrictsOfDivision(f.Division)
	} else {
		for _, div := range refdata.Divisions {
			resp.Districts = append(resp.Districts, refdata.DistrictsOfDivision(div)...)
		}
	}

	if f.District != "" {
		for _, entry := range refdata.SeatsOfDistrict(f.District) {
			resp.Seats = append(resp.Seats, entry.SeatNo)
		}
	}

	custom, err := s.partyRepo.Names(ctx)
	if err != nil {
		return OptionsResponse{}, fmt.Errorf("failed to load custom parties: %w", err)
	}
	resp.Parties = mergeParties(refdata.PartyNames(), custom, merged)

	return resp, nil
}

func (s *resultsServiceImpl) Seat(ctx context.Context, seatNo string) (SeatView, error) {
	if _, ok := refdata.SeatByNo(seatNo); !ok {
		return SeatView{}, seat.ErrUnknownSeat
	}
	merged, err := s.merged(ctx)
	if err != nil {
		return SeatView{}, err
	}
	for _, sc := range merged {
		if sc.SeatNo == seatNo {
			return newSeatView(sc), nil
		}
	}
	return SeatView{}, seat.ErrUnknownSeat
}

// Refresh drops the cache and reloads the collection.
func (s *resultsServiceImpl) Refresh(ctx context.Context) error {
	s.cache.Invalidate()
	if _, err := s.cache.Snapshot(ctx); err != nil {
		return fmt.Errorf("failed to refresh seats: %w", err)
	}
	return nil
}

func newSeatView(sc seat.Seat) SeatView {
	view := SeatView{
		Seat: sc,
		Area: refdata.AreaOfSeat(sc.SeatNo),
	}
	if entry, ok := refdata.SeatByNo(sc.SeatNo); ok {
		view.Index = entry.Index
	}
	leader, status := ResolveLeader(sc)
	view.Status = status
	if status == StatusDeclared || status == StatusLeading {
		view.Leader = &leader
	}
	return view
}

// mergeParties unions the static table, the custom registry, and every party
// label observed in live results, preserving first-seen order.
func mergeParties(static []string, custom []string, merged []seat.Seat) []string {
	seen := make(map[string]bool)
	var out []string
	appendName := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, name := range static {
		appendName(name)
	}
	for _, name := range custom {
		appendName(name)
	}
	for _, s := range merged {
		for _, r := range s.Results {
			appendName(r.Party)
		}
	}
	return out
}
