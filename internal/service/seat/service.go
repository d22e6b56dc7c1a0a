package seat

import (
	"context"
	"fmt"
	"time"

	"github.com/li-cell/election-backend-go/internal/config"
	"github.com/li-cell/election-backend-go/internal/domain/party"
	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/validator"
	"github.com/li-cell/election-backend-go/internal/refdata"
	"github.com/li-cell/election-backend-go/internal/service/results"
)

type SeatService interface {
	EnterResult(ctx context.Context, seatNo string, req seat.EnterResultRequest) (seat.Seat, error)
	DeclareWinner(ctx context.Context, seatNo string, partyName string) (seat.Seat, error)
	RevokeWinner(ctx context.Context, seatNo string, partyName string) (seat.Seat, error)
	Suspend(ctx context.Context, seatNo string) (seat.Seat, error)
	Unsuspend(ctx context.Context, seatNo string) (seat.Seat, error)
	DeleteResult(ctx context.Context, seatNo string, partyName string) (seat.Seat, error)
	DeleteAll(ctx context.Context, confirmation string) error
	InitializeDatabase(ctx context.Context, confirmation string) (int, error)
	RegisterParty(ctx context.Context, req party.RegisterPartyRequest) error
	ListParties(ctx context.Context) ([]string, error)
}

type seatServiceImpl struct {
	repo      seat.SeatRepository
	partyRepo party.PartyRepository
	cache     *results.Cache
	cfg       config.ElectionConfig
}

func NewSeatService(
	repo seat.SeatRepository,
	partyRepo party.PartyRepository,
	cache *results.Cache,
	cfg config.ElectionConfig,
) SeatService {
	return &seatServiceImpl{
		repo:      repo,
		partyRepo: partyRepo,
		cache:     cache,
		cfg:       cfg,
	}
}

// load fetches a seat document, falling back to an empty catalog seat when no
// document exists yet. Seats outside the catalog are rejected.
func (s *seatServiceImpl) load(ctx context.Context, seatNo string) (seat.Seat, error) {
	entry, ok := refdata.SeatByNo(seatNo)
	if !ok {
		return seat.Seat{}, seat.ErrUnknownSeat
	}

	doc, found, err := s.repo.FetchByNo(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}
	if !found {
		return seat.Seat{
			SeatNo:   entry.SeatNo,
			Division: entry.Division,
			District: entry.District,
		}, nil
	}
	doc.Division = entry.Division
	doc.District = entry.District
	return doc, nil
}

// persist recomputes the denormalized total, stamps the write time, writes
// the document, and reconciles the cache: patched on success, invalidated on
// failure so the next read refetches instead of serving divergent state.
func (s *seatServiceImpl) persist(ctx context.Context, doc seat.Seat) (seat.Seat, error) {
	doc.TotalVotes = doc.SumVotes()
	doc.UpdatedAt = time.Now().UTC()
	if doc.Results == nil {
		doc.Results = []seat.PartyResult{}
	}

	if err := s.repo.Upsert(ctx, doc); err != nil {
		s.cache.Invalidate()
		return seat.Seat{}, fmt.Errorf("failed to persist seat %s: %w", doc.SeatNo, err)
	}
	s.cache.Put(doc)
	return doc, nil
}

func (s *seatServiceImpl) knownParty(ctx context.Context, name string) (bool, error) {
	if _, ok := refdata.PartyByName(name); ok {
		return true, nil
	}
	custom, err := s.partyRepo.Names(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load custom parties: %w", err)
	}
	return validator.IsInSlice(name, custom), nil
}

// EnterResult implements SeatService.
func (s *seatServiceImpl) EnterResult(ctx context.Context, seatNo string, req seat.EnterResultRequest) (seat.Seat, error) {
	if err := req.Validate(); err != nil {
		return seat.Seat{}, err
	}
	known, err := s.knownParty(ctx, req.Party)
	if err != nil {
		return seat.Seat{}, err
	}
	if !known {
		return seat.Seat{}, seat.ErrUnknownParty
	}

	doc, err := s.load(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}

	if row := doc.ResultOf(req.Party); row != nil {
		row.Votes = req.Votes
		if req.Candidate != "" {
			row.Candidate = req.Candidate
		}
		if req.Symbol != "" {
			row.Symbol = req.Symbol
		}
	} else {
		doc.Results = append(doc.Results, newPartyResult(seatNo, req))
	}
	return s.persist(ctx, doc)
}

// DeclareWinner implements SeatService as the single winner state transition:
// every sibling flag is cleared in the same document write, so the at-most-one
// invariant holds after every declaration. A missing result row is created
// with zero votes; a declared winner needs no votes on record.
func (s *seatServiceImpl) DeclareWinner(ctx context.Context, seatNo string, partyName string) (seat.Seat, error) {
	doc, err := s.load(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}
	if doc.IsSuspended {
		return seat.Seat{}, seat.ErrSeatSuspended
	}

	for i := range doc.Results {
		doc.Results[i].IsDeclaredWinner = false
	}
	row := doc.ResultOf(partyName)
	if row == nil {
		doc.Results = append(doc.Results, newPartyResult(seatNo, seat.EnterResultRequest{Party: partyName}))
		row = &doc.Results[len(doc.Results)-1]
	}
	row.IsDeclaredWinner = true

	return s.persist(ctx, doc)
}

// RevokeWinner implements SeatService. Only the flag clears; the result row
// and its votes stay.
func (s *seatServiceImpl) RevokeWinner(ctx context.Context, seatNo string, partyName string) (seat.Seat, error) {
	doc, err := s.load(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}

	row := doc.ResultOf(partyName)
	if row == nil {
		return seat.Seat{}, seat.ErrResultNotFound
	}
	row.IsDeclaredWinner = false

	return s.persist(ctx, doc)
}

// Suspend implements SeatService. Results and declared flags are retained so
// an unsuspension restores the prior state; aggregation excludes the seat
// while the flag is set.
func (s *seatServiceImpl) Suspend(ctx context.Context, seatNo string) (seat.Seat, error) {
	return s.setSuspended(ctx, seatNo, true)
}

// Unsuspend implements SeatService.
func (s *seatServiceImpl) Unsuspend(ctx context.Context, seatNo string) (seat.Seat, error) {
	return s.setSuspended(ctx, seatNo, false)
}

// setSuspended patches only the flag and the write time instead of rewriting
// the whole document, so a concurrent result entry is not clobbered by a
// stale suspension toggle.
func (s *seatServiceImpl) setSuspended(ctx context.Context, seatNo string, suspended bool) (seat.Seat, error) {
	doc, err := s.load(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}
	doc.IsSuspended = suspended
	doc.UpdatedAt = time.Now().UTC()
	if doc.Results == nil {
		doc.Results = []seat.PartyResult{}
	}

	err = s.repo.UpdateFields(ctx, seatNo, map[string]any{
		"division":    doc.Division,
		"district":    doc.District,
		"isSuspended": suspended,
		"updatedAt":   doc.UpdatedAt,
	})
	if err != nil {
		s.cache.Invalidate()
		return seat.Seat{}, fmt.Errorf("failed to persist seat %s: %w", seatNo, err)
	}
	s.cache.Put(doc)
	return doc, nil
}

// DeleteResult implements SeatService.
func (s *seatServiceImpl) DeleteResult(ctx context.Context, seatNo string, partyName string) (seat.Seat, error) {
	doc, err := s.load(ctx, seatNo)
	if err != nil {
		return seat.Seat{}, err
	}

	idx := -1
	for i := range doc.Results {
		if doc.Results[i].Party == partyName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return seat.Seat{}, seat.ErrResultNotFound
	}
	doc.Results = append(doc.Results[:idx], doc.Results[idx+1:]...)

	return s.persist(ctx, doc)
}

// DeleteAll implements SeatService. Documents are cleared in place, never
// removed; the typed confirmation phrase gates the batch write.
func (s *seatServiceImpl) DeleteAll(ctx context.Context, confirmation string) error {
	if confirmation != s.cfg.DeleteAllConfirmation {
		return seat.ErrConfirmationMismatch
	}

	err := s.repo.BulkUpdateFields(ctx, nil, map[string]any{
		"results":     []seat.PartyResult{},
		"totalVotes":  int64(0),
		"isSuspended": false,
		"updatedAt":   time.Now().UTC(),
	})
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("failed to delete all results: %w", err)
	}
	return nil
}

// InitializeDatabase implements SeatService: upserts one document per catalog
// constituency, seeded with zero-vote rows from the static candidate roster.
func (s *seatServiceImpl) InitializeDatabase(ctx context.Context, confirmation string) (int, error) {
	if confirmation != s.cfg.InitializeConfirmation {
		return 0, seat.ErrConfirmationMismatch
	}

	now := time.Now().UTC()
	seats := make([]seat.Seat, 0, refdata.TotalSeats())
	for _, entry := range refdata.Seats() {
		doc := seat.Seat{
			SeatNo:    entry.SeatNo,
			Division:  entry.Division,
			District:  entry.District,
			Results:   []seat.PartyResult{},
			UpdatedAt: now,
		}
		for partyName, candidate := range refdata.CandidatesOfSeat(entry.SeatNo) {
			row := seat.PartyResult{Party: partyName, Candidate: candidate}
			if p, ok := refdata.PartyByName(partyName); ok {
				row.Symbol = p.Symbol
			}
			doc.Results = append(doc.Results, row)
		}
		seats = append(seats, doc)
	}

	err := s.repo.BulkUpsert(ctx, seats)
	s.cache.Invalidate()
	if err != nil {
		return 0, fmt.Errorf("failed to initialize seats: %w", err)
	}
	return len(seats), nil
}

// RegisterParty implements SeatService, appending to the open enumeration.
// Registering a label already in the static table or the registry is a no-op
// by the set-union semantics of the store.
func (s *seatServiceImpl) RegisterParty(ctx context.Context, req party.RegisterPartyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := refdata.PartyByName(req.Name); ok {
		return nil
	}
	return s.partyRepo.Add(ctx, req.Name)
}

// ListParties implements SeatService: the static table followed by the
// custom registry.
func (s *seatServiceImpl) ListParties(ctx context.Context) ([]string, error) {
	custom, err := s.partyRepo.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom parties: %w", err)
	}

	names := refdata.PartyNames()
	for _, name := range custom {
		if !validator.IsInSlice(name, names) {
			names = append(names, name)
		}
	}
	return names, nil
}

func newPartyResult(seatNo string, req seat.EnterResultRequest) seat.PartyResult {
	row := seat.PartyResult{
		Party:     req.Party,
		Votes:     req.Votes,
		Candidate: req.Candidate,
		Symbol:    req.Symbol,
	}
	if row.Candidate == "" {
		row.Candidate = refdata.CandidatesOfSeat(seatNo)[req.Party]
	}
	if row.Symbol == "" {
		if p, ok := refdata.PartyByName(req.Party); ok {
			row.Symbol = p.Symbol
		}
	}
	return row
}
