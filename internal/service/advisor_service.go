package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/engine"
	"github.com/dom/rift-companion/internal/repository"
)

// BuildRequest identifies champions by catalog ID. An empty standing means even.
type BuildRequest struct {
	ChampionID     string          `json:"championId"`
	OpponentIDs    []string        `json:"opponentIds"`
	Gold           int             `json:"gold"`
	ElapsedMinutes float64         `json:"elapsedMinutes"`
	Standing       domain.Standing `json:"standing"`
}

type BuildResult struct {
	Threats         domain.ThreatProfile    `json:"threats"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type CompositionRequest struct {
	OwnIDs      []string `json:"own"`
	OpposingIDs []string `json:"opposing"`
}

type AdvisorService struct {
	championRepo repository.ChampionRepository
	itemRepo     repository.ItemRepository
}

func NewAdvisorService(repos *repository.Repositories) *AdvisorService {
	return &AdvisorService{
		championRepo: repos.Champion,
		itemRepo:     repos.Item,
	}
}

// ValidationError reports whether err is caused by a bad request rather than
// a storage failure
func ValidationError(err error) bool {
	for _, target := range []error{
		domain.ErrRosterFull,
		domain.ErrDuplicateChampion,
		domain.ErrEmptyRoster,
		domain.ErrMissingChampion,
		domain.ErrInvalidStanding,
		domain.ErrNegativeGold,
		domain.ErrNegativeTime,
		domain.ErrInvalidCategory,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NotFoundError reports whether err names a catalog entry that does not exist
func NotFoundError(err error) bool {
	return errors.Is(err, domain.ErrChampionNotFound) ||
		errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrRuneNotFound)
}

func (s *AdvisorService) RecommendBuild(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	gc, err := s.resolveContext(ctx, req)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		log.Printf("ERROR [advisor.RecommendBuild] champion=%s: failed to load items: %v", req.ChampionID, err)
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	catalogItems := make([]domain.Item, len(items))
	for i, it := range items {
		catalogItems[i] = *it
	}

	return &BuildResult{
		Threats:         engine.AggregateThreats(gc.Opponents),
		Recommendations: engine.RecommendBuild(gc, catalogItems),
	}, nil
}

// AnalyzeThreats aggregates the threat profile of an opposing roster. An empty
// roster is valid and yields zeros.
func (s *AdvisorService) AnalyzeThreats(ctx context.Context, opponentIDs []string) (domain.ThreatProfile, error) {
	if err := validateRoster(opponentIDs); err != nil {
		return domain.ThreatProfile{}, err
	}

	opponents, err := s.resolveChampions(ctx, opponentIDs)
	if err != nil {
		return domain.ThreatProfile{}, err
	}

	return engine.AggregateThreats(opponents), nil
}

func (s *AdvisorService) SimulateComposition(ctx context.Context, req CompositionRequest) (*domain.SimulationResult, error) {
	if len(req.OwnIDs) == 0 || len(req.OpposingIDs) == 0 {
		return nil, domain.ErrEmptyRoster
	}
	if err := validateRoster(req.OwnIDs); err != nil {
		return nil, fmt.Errorf("own team: %w", err)
	}
	if err := validateRoster(req.OpposingIDs); err != nil {
		return nil, fmt.Errorf("opposing team: %w", err)
	}
	if id, ok := firstShared(req.OwnIDs, req.OpposingIDs); ok {
		return nil, fmt.Errorf("%w: %s is on both teams", domain.ErrDuplicateChampion, id)
	}

	own, err := s.resolveChampions(ctx, req.OwnIDs)
	if err != nil {
		return nil, err
	}
	opposing, err := s.resolveChampions(ctx, req.OpposingIDs)
	if err != nil {
		return nil, err
	}

	result := engine.SimulateComposition(own, opposing)
	return &result, nil
}

func (s *AdvisorService) resolveContext(ctx context.Context, req BuildRequest) (domain.GameContext, error) {
	if req.ChampionID == "" {
		return domain.GameContext{}, domain.ErrMissingChampion
	}
	if err := validateRoster(req.OpponentIDs); err != nil {
		return domain.GameContext{}, err
	}
	if _, ok := firstShared([]string{req.ChampionID}, req.OpponentIDs); ok {
		return domain.GameContext{}, fmt.Errorf("%w: %s is on both teams", domain.ErrDuplicateChampion, req.ChampionID)
	}
	if req.Gold < 0 {
		return domain.GameContext{}, fmt.Errorf("%w: %d", domain.ErrNegativeGold, req.Gold)
	}
	if req.ElapsedMinutes < 0 || math.IsNaN(req.ElapsedMinutes) || math.IsInf(req.ElapsedMinutes, 0) {
		return domain.GameContext{}, fmt.Errorf("%w: %v", domain.ErrNegativeTime, req.ElapsedMinutes)
	}

	standing := req.Standing
	if standing == "" {
		standing = domain.StandingEven
	}
	if !standing.IsValid() {
		return domain.GameContext{}, fmt.Errorf("%w: %q", domain.ErrInvalidStanding, req.Standing)
	}

	own, err := s.championRepo.GetByID(ctx, req.ChampionID)
	if err != nil {
		return domain.GameContext{}, s.lookupError("advisor.RecommendBuild", req.ChampionID, err)
	}
	opponents, err := s.resolveChampions(ctx, req.OpponentIDs)
	if err != nil {
		return domain.GameContext{}, err
	}

	return domain.GameContext{
		Own:            *own,
		Opponents:      opponents,
		Gold:           req.Gold,
		ElapsedMinutes: req.ElapsedMinutes,
		Standing:       standing,
	}, nil
}

func (s *AdvisorService) resolveChampions(ctx context.Context, ids []string) ([]domain.Champion, error) {
	champions := make([]domain.Champion, 0, len(ids))
	for _, id := range ids {
		ch, err := s.championRepo.GetByID(ctx, id)
		if err != nil {
			return nil, s.lookupError("advisor.resolveChampions", id, err)
		}
		champions = append(champions, *ch)
	}
	return champions, nil
}

func (s *AdvisorService) lookupError(op, id string, err error) error {
	if NotFoundError(err) {
		return err
	}
	log.Printf("ERROR [%s] champion=%s: %v", op, id, err)
	return fmt.Errorf("failed to load champion %s: %w", id, err)
}

func validateRoster(ids []string) error {
	if len(ids) > domain.MaxRosterSize {
		return fmt.Errorf("%w: got %d", domain.ErrRosterFull, len(ids))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateChampion, id)
		}
		seen[id] = true
	}
	return nil
}

func firstShared(a, b []string) (string, bool) {
	in := make(map[string]bool, len(a))
	for _, id := range a {
		in[id] = true
	}
	for _, id := range b {
		if in[id] {
			return id, true
		}
	}
	return "", false
}
