package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	basecache "github.com/riskibarqy/football-dashboard/internal/platform/cache"
)

const fixtureKeyPrefix = "fixture:range:"

// FixtureRepository memoises range reads and drops them on every write.
type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store[[]fixture.WithLeague]
}

func NewFixtureRepository(next fixture.Repository, ttl time.Duration) *FixtureRepository {
	return &FixtureRepository{
		next:  next,
		cache: basecache.NewStore[[]fixture.WithLeague](ttl),
	}
}

func (r *FixtureRepository) UpsertBatch(ctx context.Context, records []fixture.Record) error {
	if err := r.next.UpsertBatch(ctx, records); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, fixtureKeyPrefix)
	return nil
}

func (r *FixtureRepository) ListByRange(ctx context.Context, from, to time.Time, leagueID int64) ([]fixture.WithLeague, error) {
	key := fixtureKeyPrefix +
		strconv.FormatInt(from.UnixNano(), 10) + ":" +
		strconv.FormatInt(to.UnixNano(), 10) + ":" +
		strconv.FormatInt(leagueID, 10)

	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]fixture.WithLeague, error) {
		loaded, err := r.next.ListByRange(ctx, from, to, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]fixture.WithLeague(nil), loaded...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]fixture.WithLeague(nil), items...), nil
}
