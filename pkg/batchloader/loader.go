package batchloader

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Type identifies a category of entity, for example "users" or "post_meta".
type Type string

// Status is a diagnostic snapshot of a single loader type.
type Status struct {
	Queued int `json:"queued"`
	Cached int `json:"cached"`
}

// Loader collapses many "fetch entity by id" requests issued during one processing
// cycle into a single FetchFunction call per type, and caches every resolution
// (including confirmed misses) until Clear.
//
// A Loader is meant to live for one cycle, usually one request. All methods are safe
// for concurrent use; Load holds the lock for the duration of the fetch.
type Loader struct {
	mu       sync.Mutex
	fetchers map[Type]FetchFunction
	queues   map[Type]map[int64]struct{}
	caches   map[Type]map[int64]Result
	metrics  Metrics
}

type Option func(l *Loader)

func WithMetrics(metrics Metrics) Option {
	return func(l *Loader) {
		l.metrics = metrics
	}
}

func New(options ...Option) *Loader {
	l := &Loader{
		fetchers: make(map[Type]FetchFunction),
		queues:   make(map[Type]map[int64]struct{}),
		caches:   make(map[Type]map[int64]Result),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// RegisterLoader binds fetch to loaderType, replacing any previous binding.
func (l *Loader) RegisterLoader(loaderType Type, fetch FetchFunction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetchers[loaderType] = fetch
}

// Queue marks ids as wanted without performing any I/O. Ids <= 0 and ids that are
// already resolved or already queued are ignored.
func (l *Loader) Queue(loaderType Type, ids ...int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue(loaderType, ids)
}

// QueueAny is Queue for loosely typed ids (strings, floats, json.Number...).
// Values that cannot be coerced to an integer are dropped.
func (l *Loader) QueueAny(loaderType Type, ids ...any) {
	l.Queue(loaderType, CoerceIDs(ids...)...)
}

func (l *Loader) queue(loaderType Type, ids []int64) {
	cache := l.caches[loaderType]
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := cache[id]; ok {
			continue
		}
		q, ok := l.queues[loaderType]
		if !ok {
			q = make(map[int64]struct{})
			l.queues[loaderType] = q
		}
		q[id] = struct{}{}
	}
}

// Load drains the queue of loaderType with a single FetchFunction call.
// It is a no-op when nothing is queued or no FetchFunction is registered.
// When the FetchFunction fails, queue and cache are left untouched.
func (l *Loader) Load(ctx context.Context, loaderType Type) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, loaderType, false)
}

// LoadStrict is Load, but reports ErrLoaderNotFound when ids are queued for a type
// without a registered FetchFunction.
func (l *Loader) LoadStrict(ctx context.Context, loaderType Type) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, loaderType, true)
}

// LoadAll drains every non-empty queue. A failing type does not stop the others;
// all failures are returned together.
func (l *Loader) LoadAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	loaderTypes := maps.Keys(l.queues)
	slices.Sort(loaderTypes)

	var result *multierror.Error
	for _, loaderType := range loaderTypes {
		if err := l.load(ctx, loaderType, false); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (l *Loader) load(ctx context.Context, loaderType Type, strict bool) error {
	queue := l.queues[loaderType]
	if len(queue) == 0 {
		return nil
	}

	fetch, ok := l.fetchers[loaderType]
	if !ok {
		if strict {
			return fmt.Errorf("%w: %s", ErrLoaderNotFound, loaderType)
		}
		logrus.
			WithField("loaderType", loaderType).
			WithField("queued", len(queue)).
			Warn("ids queued for unregistered loader type")
		return nil
	}

	ids := maps.Keys(queue)
	slices.Sort(ids)

	done := observeBatch(l.metrics, loaderType, len(ids))
	values, err := fetch(ctx, ids)
	done(err)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", loaderType, err)
	}

	cache, ok := l.caches[loaderType]
	if !ok {
		cache = make(map[int64]Result, len(ids))
		l.caches[loaderType] = cache
	}
	for id, value := range values {
		if id <= 0 {
			continue
		}
		cache[id] = Resolved(value)
	}
	for _, id := range ids {
		if _, ok := cache[id]; !ok {
			cache[id] = Absent()
		}
	}
	delete(l.queues, loaderType)
	return nil
}

// Get returns the value for id, resolving the type first if id is still queued.
// An id that was never queued or primed is not fetched. The boolean is false for
// confirmed misses as well as for unknown ids.
func (l *Loader) Get(ctx context.Context, loaderType Type, id int64) (any, bool, error) {
	result, err := l.Result(ctx, loaderType, id)
	if err != nil {
		return nil, false, err
	}
	value, ok := result.Value()
	return value, ok, nil
}

// Result is Get returning the raw cache entry, so callers can tell a confirmed miss
// (Absent) from an id that was never requested (zero Result).
func (l *Loader) Result(ctx context.Context, loaderType Type, id int64) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, queued := l.queues[loaderType][id]; queued {
		if err := l.load(ctx, loaderType, false); err != nil {
			return Result{}, err
		}
	}
	return l.caches[loaderType][id], nil
}

// GetAll returns a copy of every resolved value of loaderType. Confirmed misses are
// left out.
func (l *Loader) GetAll(loaderType Type) map[int64]any {
	l.mu.Lock()
	defer l.mu.Unlock()

	cache := l.caches[loaderType]
	values := make(map[int64]any, len(cache))
	for id, result := range cache {
		if value, ok := result.Value(); ok {
			values[id] = value
		}
	}
	return values
}

// Has reports whether id has been resolved, as a value or as a confirmed miss.
func (l *Loader) Has(loaderType Type, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.caches[loaderType][id]
	return ok
}

// Prime stores values obtained elsewhere. Primed ids are resolved and leave the queue.
func (l *Loader) Prime(loaderType Type, data map[int64]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(data) == 0 {
		return
	}

	cache, ok := l.caches[loaderType]
	if !ok {
		cache = make(map[int64]Result, len(data))
		l.caches[loaderType] = cache
	}
	queue := l.queues[loaderType]
	for id, value := range data {
		if id <= 0 {
			continue
		}
		cache[id] = Resolved(value)
		delete(queue, id)
	}
	if queue != nil && len(queue) == 0 {
		delete(l.queues, loaderType)
	}
}

// Clear drops queue and cache of the given types, or of every type when called
// without arguments. Registrations are kept.
func (l *Loader) Clear(loaderTypes ...Type) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(loaderTypes) == 0 {
		l.queues = make(map[Type]map[int64]struct{})
		l.caches = make(map[Type]map[int64]Result)
		return
	}

	for _, loaderType := range loaderTypes {
		delete(l.queues, loaderType)
		delete(l.caches, loaderType)
	}
}

// Status reports queued and cached counts for every registered type, and for any
// unregistered type that holds state.
func (l *Loader) Status() map[Type]Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	status := make(map[Type]Status, len(l.fetchers))
	for loaderType := range l.fetchers {
		status[loaderType] = Status{}
	}
	for loaderType, queue := range l.queues {
		s := status[loaderType]
		s.Queued = len(queue)
		status[loaderType] = s
	}
	for loaderType, cache := range l.caches {
		s := status[loaderType]
		s.Cached = len(cache)
		status[loaderType] = s
	}
	return status
}

// CoerceIDs converts loosely typed ids to int64, dropping anything that is not a
// positive integer.
func CoerceIDs(ids ...any) []int64 {
	result := make([]int64, 0, len(ids))
	for _, raw := range ids {
		id, err := cast.ToInt64E(raw)
		if err != nil || id <= 0 {
			continue
		}
		result = append(result, id)
	}
	return result
}
