package app

import (
	"context"
	"sync"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/idgov/internal/engine/pager"
	"go.trai.ch/idgov/internal/engine/resolve"
)

// Session holds the per-tenant state: the client handle, one name resolution
// cache per resource type, and one pager per browse folder. Sessions are
// keyed by tenant fingerprint and dropped when the configuration changes.
type Session struct {
	tenant  domain.Tenant
	client  ports.Client
	metrics ports.Metrics

	mu     sync.Mutex
	names  map[domain.ResourceType]*resolve.Cache[string]
	pagers map[domain.ResourceType]*pager.Pager[domain.Node]
}

// NewSession creates a session for one tenant. metrics may be nil.
func NewSession(tenant domain.Tenant, client ports.Client, metrics ports.Metrics) *Session {
	s := &Session{
		tenant:  tenant,
		client:  client,
		metrics: metrics,
	}
	s.rebuild()
	return s
}

// Tenant returns the tenant this session is bound to.
func (s *Session) Tenant() domain.Tenant {
	return s.tenant
}

// ResolveID maps a resource name to its backend id. Resolutions are memoized
// for the session's lifetime; concurrent lookups of the same name share one
// backend call.
func (s *Session) ResolveID(ctx context.Context, t domain.ResourceType, name string) (string, error) {
	return s.nameCache(t).Get(ctx, name)
}

// ForgetName drops the memoized id of one name, forcing a fresh lookup on
// the next ResolveID.
func (s *Session) ForgetName(t domain.ResourceType, name string) {
	s.nameCache(t).Forget(name)
}

// LoadMore fetches the next listing window of a browse folder.
func (s *Session) LoadMore(ctx context.Context, t domain.ResourceType) error {
	return s.pager(t).LoadMore(ctx)
}

// Items returns the display sequence of a browse folder: the loaded
// resources plus the trailing continuation or empty-state marker.
func (s *Session) Items(t domain.ResourceType) []domain.Node {
	return s.pager(t).Items()
}

// ListAll drains a fresh filtered listing of one resource type. It pages
// independently of the browse folders, so the browse state is untouched.
func (s *Session) ListAll(ctx context.Context, t domain.ResourceType, filter string) ([]domain.Resource, error) {
	p := pager.New(s.tenant.PageSize, filter, s.fetchFunc(t))

	if err := p.LoadMore(ctx); err != nil {
		return nil, err
	}
	for p.HasMore() {
		if err := p.LoadMore(ctx); err != nil {
			return nil, err
		}
	}

	nodes := p.Items()
	resources := make([]domain.Resource, 0, len(nodes))
	for _, n := range nodes {
		if n.Resource != nil {
			resources = append(resources, *n.Resource)
		}
	}
	return resources, nil
}

// Invalidate discards all memoized resolutions and paged listings. The next
// access re-fetches from the tenant.
func (s *Session) Invalidate() {
	s.rebuild()
}

func (s *Session) rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = make(map[domain.ResourceType]*resolve.Cache[string], len(domain.ResourceTypes))
	s.pagers = make(map[domain.ResourceType]*pager.Pager[domain.Node], len(domain.ResourceTypes))

	for _, t := range domain.ResourceTypes {
		s.names[t] = resolve.New(s.resolver(t), s.metrics)
		s.pagers[t] = pager.New(s.tenant.PageSize, "", s.fetchFunc(t),
			pager.WithMarkers(
				func() domain.Node { return domain.PaginationNode(t, string(t)) },
				func() domain.Node { return domain.MessageNode("No "+t.Label()+"s", string(t)) },
			),
		)
	}
}

func (s *Session) nameCache(t domain.ResourceType) *resolve.Cache[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.names[t]
}

func (s *Session) pager(t domain.ResourceType) *pager.Pager[domain.Node] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagers[t]
}

func (s *Session) resolver(t domain.ResourceType) resolve.Resolver[string] {
	return func(ctx context.Context, name string) (string, error) {
		return s.client.ResolveIDByName(ctx, t, name)
	}
}

func (s *Session) fetchFunc(t domain.ResourceType) pager.FetchFunc[domain.Node] {
	return func(ctx context.Context, filter string, limit, offset int, needTotal bool) (pager.Fetched[domain.Node], error) {
		page, err := s.client.ListResources(ctx, t, filter, limit, offset, needTotal)
		if err != nil {
			return pager.Fetched[domain.Node]{}, err
		}

		if s.metrics != nil {
			s.metrics.PageLoaded(t, len(page.Items))
		}

		items := make([]domain.Node, len(page.Items))
		for i, r := range page.Items {
			items[i] = domain.ResourceNode(r)
		}
		return pager.Fetched[domain.Node]{
			Items:    items,
			Total:    page.Total,
			HasTotal: page.HasTotal,
		}, nil
	}
}
