package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/viewmodel"
)

// destinationCard is one grid entry with its favorite state resolved from
// the page's shared favorites set.
type destinationCard struct {
	domain.Destination
	IsFavorite bool
}

type dashboardPage struct {
	page
	Cards    []destinationCard
	Total    int
	Criteria viewmodel.DestinationCriteria
	// Raw filter inputs echoed back into the form.
	MinPrice string
	MaxPrice string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardPage{page: s.newPage(r, "Destinations")}

	destinations, err := s.api.ListDestinations(r.Context())
	if err != nil {
		s.redirectOrRender(w, r, err, func() {
			data.Error = errorMessage(err)
			s.render(w, "dashboard", data)
		})
		return
	}

	// One favorites fetch per page view; every card consults this set
	// instead of asking the server again.
	favoriteSet, err := s.favoriteSet(r.Context())
	if err != nil {
		data.Error = errorMessage(err)
	}

	criteria, minRaw, maxRaw := destinationCriteriaFromQuery(r)
	derived := viewmodel.Destinations(destinations, criteria)

	cards := make([]destinationCard, len(derived))
	for i, d := range derived {
		cards[i] = destinationCard{Destination: d, IsFavorite: favoriteSet[d.ID]}
	}

	data.Cards = cards
	data.Total = len(derived)
	data.Criteria = criteria
	data.MinPrice = minRaw
	data.MaxPrice = maxRaw
	s.render(w, "dashboard", data)
}

// favoriteSet fetches the favorites list and indexes it by destination id.
func (s *Server) favoriteSet(ctx context.Context) (map[int64]bool, error) {
	favorites, err := s.api.ListFavorites(ctx)
	if err != nil {
		return map[int64]bool{}, err
	}
	set := make(map[int64]bool, len(favorites))
	for _, f := range favorites {
		set[f.Destination.ID] = true
	}
	return set, nil
}

// destinationCriteriaFromQuery reads the filter/sort form state. Unparseable
// price bounds are ignored rather than failing the page.
func destinationCriteriaFromQuery(r *http.Request) (viewmodel.DestinationCriteria, string, string) {
	q := r.URL.Query()

	criteria := viewmodel.DestinationCriteria{
		Search:  q.Get("search"),
		Country: q.Get("country"),
		SortBy:  viewmodel.SortKey(q.Get("sort")),
		Order:   viewmodel.SortOrder(q.Get("order")),
	}

	minRaw := q.Get("min_price")
	if v, err := strconv.ParseFloat(minRaw, 64); err == nil {
		criteria.MinPrice = &v
	}
	maxRaw := q.Get("max_price")
	if v, err := strconv.ParseFloat(maxRaw, 64); err == nil {
		criteria.MaxPrice = &v
	}

	return criteria, minRaw, maxRaw
}

// redirectOrRender handles a failed page fetch: unauthorized goes back to
// login, anything else runs the inline-error fallback.
func (s *Server) redirectOrRender(w http.ResponseWriter, r *http.Request, err error, fallback func()) {
	if isUnauthorized(err) {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}
	s.logger.Warn("page fetch failed", "path", r.URL.Path, "error", err)
	fallback()
}
