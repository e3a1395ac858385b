package web

import (
	"net/http"
	"strconv"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

type favoritesPage struct {
	page
	Favorites []domain.Favorite
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	data := favoritesPage{page: s.newPage(r, "Favorites")}

	favorites, err := s.api.ListFavorites(r.Context())
	if err != nil {
		s.redirectOrRender(w, r, err, func() {
			data.Error = errorMessage(err)
			s.render(w, "favorites", data)
		})
		return
	}

	data.Favorites = favorites
	s.render(w, "favorites", data)
}

// handleFavoriteToggle flips the favorite state of one destination. The
// current membership is looked up against the live favorites list, so two
// toggles awaited in sequence always return to the starting state. Nothing
// is flipped before the remote call succeeds; a failure leaves the state
// untouched and flashes the error on the page the user came from.
func (s *Server) handleFavoriteToggle(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturnPath(r.FormValue("return"))

	destinationID, err := strconv.ParseInt(r.FormValue("destination_id"), 10, 64)
	if err != nil {
		s.redirectWithError(w, r, returnTo, errBadID)
		return
	}

	favoriteSet, err := s.favoriteSet(r.Context())
	if err != nil {
		s.redirectWithError(w, r, returnTo, err)
		return
	}

	if favoriteSet[destinationID] {
		err = s.api.RemoveFavoriteByDestination(r.Context(), destinationID)
	} else {
		_, err = s.api.AddFavorite(r.Context(), destinationID)
	}
	if err != nil {
		s.redirectWithError(w, r, returnTo, err)
		return
	}

	http.Redirect(w, r, returnTo, http.StatusFound)
}

// safeReturnPath keeps the post-toggle redirect inside the app.
func safeReturnPath(path string) string {
	if path == "" || path[0] != '/' || (len(path) > 1 && path[1] == '/') {
		return "/dashboard"
	}
	return path
}
