package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
)

type destinationPage struct {
	page
	Destination domain.Destination
	IsFavorite  bool
}

func (s *Server) handleDestinationDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	destination, err := s.api.GetDestination(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	data := destinationPage{page: s.newPage(r, destination.Name), Destination: *destination}

	favoriteSet, err := s.favoriteSet(r.Context())
	if err != nil {
		data.Error = errorMessage(err)
	}
	data.IsFavorite = favoriteSet[id]

	s.render(w, "destination", data)
}

// --- Admin CRUD ---

type destinationForm struct {
	Name        string `form:"name" validate:"required,max=200"`
	Country     string `form:"country" validate:"required,max=100"`
	City        string `form:"city" validate:"required,max=100"`
	Description string `form:"description" validate:"max=4000"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
	Price       string `form:"price" validate:"required"`
}

type destinationFormPage struct {
	page
	Form    destinationForm
	Action  string
	Editing bool
}

func (s *Server) handleDestinationNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, "destination_form", destinationFormPage{
		page:   s.newPage(r, "Add destination"),
		Action: "/admin/destinations/new",
	})
}

func (s *Server) handleDestinationCreate(w http.ResponseWriter, r *http.Request) {
	form, req, err := s.parseDestinationForm(r)
	data := destinationFormPage{page: s.newPage(r, "Add destination"), Form: form, Action: "/admin/destinations/new"}
	if err != nil {
		data.Error = errorMessage(err)
		s.render(w, "destination_form", data)
		return
	}

	created, err := s.api.CreateDestination(r.Context(), req)
	if err != nil {
		if isUnauthorized(err) {
			s.redirectWithError(w, r, "/dashboard", err)
			return
		}
		data.Error = errorMessage(err)
		s.render(w, "destination_form", data)
		return
	}

	s.renderSuccess(w, r,
		"Destination added",
		fmt.Sprintf("%s is now available for booking.", created.Name),
		"/dashboard")
}

func (s *Server) handleDestinationEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	destination, err := s.api.GetDestination(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	s.render(w, "destination_form", destinationFormPage{
		page: s.newPage(r, "Edit "+destination.Name),
		Form: destinationForm{
			Name:        destination.Name,
			Country:     destination.Country,
			City:        destination.City,
			Description: destination.Description,
			ImageURL:    destination.ImageURL,
			Price:       strconv.FormatFloat(destination.Price, 'f', -1, 64),
		},
		Action:  fmt.Sprintf("/admin/destinations/%d/edit", id),
		Editing: true,
	})
}

func (s *Server) handleDestinationUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	form, req, err := s.parseDestinationForm(r)
	data := destinationFormPage{
		page:    s.newPage(r, "Edit destination"),
		Form:    form,
		Action:  fmt.Sprintf("/admin/destinations/%d/edit", id),
		Editing: true,
	}
	if err != nil {
		data.Error = errorMessage(err)
		s.render(w, "destination_form", data)
		return
	}

	updated, err := s.api.UpdateDestination(r.Context(), id, req)
	if err != nil {
		if isUnauthorized(err) {
			s.redirectWithError(w, r, "/dashboard", err)
			return
		}
		data.Error = errorMessage(err)
		s.render(w, "destination_form", data)
		return
	}

	s.renderSuccess(w, r,
		"Destination updated",
		fmt.Sprintf("%s has been saved.", updated.Name),
		"/dashboard")
}

func (s *Server) handleDestinationDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	destination, err := s.api.GetDestination(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	action := fmt.Sprintf("/admin/destinations/%d/delete", id)
	s.renderConfirm(w, r,
		fmt.Sprintf("Delete %s?", destination.Name),
		"This removes the destination for everyone and cannot be undone.",
		action, action, nil,
		"/dashboard")
}

func (s *Server) handleDestinationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	action := fmt.Sprintf("/admin/destinations/%d/delete", id)
	if !s.confirms.Redeem(r.FormValue("confirm_token"), action) {
		s.redirectWithError(w, r, "/dashboard", errStaleConfirmation)
		return
	}

	if err := s.api.DeleteDestination(r.Context(), id); err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	s.renderSuccess(w, r, "Destination deleted", "The destination has been removed.", "/dashboard")
}

// parseDestinationForm reads and validates the create/edit form, returning
// the raw form (for re-rendering) alongside the API request.
func (s *Server) parseDestinationForm(r *http.Request) (destinationForm, travelapi.DestinationRequest, error) {
	form := destinationForm{
		Name:        r.FormValue("name"),
		Country:     r.FormValue("country"),
		City:        r.FormValue("city"),
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("image_url"),
		Price:       r.FormValue("price"),
	}

	if err := s.validator.Validate(form); err != nil {
		return form, travelapi.DestinationRequest{}, err
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return form, travelapi.DestinationRequest{}, errInvalidPrice
	}

	return form, travelapi.DestinationRequest{
		Name:        form.Name,
		Country:     form.Country,
		City:        form.City,
		Description: form.Description,
		ImageURL:    form.ImageURL,
		Price:       price,
	}, nil
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}
