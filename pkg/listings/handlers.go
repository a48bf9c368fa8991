// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package listings

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/listings", a.listListings)
	mux.Get("/listings/search", a.search)
	mux.Get("/listings/{id}", a.getListing)
}

func (a *API) listListings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "listings.API.listListings")
	defer span.End()

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	listings, err := a.service.ListListings(ctx, filter)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: listings})
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "listings.API.search")
	defer span.End()

	q := r.URL.Query()

	minPrice, err := intParam(q, "min_price")
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	maxPrice, err := intParam(q, "max_price")
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	listings, err := a.service.Search(ctx, q.Get("title"), minPrice, maxPrice)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: listings})
}

func (a *API) getListing(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "listings.API.getListing")
	defer span.End()

	l, err := a.service.GetListing(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: l})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("listings request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func parseFilter(q url.Values) (types.ListingFilter, error) {
	var (
		f   types.ListingFilter
		err error
	)

	if v := q.Get("external"); v != "" {
		external, err := strconv.ParseBool(v)
		if err != nil {
			return f, types.NewError(types.ErrBadRequest, "external must be a boolean")
		}
		f.External = &external
	}

	if v := q.Get("status"); v != "" {
		if f.Status, err = types.ParseListingStatus(v); err != nil {
			return f, err
		}
	}

	f.OwnerID = q.Get("owner_id")

	page, err := intParam(q, "page")
	if err != nil {
		return f, err
	}
	if page != nil {
		f.Page = int64(*page)
	}

	size, err := intParam(q, "page_size")
	if err != nil {
		return f, err
	}
	if size != nil {
		f.PageSize = int64(*size)
	}

	return f, nil
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, types.NewError(types.ErrBadRequest, "%s must be an integer", name)
	}

	return &n, nil
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.logger = logger

	return a
}
