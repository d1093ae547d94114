package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/dossier"
	"github.com/Alan-Biju/global-visa/internal/export"
	"github.com/Alan-Biju/global-visa/internal/query"
	"github.com/Alan-Biju/global-visa/internal/selection"
	"github.com/Alan-Biju/global-visa/internal/store"
)

type banner struct {
	Loading bool
	Failed  bool
	Message string
}

type homeData struct {
	Banner    banner
	Countries []country.Entry
}

type serviceData struct {
	Banner       banner
	Flow         *selection.Flow
	FlowState    string
	Origins      []country.Entry
	Destinations []country.Entry
	Categories   []string
	Error        string
}

type detailsData struct {
	View      *dossier.View
	Origin    string
	Dest      string
	VisaType  string
	ExportURL string
	ViewURL   string
}

type queryData struct {
	Destinations []country.Entry
	Request      query.Request
	Mailto       string
	Reference    string
	Sent         bool
	Error        string
}

// handleHome renders the country list with the map pin links.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	state, msg := s.directoryStatus(r.Context())
	s.render(w, "home.html", homeData{
		Banner:    bannerFor(state, msg),
		Countries: s.dir.List(),
	})
}

// handleService renders the selection flow. Picks arrive as query
// parameters and are replayed in order, so a stale or hand-edited URL
// degrades to the deepest valid step instead of failing.
func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	state, msg := s.directoryStatus(r.Context())

	q := r.URL.Query()
	f := selection.New(s.dir)

	var flowErr string
	if dest := q.Get("dest"); dest != "" && q.Get("origin") == "" {
		// Map pin entry: destination named directly, default origin.
		pf, err := selection.NewPreseeded(s.dir, s.cfg.DefaultOrigin, dest)
		if err == nil {
			f = pf
		} else {
			flowErr = err.Error()
		}
	} else {
		for _, pick := range []struct {
			value  string
			choose func(string) error
		}{
			{q.Get("origin"), f.ChooseOrigin},
			{q.Get("dest"), f.ChooseDestination},
			{q.Get("type"), f.ChooseCategory},
		} {
			if pick.value == "" {
				break
			}
			if err := pick.choose(pick.value); err != nil {
				flowErr = err.Error()
				break
			}
		}
	}

	s.render(w, "service.html", serviceData{
		Banner:       bannerFor(state, msg),
		Flow:         f,
		FlowState:    f.State().String(),
		Origins:      f.OriginChoices(),
		Destinations: f.DestinationChoices(),
		Categories:   f.CategoryChoices(),
		Error:        flowErr,
	})
}

// handleDetails renders the dossier for a completed selection.
func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	s.directoryStatus(r.Context())

	q := r.URL.Query()
	origin, dest, visaType := q.Get("origin"), q.Get("dest"), q.Get("type")

	view, err := s.resolveView(origin, dest, visaType)
	if err != nil {
		s.renderResolveError(w, err)
		return
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("dest", dest)
	params.Set("type", visaType)

	s.render(w, "details.html", detailsData{
		View:      view,
		Origin:    origin,
		Dest:      dest,
		VisaType:  visaType,
		ExportURL: "/dossier/export.pdf?" + params.Encode() + "&mode=download",
		ViewURL:   "/dossier/export.pdf?" + params.Encode() + "&mode=view",
	})
}

// handleExport streams the dossier PDF. mode=view renders inline with
// the source URL in the footer; anything else downloads as an
// attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.directoryStatus(r.Context())

	q := r.URL.Query()
	view, err := s.resolveView(q.Get("origin"), q.Get("dest"), q.Get("type"))
	if err != nil {
		s.renderResolveError(w, err)
		return
	}

	mode := export.ModeDownload
	if q.Get("mode") == "view" {
		mode = export.ModeView
	}

	data, filename, err := s.exporter.Export(view, mode)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error generating PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if mode == export.ModeView {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	_, _ = w.Write(data)
}

// handleQuery renders the contact form and accepts its submission. With
// SMTP configured the ticket is sent server-side; otherwise the
// response carries a mailto link for the visitor's own client.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	s.directoryStatus(r.Context())

	data := queryData{Destinations: s.dir.List()}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		data.Request = query.Request{
			Name:        strings.TrimSpace(r.FormValue("name")),
			Contact:     strings.TrimSpace(r.FormValue("contact")),
			Email:       strings.TrimSpace(r.FormValue("email")),
			TravelDate:  strings.TrimSpace(r.FormValue("travelDate")),
			Address:     strings.TrimSpace(r.FormValue("address")),
			Destination: strings.TrimSpace(r.FormValue("destination")),
		}

		ticket, err := query.Compose(data.Request)
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Reference = ticket.Reference
			if sendErr := s.mailer.Send(ticket); sendErr == nil {
				data.Sent = true
			} else {
				data.Mailto = query.MailtoURL(s.cfg.SupportEmail, ticket)
			}
		}
	}

	s.render(w, "query.html", data)
}

// resolveView replays the selection parameters and assembles the
// dossier.
func (s *Server) resolveView(origin, dest, visaType string) (*dossier.View, error) {
	sel, err := selection.FromParams(s.dir, origin, dest, visaType)
	if err != nil {
		return nil, err
	}
	return dossier.Resolve(s.dir, sel)
}

// renderResolveError maps selection and resolution failures onto user
// pages: missing data gets the not-found page, bad parameters get 400.
func (s *Server) renderResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dossier.ErrNotFound),
		errors.Is(err, selection.ErrUnknownCountry),
		errors.Is(err, selection.ErrUnknownCategory):
		w.WriteHeader(http.StatusNotFound)
		s.render(w, "notfound.html", map[string]string{"Message": "Visa data not found for this selection."})
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func bannerFor(state store.State, msg string) banner {
	switch state {
	case store.StateLoading:
		return banner{Loading: true, Message: "Loading country data..."}
	case store.StateFailed:
		return banner{Failed: true, Message: "Country data is unavailable: " + msg}
	default:
		return banner{}
	}
}
